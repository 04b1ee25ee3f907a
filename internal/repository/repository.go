// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Rows are mapped to model types by explicit Scan calls; column lists and
// scan destinations are kept side by side so they cannot drift apart.
package repository
