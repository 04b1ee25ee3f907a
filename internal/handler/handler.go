// Package handler is the HTTP entry point for business logic after
// the router.
//
// It parses path ids and JSON bodies, validates them through the
// validation package, calls the appropriate service and shapes the
// response (201 on create, 404 for a missing record, affected-row
// counts for updates and deletes).
package handler
