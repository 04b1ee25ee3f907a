// Package service contains the business logic.
//
// It sits between the handler and repository layers. Phone and Owner
// services forward straight to their repositories; the ownership record
// service additionally queues a notification when custody changes hands.
package service
