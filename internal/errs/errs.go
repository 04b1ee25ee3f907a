// Package errs defines the error shape returned to API clients.
//
// Every failure leaving the HTTP layer is rendered as an HTTPError so
// clients receive consistent, machine-readable codes and field-level details.
package errs
