// Package errs defines the error types returned to API clients.
//
// Every failure surfaced over HTTP is expressed as an *HTTPError so that
// clients always receive the same JSON shape: a machine-readable code, a
// human-readable message, the HTTP status, and optional field-level detail
// for validation failures.
package errs
