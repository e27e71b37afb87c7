// Package http implements the HTTP transport layer of the API.
//
// It exposes the declarative route table, the four request handlers and the
// middleware chain (trace id, access log, panic recovery, request timeout,
// per-client rate limit). Every failure leaves through failure.Respond, so
// the client only ever sees a body from the fixed public policy table.
package http
