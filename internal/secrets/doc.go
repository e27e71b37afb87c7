// Package secrets holds the credentials the server needs at runtime.
//
// Secrets are loaded once at startup into an immutable [Store] and passed
// by pointer into the components that use them. A [Secret] renders as
// "[REDACTED]" through every formatting and encoding path (fmt, JSON,
// text), so a secret that ends up in a log line or a response body by
// mistake never reveals its value. The raw value is only reachable through
// [Secret.Reveal].
package secrets
