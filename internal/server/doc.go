// Package server runs the HTTP transport.
//
// It owns the listener and the http.Server timeouts, waits for SIGTERM,
// SIGINT or SIGQUIT and then shuts the server down gracefully, letting
// in-flight requests finish within shutdownTimeout.
package server
