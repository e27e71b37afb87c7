package server

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until a stop signal arrives or serving fails. Shutdown
// gracefully stops the server and frees associated resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
