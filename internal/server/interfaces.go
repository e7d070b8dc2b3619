package server

// Server owns the HTTP listener and the background workers.
type Server interface {
	// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives or the
	// listener fails.
	RunServer()

	// Shutdown drains in-flight requests within the configured timeout.
	Shutdown()
}
