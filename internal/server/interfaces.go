package server

// Server is the lifecycle contract of the control API listener.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down
	// gracefully. It returns early if the listener cannot start.
	RunServer() error

	// Shutdown stops the server and waits for in-flight requests.
	Shutdown()
}
