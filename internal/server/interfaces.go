package server

import "context"

// Server defines the lifecycle of the application server.
type Server interface {
	// RunServer runs the startup hook, serves requests and blocks until ctx
	// is cancelled or SIGINT, SIGTERM or SIGQUIT is received. It may be
	// called once.
	RunServer(ctx context.Context) error

	// Shutdown drains in-flight requests and runs the shutdown hook.
	Shutdown(ctx context.Context) error
}
