package server

import "context"

// Server defines the lifecycle of the API process.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a stop signal
	// arrives, then shuts down gracefully. It returns the listener error
	// when the server could not start.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown(ctx context.Context) error
}
