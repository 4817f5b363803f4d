// Package workers runs background jobs of the server next to the HTTP
// listener. Every worker blocks until its context is cancelled.
package workers

import "context"

// Worker is a long-running background job.
//
// Run must return once ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
