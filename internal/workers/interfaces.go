// Package workers runs the background jobs of the server next to the
// transport: a Worker interface and a Workers aggregate that starts them
// together and waits for all of them to stop.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
