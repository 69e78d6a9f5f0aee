// Package workers runs the blog's background jobs alongside the HTTP
// server. Every worker stops when the root context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper removes expired entries and reports how many were removed.
type Sweeper interface {
	Sweep() int
}
