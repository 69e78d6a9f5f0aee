// Package server runs the blog's HTTP server.
//
// It owns the listener lifecycle: startup, waiting for the root context to
// be cancelled and graceful shutdown with a bounded drain period.
package server
