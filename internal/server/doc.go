// Package server runs the application's HTTP transport.
//
// It owns the listener lifecycle: startup, cancellation through the caller's
// context and graceful shutdown with a bounded drain period.
package server
