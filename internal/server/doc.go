// Package server runs the login server's HTTP transport together with its
// background workers.
//
// It owns the process lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured shutdown timeout.
package server
