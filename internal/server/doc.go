// Package server wires and runs the HTTP server together with the
// background workers.
//
// It provides startup, signal handling, and graceful shutdown of the HTTP
// transport and stops the workers with it.
package server
