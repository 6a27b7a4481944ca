// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the
// extension endpoints mounted under <base-url>/<route-namespace>/.
// Cross-cutting concerns such as authentication, request tracing, access
// logging, response compression and request timeouts are handled in this
// package before requests are delegated to the service layer.
package http
