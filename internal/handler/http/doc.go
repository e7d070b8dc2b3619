// Package http implements the REST transport of the login server.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, per-request timeouts, and bearer-token
// authentication are handled here before requests reach the service layer.
// Service error kinds are translated to HTTP status codes in one place,
// see statusFromError.
package http
