// Package http implements the REST transport of the campus-auth server.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, security headers, CORS and bearer authentication are
// handled here before requests are delegated to the service layer.
package http
