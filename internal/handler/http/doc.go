// Package http implements the HTTP transport layer of the newsletter
// service.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// OpenTelemetry spans, access logging, and request timeouts are handled in
// this package before requests are delegated to the service layer.
package http
