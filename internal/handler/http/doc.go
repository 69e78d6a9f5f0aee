// Package http implements the HTML front end of the blog.
//
// It wires routes, page controllers and middleware. Cross-cutting concerns
// such as request tracing, access logging, compression, session loading and
// authorization are handled here before requests reach the service layer.
// Pages are rendered with html/template from templates embedded in the
// binary, so every value is escaped at render time.
package http
