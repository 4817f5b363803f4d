// Package http implements the REST API of the config sets server.
//
// It wires routes, request handlers and middleware. Request tracing, access
// logging, metrics, CORS, rate limiting, optional bearer authentication and
// response compression are handled here before requests reach the service
// layer. Every mutating and every error response uses the
// {"success": bool, "msg": string} envelope.
package http
