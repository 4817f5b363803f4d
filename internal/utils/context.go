// Package utils holds small helpers shared by the server and the client:
// typed context keys, JSON response writing, the resty client wrapper,
// request identifiers and admin JWT handling.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they never collide with
// keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// TraceIDCtxKey stores the request identifier set by the trace middleware.
	TraceIDCtxKey = contextKey("traceID")

	// SubjectCtxKey stores the "sub" claim of an authenticated admin token.
	SubjectCtxKey = contextKey("subject")
)

// GetTraceIDFromContext returns the request identifier stored in ctx.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(TraceIDCtxKey).(string)
	return id, ok && id != ""
}

// GetSubjectFromContext returns the admin token subject stored in ctx.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(SubjectCtxKey).(string)
	return sub, ok && sub != ""
}
