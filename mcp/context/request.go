// Package context carries per tool call values on a context.Context.
package context

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey string

// RequestIDKey is the context key of the tool call request id.
var RequestIDKey = requestIDKey("requestID")

// WithRequestID returns ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id carried by ctx.
func RequestID(ctx context.Context) (string, bool) {
	ret := ctx.Value(RequestIDKey)
	if ret == nil {
		return "", false
	}
	id, ok := ret.(string)
	return id, ok && id != ""
}

// EnsureRequestID returns ctx with a request id, generating a new one when
// ctx has none.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := RequestID(ctx); ok {
		return ctx, id
	}
	id := uuid.NewString()
	return WithRequestID(ctx, id), id
}
