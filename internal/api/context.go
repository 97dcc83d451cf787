package api

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// withRequestID stores the request id on ctx.
func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

