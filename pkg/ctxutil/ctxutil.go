package ctxutil

import "context"

type ctxKey string

const (
	callerEmailKey ctxKey = "caller_email"
	requestIDKey   ctxKey = "request_id"
)

// WithCallerEmail stores the authenticated caller's email in the context.
func WithCallerEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, callerEmailKey, email)
}

// CallerEmailFromCtx extracts the caller email from the context.
// Returns an empty string if absent.
func CallerEmailFromCtx(ctx context.Context) string {
	email, _ := ctx.Value(callerEmailKey).(string)
	return email
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
