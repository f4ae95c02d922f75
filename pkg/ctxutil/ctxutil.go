// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	sessionIDKey struct{}
	requestIDKey struct{}
)

// WithUserID stores the authenticated user.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the authenticated user. A missing value or uuid.Nil
// reports false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return nonZero[uuid.UUID](ctx, userIDKey{})
}

// WithSessionID stores the session that authenticated the request.
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromCtx returns the session that authenticated the request.
func SessionIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return nonZero[uuid.UUID](ctx, sessionIDKey{})
}

// WithRequestID stores the correlation id of the request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the correlation id, or "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := nonZero[string](ctx, requestIDKey{})
	return id
}

func nonZero[T comparable](ctx context.Context, key any) (T, bool) {
	var zero T
	v, ok := ctx.Value(key).(T)
	if !ok || v == zero {
		return zero, false
	}
	return v, true
}
