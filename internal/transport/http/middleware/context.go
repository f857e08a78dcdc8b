package middleware

import (
	"context"

	"octomate/internal/domain/rbac"
)

type ctxKey string

const (
	ctxKeyRequestID ctxKey = "request_id"
	ctxKeyUser      ctxKey = "session_user"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return value
	}
	return ""
}

func WithUser(ctx context.Context, user rbac.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, user)
}

// GetUser returns the acting demo user placed by the session
// middleware. Handlers that need a role must check the second result;
// there is no anonymous default.
func GetUser(ctx context.Context) (rbac.User, bool) {
	user, ok := ctx.Value(ctxKeyUser).(rbac.User)
	return user, ok
}
