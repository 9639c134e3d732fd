package auth

import "context"

type contextKey struct{}

var sessionKey contextKey

// WithSession attaches the caller's session to the request context.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext returns the attached session, or nil for anonymous callers.
func SessionFromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(sessionKey).(*Session)
	return session
}
