package apiclient

import "context"

// sessionIDKey is an unexported context key type for the session id.
type sessionIDKey struct{}

// WithSessionID returns a context carrying the session id. The outbound
// interceptor uses it to look up the bearer token in the persisted
// session store; requests without one proceed unauthenticated.
func WithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sid)
}

// SessionIDFrom extracts the session id from the context, or "" when the
// request is anonymous.
func SessionIDFrom(ctx context.Context) string {
	if v := ctx.Value(sessionIDKey{}); v != nil {
		if sid, ok := v.(string); ok {
			return sid
		}
	}
	return ""
}
