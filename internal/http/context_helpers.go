package httpx

import (
	"context"

	domainauth "github.com/auroracrm/console/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
func SetSessionInContext(ctx context.Context, session domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session placed in the context by the
// auth middleware and a boolean indicating presence.
func SessionFromContext(ctx context.Context) (domainauth.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(domainauth.Session)
	return session, ok
}

// ProfileFromContext returns the authenticated profile, or false when the
// session carries no user.
func ProfileFromContext(ctx context.Context) (*domainauth.Profile, bool) {
	session, ok := SessionFromContext(ctx)
	if !ok || session.User == nil {
		return nil, false
	}
	return session.User, true
}
