package ports

import (
	"context"

	domainauth "github.com/auroracrm/console/internal/domain/auth"
)

// TokenStore is the narrow view of session persistence the transport
// layer uses. The outbound interceptor reads tokens through this rather
// than through the session service, so the transport never depends on
// the stateful layer.
type TokenStore interface {
	// Token returns the persisted bearer token for a session, or false
	// when absent or unreadable.
	Token(ctx context.Context, sid string) (string, bool)

	// RemoveToken deletes the persisted token. Best effort: failures are
	// swallowed after logging.
	RemoveToken(ctx context.Context, sid string)
}

// SessionStore persists per-session auth state under fixed keys. All
// operations are best effort: write failures are swallowed (logged at
// most) so UI flows never fail on storage unavailability, and read
// failures or corrupt values yield "absent" rather than an error.
type SessionStore interface {
	TokenStore

	SaveToken(ctx context.Context, sid, token string)

	SaveUser(ctx context.Context, sid string, user domainauth.Profile)
	User(ctx context.Context, sid string) (*domainauth.Profile, bool)
	RemoveUser(ctx context.Context, sid string)

	// Clear removes both the token and the user, unconditionally.
	Clear(ctx context.Context, sid string)

	// Pending-verification handoff, transient per session.
	SavePending(ctx context.Context, sid string, p domainauth.PendingVerification)
	Pending(ctx context.Context, sid string) (*domainauth.PendingVerification, bool)
	RemovePending(ctx context.Context, sid string)
}

// RememberedUserStore persists the single remembered-username string used
// to prefill the login form. Its lifecycle is independent of Session.
type RememberedUserStore interface {
	SaveRememberedUser(ctx context.Context, username string)
	RememberedUser(ctx context.Context) (string, bool)
	RemoveRememberedUser(ctx context.Context)
}
