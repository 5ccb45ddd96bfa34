package service

// Package service orchestrates console use cases by coordinating the
// auth, session, and CRM ports. Services hold no business state of their
// own; per-session auth state lives in the session store.

import (
	"context"
	"log/slog"

	domainauth "github.com/auroracrm/console/internal/domain/auth"
	"github.com/auroracrm/console/internal/ports"
)

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Store  ports.SessionStore
	Logger *slog.Logger
}

// SessionService exposes the per-session token and user state. The token
// and user are independently settable dimensions; updating one never
// disturbs the other.
type SessionService struct {
	store  ports.SessionStore
	logger *slog.Logger
}

// NewSessionService constructs a SessionService.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{store: opts.Store, logger: logger}
}

// Session returns the current state for a session id. Absent or
// unreadable values simply come back zero; a missing token means
// unauthenticated, never an error.
func (s *SessionService) Session(ctx context.Context, sid string) domainauth.Session {
	var sess domainauth.Session
	if token, ok := s.store.Token(ctx, sid); ok {
		sess.Token = token
	}
	if user, ok := s.store.User(ctx, sid); ok {
		sess.User = user
	}
	return sess
}

// LoginInput carries the dimensions to set on login. A nil field leaves
// the corresponding dimension untouched.
type LoginInput struct {
	Token *string
	User  *domainauth.Profile
}

// Login writes the provided dimensions and returns the resulting state.
func (s *SessionService) Login(ctx context.Context, sid string, in LoginInput) domainauth.Session {
	if in.Token != nil {
		s.store.SaveToken(ctx, sid, *in.Token)
	}
	if in.User != nil {
		s.store.SaveUser(ctx, sid, *in.User)
	}
	return s.Session(ctx, sid)
}

// UpdateUser replaces the stored profile. A nil profile removes the user
// while leaving the token in place.
func (s *SessionService) UpdateUser(ctx context.Context, sid string, user *domainauth.Profile) domainauth.Session {
	if user == nil {
		s.store.RemoveUser(ctx, sid)
	} else {
		s.store.SaveUser(ctx, sid, *user)
	}
	return s.Session(ctx, sid)
}

// Logout clears both the token and the user unconditionally.
func (s *SessionService) Logout(ctx context.Context, sid string) {
	s.store.Clear(ctx, sid)
	s.logger.InfoContext(ctx, "session cleared", "session", sid)
}
