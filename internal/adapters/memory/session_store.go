package memory

// Package memory provides an in-memory session store for development and
// tests. It mirrors the Redis store's best-effort contract exactly, so
// the two are interchangeable behind ports.SessionStore.

import (
	"context"
	"sync"

	domainauth "github.com/auroracrm/console/internal/domain/auth"
	"github.com/auroracrm/console/internal/ports"
)

// SessionStore is an in-memory ports.SessionStore and
// ports.RememberedUserStore. Safe for concurrent use.
type SessionStore struct {
	mu         sync.RWMutex
	tokens     map[string]string
	users      map[string]domainauth.Profile
	pending    map[string]domainauth.PendingVerification
	remembered string
	hasRemem   bool
}

var (
	_ ports.SessionStore        = (*SessionStore)(nil)
	_ ports.RememberedUserStore = (*SessionStore)(nil)
)

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		tokens:  make(map[string]string),
		users:   make(map[string]domainauth.Profile),
		pending: make(map[string]domainauth.PendingVerification),
	}
}

func (s *SessionStore) SaveToken(_ context.Context, sid, token string) {
	if sid == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sid] = token
}

func (s *SessionStore) Token(_ context.Context, sid string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[sid]
	return token, ok && token != ""
}

func (s *SessionStore) RemoveToken(_ context.Context, sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sid)
}

func (s *SessionStore) SaveUser(_ context.Context, sid string, user domainauth.Profile) {
	if sid == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[sid] = user
}

func (s *SessionStore) User(_ context.Context, sid string) (*domainauth.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[sid]
	if !ok {
		return nil, false
	}
	u := user
	return &u, true
}

func (s *SessionStore) RemoveUser(_ context.Context, sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, sid)
}

func (s *SessionStore) Clear(_ context.Context, sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sid)
	delete(s.users, sid)
}

func (s *SessionStore) SavePending(_ context.Context, sid string, p domainauth.PendingVerification) {
	if sid == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[sid] = p
}

func (s *SessionStore) Pending(_ context.Context, sid string) (*domainauth.PendingVerification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pending[sid]
	if !ok {
		return nil, false
	}
	pv := p
	return &pv, true
}

func (s *SessionStore) RemovePending(_ context.Context, sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, sid)
}

func (s *SessionStore) SaveRememberedUser(_ context.Context, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remembered = username
	s.hasRemem = true
}

func (s *SessionStore) RememberedUser(_ context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remembered, s.hasRemem && s.remembered != ""
}

func (s *SessionStore) RemoveRememberedUser(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remembered = ""
	s.hasRemem = false
}
