package redis

// Package redis provides the Redis-backed persisted session store. It is
// the durable key-value storage behind every session: an opaque bearer
// token and a serialized profile per session id, plus the single
// remembered-username string. No TTL on token or user, no encryption.
//
// All operations are best effort. A write failure is swallowed after
// logging so UI flows never fail on storage unavailability; a read
// failure or a corrupt stored value yields "absent", never an error.

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/auroracrm/console/internal/domain/auth"
	"github.com/auroracrm/console/internal/ports"
)

// Fixed, unnamespaced storage keys.
const (
	tokenKeyPrefix   = "token:"
	userKeyPrefix    = "user:"
	pendingKeyPrefix = "pending:"
	rememberedKey    = "rememberedUser"
)

// pendingTTL bounds how long an unfinished OTP handoff survives.
const pendingTTL = 10 * time.Minute

// SessionStore is the Redis-backed ports.SessionStore and
// ports.RememberedUserStore.
type SessionStore struct {
	client redis.UniversalClient
	logger *slog.Logger
}

var (
	_ ports.SessionStore        = (*SessionStore)(nil)
	_ ports.RememberedUserStore = (*SessionStore)(nil)
)

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(client redis.UniversalClient, logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{client: client, logger: logger}
}

func (s *SessionStore) SaveToken(ctx context.Context, sid, token string) {
	if sid == "" {
		return
	}
	if err := s.client.Set(ctx, tokenKeyPrefix+sid, token, 0).Err(); err != nil {
		s.logger.WarnContext(ctx, "save token failed", "error", err)
	}
}

func (s *SessionStore) Token(ctx context.Context, sid string) (string, bool) {
	if sid == "" {
		return "", false
	}
	val, err := s.client.Get(ctx, tokenKeyPrefix+sid).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.WarnContext(ctx, "read token failed", "error", err)
		}
		return "", false
	}
	return val, val != ""
}

func (s *SessionStore) RemoveToken(ctx context.Context, sid string) {
	if sid == "" {
		return
	}
	if err := s.client.Del(ctx, tokenKeyPrefix+sid).Err(); err != nil {
		s.logger.WarnContext(ctx, "remove token failed", "error", err)
	}
}

func (s *SessionStore) SaveUser(ctx context.Context, sid string, user domainauth.Profile) {
	if sid == "" {
		return
	}
	data, err := json.Marshal(user)
	if err != nil {
		s.logger.WarnContext(ctx, "marshal user failed", "error", err)
		return
	}
	if err := s.client.Set(ctx, userKeyPrefix+sid, data, 0).Err(); err != nil {
		s.logger.WarnContext(ctx, "save user failed", "error", err)
	}
}

func (s *SessionStore) User(ctx context.Context, sid string) (*domainauth.Profile, bool) {
	if sid == "" {
		return nil, false
	}
	data, err := s.client.Get(ctx, userKeyPrefix+sid).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.WarnContext(ctx, "read user failed", "error", err)
		}
		return nil, false
	}
	var user domainauth.Profile
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		// Corrupt stored value reads as absent, not as a crash.
		s.logger.WarnContext(ctx, "stored user unreadable", "error", err)
		return nil, false
	}
	return &user, true
}

func (s *SessionStore) RemoveUser(ctx context.Context, sid string) {
	if sid == "" {
		return
	}
	if err := s.client.Del(ctx, userKeyPrefix+sid).Err(); err != nil {
		s.logger.WarnContext(ctx, "remove user failed", "error", err)
	}
}

// Clear removes both the token and the user keys unconditionally.
func (s *SessionStore) Clear(ctx context.Context, sid string) {
	if sid == "" {
		return
	}
	if err := s.client.Del(ctx, tokenKeyPrefix+sid, userKeyPrefix+sid).Err(); err != nil {
		s.logger.WarnContext(ctx, "clear session failed", "error", err)
	}
}

func (s *SessionStore) SavePending(ctx context.Context, sid string, p domainauth.PendingVerification) {
	if sid == "" {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		s.logger.WarnContext(ctx, "marshal pending verification failed", "error", err)
		return
	}
	if err := s.client.Set(ctx, pendingKeyPrefix+sid, data, pendingTTL).Err(); err != nil {
		s.logger.WarnContext(ctx, "save pending verification failed", "error", err)
	}
}

func (s *SessionStore) Pending(ctx context.Context, sid string) (*domainauth.PendingVerification, bool) {
	if sid == "" {
		return nil, false
	}
	data, err := s.client.Get(ctx, pendingKeyPrefix+sid).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.WarnContext(ctx, "read pending verification failed", "error", err)
		}
		return nil, false
	}
	var p domainauth.PendingVerification
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		s.logger.WarnContext(ctx, "stored pending verification unreadable", "error", err)
		return nil, false
	}
	return &p, true
}

func (s *SessionStore) RemovePending(ctx context.Context, sid string) {
	if sid == "" {
		return
	}
	if err := s.client.Del(ctx, pendingKeyPrefix+sid).Err(); err != nil {
		s.logger.WarnContext(ctx, "remove pending verification failed", "error", err)
	}
}

func (s *SessionStore) SaveRememberedUser(ctx context.Context, username string) {
	if err := s.client.Set(ctx, rememberedKey, username, 0).Err(); err != nil {
		s.logger.WarnContext(ctx, "save remembered user failed", "error", err)
	}
}

func (s *SessionStore) RememberedUser(ctx context.Context) (string, bool) {
	val, err := s.client.Get(ctx, rememberedKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.WarnContext(ctx, "read remembered user failed", "error", err)
		}
		return "", false
	}
	return val, val != ""
}

func (s *SessionStore) RemoveRememberedUser(ctx context.Context) {
	if err := s.client.Del(ctx, rememberedKey).Err(); err != nil {
		s.logger.WarnContext(ctx, "remove remembered user failed", "error", err)
	}
}
