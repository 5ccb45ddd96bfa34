package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroracrm/console/internal/adapters/memory"
	domainauth "github.com/auroracrm/console/internal/domain/auth"
)

func newSessionService() (*SessionService, *memory.SessionStore) {
	store := memory.NewSessionStore()
	return NewSessionService(SessionServiceOptions{Store: store}), store
}

func strPtr(s string) *string { return &s }

func TestSessionService_LoginMatchesStore(t *testing.T) {
	svc, store := newSessionService()
	ctx := context.Background()

	profile := domainauth.Profile{UserID: "7", DisplayName: "Ada", StaffID: "A-7"}
	sess := svc.Login(ctx, "sid-1", LoginInput{Token: strPtr("tok-abc"), User: &profile})

	require.True(t, sess.Authenticated())
	assert.Equal(t, "tok-abc", sess.Token)
	require.NotNil(t, sess.User)
	assert.Equal(t, "Ada", sess.User.DisplayName)

	// The returned view and the persisted state must agree.
	token, ok := store.Token(ctx, "sid-1")
	require.True(t, ok)
	assert.Equal(t, sess.Token, token)
	user, ok := store.User(ctx, "sid-1")
	require.True(t, ok)
	assert.Equal(t, *sess.User, *user)
}

func TestSessionService_PartialLoginLeavesOtherDimension(t *testing.T) {
	svc, _ := newSessionService()
	ctx := context.Background()

	profile := domainauth.Profile{UserID: "7", DisplayName: "Ada"}
	svc.Login(ctx, "sid-1", LoginInput{Token: strPtr("tok-abc"), User: &profile})

	// Setting only the user must not disturb the token.
	updated := domainauth.Profile{UserID: "7", DisplayName: "Ada Lovelace"}
	sess := svc.Login(ctx, "sid-1", LoginInput{User: &updated})
	assert.Equal(t, "tok-abc", sess.Token)
	assert.Equal(t, "Ada Lovelace", sess.User.DisplayName)

	// Setting only the token must not disturb the user.
	sess = svc.Login(ctx, "sid-1", LoginInput{Token: strPtr("tok-def")})
	assert.Equal(t, "tok-def", sess.Token)
	assert.Equal(t, "Ada Lovelace", sess.User.DisplayName)
}

func TestSessionService_UpdateUserNilLeavesToken(t *testing.T) {
	svc, store := newSessionService()
	ctx := context.Background()

	profile := domainauth.Profile{UserID: "7"}
	svc.Login(ctx, "sid-1", LoginInput{Token: strPtr("tok-abc"), User: &profile})

	sess := svc.UpdateUser(ctx, "sid-1", nil)
	assert.Equal(t, "tok-abc", sess.Token)
	assert.Nil(t, sess.User)

	_, ok := store.User(ctx, "sid-1")
	assert.False(t, ok)
	token, ok := store.Token(ctx, "sid-1")
	require.True(t, ok)
	assert.Equal(t, "tok-abc", token)
}

func TestSessionService_LogoutClearsBoth(t *testing.T) {
	svc, store := newSessionService()
	ctx := context.Background()

	profile := domainauth.Profile{UserID: "7"}
	svc.Login(ctx, "sid-1", LoginInput{Token: strPtr("tok-abc"), User: &profile})
	svc.Logout(ctx, "sid-1")

	sess := svc.Session(ctx, "sid-1")
	assert.False(t, sess.Authenticated())
	assert.Nil(t, sess.User)

	_, ok := store.Token(ctx, "sid-1")
	assert.False(t, ok)
	_, ok = store.User(ctx, "sid-1")
	assert.False(t, ok)
}

func TestSessionService_SessionsAreIsolated(t *testing.T) {
	svc, _ := newSessionService()
	ctx := context.Background()

	svc.Login(ctx, "sid-1", LoginInput{Token: strPtr("tok-one")})
	svc.Login(ctx, "sid-2", LoginInput{Token: strPtr("tok-two")})

	assert.Equal(t, "tok-one", svc.Session(ctx, "sid-1").Token)
	assert.Equal(t, "tok-two", svc.Session(ctx, "sid-2").Token)

	svc.Logout(ctx, "sid-1")
	assert.False(t, svc.Session(ctx, "sid-1").Authenticated())
	assert.True(t, svc.Session(ctx, "sid-2").Authenticated())
}
