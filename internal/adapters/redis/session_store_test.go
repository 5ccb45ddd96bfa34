package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/auroracrm/console/internal/domain/auth"
	"github.com/auroracrm/console/internal/testutil"
)

func TestSessionStore_TokenRoundTrip(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client, nil)
	ctx := context.Background()

	_, ok := store.Token(ctx, "sid-1")
	assert.False(t, ok)

	store.SaveToken(ctx, "sid-1", "tok-abc")
	token, ok := store.Token(ctx, "sid-1")
	require.True(t, ok)
	assert.Equal(t, "tok-abc", token)

	store.RemoveToken(ctx, "sid-1")
	_, ok = store.Token(ctx, "sid-1")
	assert.False(t, ok)
}

func TestSessionStore_UserRoundTrip(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client, nil)
	ctx := context.Background()

	user := domainauth.Profile{UserID: "7", DisplayName: "Ada", StaffID: "A-7"}
	store.SaveUser(ctx, "sid-1", user)

	got, ok := store.User(ctx, "sid-1")
	require.True(t, ok)
	assert.Equal(t, user, *got)
}

func TestSessionStore_CorruptUserReadsAsAbsent(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client, nil)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "user:sid-1", "{not json", 0).Err())
	_, ok := store.User(ctx, "sid-1")
	assert.False(t, ok)
}

func TestSessionStore_ClearRemovesBothKeys(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client, nil)
	ctx := context.Background()

	store.SaveToken(ctx, "sid-1", "tok")
	store.SaveUser(ctx, "sid-1", domainauth.Profile{UserID: "7"})
	store.Clear(ctx, "sid-1")

	_, ok := store.Token(ctx, "sid-1")
	assert.False(t, ok)
	_, ok = store.User(ctx, "sid-1")
	assert.False(t, ok)
}

func TestSessionStore_PendingRoundTrip(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client, nil)
	ctx := context.Background()

	pending := domainauth.PendingVerification{
		Remember: true,
		Profile:  domainauth.Profile{Email: "ada@example.com", StaffID: "A-7"},
	}
	store.SavePending(ctx, "sid-1", pending)

	got, ok := store.Pending(ctx, "sid-1")
	require.True(t, ok)
	assert.Equal(t, pending, *got)

	// The handoff carries a TTL so abandoned sign-ins expire.
	ttl, err := client.TTL(ctx, "pending:sid-1").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)

	store.RemovePending(ctx, "sid-1")
	_, ok = store.Pending(ctx, "sid-1")
	assert.False(t, ok)
}

func TestSessionStore_RememberedUser(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client, nil)
	ctx := context.Background()

	_, ok := store.RememberedUser(ctx)
	assert.False(t, ok)

	store.SaveRememberedUser(ctx, "ada")
	username, ok := store.RememberedUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "ada", username)

	store.RemoveRememberedUser(ctx)
	_, ok = store.RememberedUser(ctx)
	assert.False(t, ok)
}

func TestSessionStore_EmptySessionIDIsNoop(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client, nil)
	ctx := context.Background()

	store.SaveToken(ctx, "", "tok")
	_, ok := store.Token(ctx, "")
	assert.False(t, ok)
}
