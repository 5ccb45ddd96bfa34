package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/auroracrm/console/internal/domain/auth"
)

func TestSessionStore_TokenAndUserAreIndependent(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	store.SaveToken(ctx, "sid-1", "tok")
	store.SaveUser(ctx, "sid-1", domainauth.Profile{UserID: "7"})

	store.RemoveUser(ctx, "sid-1")
	token, ok := store.Token(ctx, "sid-1")
	require.True(t, ok)
	assert.Equal(t, "tok", token)

	store.SaveUser(ctx, "sid-1", domainauth.Profile{UserID: "7"})
	store.RemoveToken(ctx, "sid-1")
	_, ok = store.User(ctx, "sid-1")
	assert.True(t, ok)
}

func TestSessionStore_ClearRemovesBoth(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	store.SaveToken(ctx, "sid-1", "tok")
	store.SaveUser(ctx, "sid-1", domainauth.Profile{UserID: "7"})
	store.Clear(ctx, "sid-1")

	_, ok := store.Token(ctx, "sid-1")
	assert.False(t, ok)
	_, ok = store.User(ctx, "sid-1")
	assert.False(t, ok)
}

func TestSessionStore_UserCopyIsIsolated(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	store.SaveUser(ctx, "sid-1", domainauth.Profile{DisplayName: "Ada"})
	got, ok := store.User(ctx, "sid-1")
	require.True(t, ok)
	got.DisplayName = "mutated"

	again, ok := store.User(ctx, "sid-1")
	require.True(t, ok)
	assert.Equal(t, "Ada", again.DisplayName)
}

func TestSessionStore_EmptyTokenReadsAsAbsent(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	store.SaveToken(ctx, "sid-1", "")
	_, ok := store.Token(ctx, "sid-1")
	assert.False(t, ok)
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sid := fmt.Sprintf("sid-%d", i)
			store.SaveToken(ctx, sid, "tok")
			store.SaveUser(ctx, sid, domainauth.Profile{UserID: sid})
			store.Token(ctx, sid)
			store.Clear(ctx, sid)
		}()
	}
	wg.Wait()
}

func TestSessionStore_RememberedUserLifecycle(t *testing.T) {
	store := NewSessionStore()
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
