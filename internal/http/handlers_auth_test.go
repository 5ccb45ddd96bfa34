package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/auroracrm/console/internal/adapters/memory"
	"github.com/auroracrm/console/internal/apiclient"
	domainauth "github.com/auroracrm/console/internal/domain/auth"
	"github.com/auroracrm/console/internal/mocks"
	"github.com/auroracrm/console/internal/service"
)

func TestAuthHandlers_UpdateProfileReplacesSessionUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updated := &domainauth.Profile{DisplayName: "Ada Lovelace", StaffID: "A-7"}
	updater := mocks.NewMockProfileUpdater(ctrl)
	updater.EXPECT().
		UpdateProfile(gomock.Any(), map[string]any{"staffName": "Ada Lovelace"}).
		Return(updated, nil)

	store := memory.NewSessionStore()
	sessions := service.NewSessionService(service.SessionServiceOptions{Store: store})
	h := &AuthHandlers{Sessions: sessions, Profiles: updater}

	ctx := apiclient.WithSessionID(t.Context(), "sid-1")
	store.SaveToken(ctx, "sid-1", "tok")
	store.SaveUser(ctx, "sid-1", domainauth.Profile{DisplayName: "Ada"})

	body, err := json.Marshal(map[string]any{"staffName": "Ada Lovelace"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domainauth.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Ada Lovelace", got.DisplayName)

	// The stored session user follows the update; the token is untouched.
	user, ok := store.User(ctx, "sid-1")
	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", user.DisplayName)
	token, ok := store.Token(ctx, "sid-1")
	require.True(t, ok)
	assert.Equal(t, "tok", token)
}
