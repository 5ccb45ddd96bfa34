package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestLoginPayloadFrom_EnvelopedShape(t *testing.T) {
	body := decode(t, `{
		"data": {
			"token": "tok-abc",
			"isVerified": true,
			"userProfile": {
				"userId": 7,
				"staffId": "A-7",
				"staffName": "Ada Lovelace",
				"emailId": "ada@example.com",
				"phoneNo": "5550001111",
				"role": "Agent",
				"userName": "ada",
				"departmentId": 3
			}
		}
	}`)

	p := LoginPayloadFrom(body)
	assert.Equal(t, "tok-abc", p.Token)
	assert.True(t, p.Verified)
	require.NotNil(t, p.Profile)
	assert.Equal(t, "7", p.Profile.UserID)
	assert.Equal(t, "A-7", p.Profile.StaffID)
	assert.Equal(t, "Ada Lovelace", p.Profile.DisplayName)
	assert.Equal(t, "ada@example.com", p.Profile.Email)
	assert.Equal(t, "5550001111", p.Profile.Phone)
	assert.Equal(t, "Agent", p.Profile.Role)
	assert.Equal(t, "ada", p.Profile.Username)
	assert.Equal(t, "3", p.Profile.DepartmentID)
}

func TestLoginPayloadFrom_FlatShape(t *testing.T) {
	body := decode(t, `{
		"token": "tok-flat",
		"isVerified": false,
		"user": {"Id": 9, "StaffName": "Grace", "Email": "grace@example.com"}
	}`)

	p := LoginPayloadFrom(body)
	assert.Equal(t, "tok-flat", p.Token)
	assert.False(t, p.Verified)
	require.NotNil(t, p.Profile)
	assert.Equal(t, "9", p.Profile.UserID)
	assert.Equal(t, "Grace", p.Profile.DisplayName)
	assert.Equal(t, "grace@example.com", p.Profile.Email)
}

func TestLoginPayloadFrom_AccessTokenAlias(t *testing.T) {
	p := LoginPayloadFrom(decode(t, `{"accessToken": "tok-alt"}`))
	assert.Equal(t, "tok-alt", p.Token)
	assert.Nil(t, p.Profile)
}

func TestLoginPayloadFrom_MissingEverything(t *testing.T) {
	p := LoginPayloadFrom(decode(t, `{"unrelated": true}`))
	assert.Empty(t, p.Token)
	assert.False(t, p.Verified)
	assert.Nil(t, p.Profile)
}

func TestProfileFromPayload_AliasOrder(t *testing.T) {
	// The first alias in the chain wins when several are present.
	prof := ProfileFromPayload(decode(t, `{
		"staffName": "Primary",
		"name": "Secondary",
		"emailId": "first@example.com",
		"email": "second@example.com"
	}`))
	assert.Equal(t, "Primary", prof.DisplayName)
	assert.Equal(t, "first@example.com", prof.Email)
}

func TestProfileFromPayload_NumericIdentifiers(t *testing.T) {
	prof := ProfileFromPayload(decode(t, `{"userId": 12345, "staffId": 678, "phoneNo": 5550001111}`))
	assert.Equal(t, "12345", prof.UserID)
	assert.Equal(t, "678", prof.StaffID)
	assert.Equal(t, "5550001111", prof.Phone)
}

func TestProfileFromPayload_LastLogin(t *testing.T) {
	prof := ProfileFromPayload(decode(t, `{"lastLogin": "2026-08-30T10:15:00Z"}`))
	require.False(t, prof.LastLogin.IsZero())
	assert.Equal(t, 2026, prof.LastLogin.Year())

	// Unparseable timestamps stay zero rather than failing.
	prof = ProfileFromPayload(decode(t, `{"lastLogin": "yesterday"}`))
	assert.True(t, prof.LastLogin.IsZero())
}
