package ports

// Package ports defines interfaces (hexagonal ports) for auth and CRM
// behavior. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"

	domainauth "github.com/auroracrm/console/internal/domain/auth"
)

// AuthResult is the uniform outcome of the credential and OTP endpoints.
// Authenticators never return an error: transport and non-2xx failures
// are folded into Success=false with a human-readable Message.
type AuthResult struct {
	Success bool
	Message string
	// Token is the issued bearer credential, when one was issued.
	Token string
	// Verified reports the account's verification flag. Success without
	// Verified means the caller must route to OTP verification.
	Verified bool
	// Profile is the normalized profile carried by the payload, when the
	// endpoint returned one (the OTP endpoint does not).
	Profile *domainauth.Profile
}

// CredentialAuthenticator calls the upstream credential and OTP
// verification endpoints, normalizing their heterogeneous success and
// failure shapes.
type CredentialAuthenticator interface {
	// Login submits a username/password pair. Success alone does not mean
	// the user is authenticated end to end; see AuthResult.Verified.
	Login(ctx context.Context, username, password string) AuthResult

	// VerifyOTP submits the email, staff identifier, and one-time code.
	// On success the result carries a token only.
	VerifyOTP(ctx context.Context, email, staffID, code string) AuthResult
}

// ProfileUpdater pushes the editable profile form upstream and returns
// the updated normalized profile.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, form map[string]any) (*domainauth.Profile, error)
}
