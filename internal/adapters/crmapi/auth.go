package crmapi

// Package crmapi adapts the upstream CRM REST API to the console's ports.
// Every call goes through the shared apiclient pipeline; this package
// only knows paths, request bodies, and how to normalize the loosely
// typed response shapes.

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/auroracrm/console/internal/apiclient"
	domainauth "github.com/auroracrm/console/internal/domain/auth"
	"github.com/auroracrm/console/internal/errors"
	"github.com/auroracrm/console/internal/ports"
)

const (
	loginPath     = "auth/login"
	verifyOTPPath = "auth/verify-otp"
)

// Authenticator calls the upstream credential and OTP endpoints. It
// implements ports.CredentialAuthenticator and ports.ProfileUpdater with
// the normalize-never-fail contract: transport and non-2xx outcomes fold
// into AuthResult, they are never raised to the caller.
type Authenticator struct {
	client      *apiclient.Client
	profilePath string
	logger      *slog.Logger
}

var (
	_ ports.CredentialAuthenticator = (*Authenticator)(nil)
	_ ports.ProfileUpdater          = (*Authenticator)(nil)
)

// NewAuthenticator constructs an Authenticator. profilePath is the
// upstream profile-update endpoint (PUT).
func NewAuthenticator(client *apiclient.Client, profilePath string, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{client: client, profilePath: profilePath, logger: logger}
}

// Login submits credentials and normalizes the heterogeneous response.
// Success alone does not mean end-to-end authentication: the caller must
// inspect Verified and branch to OTP when the account is unverified.
func (a *Authenticator) Login(ctx context.Context, username, password string) ports.AuthResult {
	body := map[string]string{"username": username, "password": password}

	var decoded any
	if err := a.client.Post(ctx, loginPath, body, &decoded); err != nil {
		return failedResult(err, "Login failed. Please check credentials.")
	}

	payload := domainauth.LoginPayloadFrom(decoded)
	return ports.AuthResult{
		Success:  true,
		Token:    payload.Token,
		Verified: payload.Verified,
		Profile:  payload.Profile,
	}
}

// VerifyOTP submits the three identifiers. The OTP endpoint returns a
// token only; the caller completes login with the profile it already
// holds from the pending-verification handoff.
func (a *Authenticator) VerifyOTP(ctx context.Context, email, staffID, code string) ports.AuthResult {
	body := map[string]string{"email": email, "staffId": staffID, "otp": code}

	var decoded any
	if err := a.client.Post(ctx, verifyOTPPath, body, &decoded); err != nil {
		return failedResult(err, "Login failed. Please check OTP.")
	}

	payload := domainauth.LoginPayloadFrom(decoded)
	return ports.AuthResult{Success: true, Token: payload.Token}
}

// UpdateProfile PUTs the editable profile form and returns the updated
// profile, read through the normalization boundary regardless of which
// casing the server used.
func (a *Authenticator) UpdateProfile(ctx context.Context, form map[string]any) (*domainauth.Profile, error) {
	var decoded any
	if err := a.client.Put(ctx, a.profilePath, form, &decoded); err != nil {
		return nil, err
	}

	payload := domainauth.LoginPayloadFrom(decoded)
	if payload.Profile != nil {
		return payload.Profile, nil
	}
	// The server may echo the bare profile object without an envelope.
	profile := domainauth.ProfileFromPayload(decoded)
	return &profile, nil
}

// failedResult folds a pipeline error into a Success=false result,
// passing the server's message through when one was present.
func failedResult(err error, fallback string) ports.AuthResult {
	msg := fallback
	var appErr *errors.AppError
	if ok := stderrors.As(err, &appErr); ok && appErr.Status != 0 && appErr.Message != "" {
		msg = appErr.Message
	}
	return ports.AuthResult{Success: false, Message: msg}
}
