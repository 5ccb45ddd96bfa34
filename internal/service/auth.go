package service

import (
	"context"
	"log/slog"

	domainauth "github.com/auroracrm/console/internal/domain/auth"
	"github.com/auroracrm/console/internal/errors"
	"github.com/auroracrm/console/internal/ports"
)

// otpLength is the number of digits in a one-time code. Shorter input is
// rejected locally; no network call is made.
const otpLength = 6

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Authenticator ports.CredentialAuthenticator
	Sessions      *SessionService
	Store         ports.SessionStore
	Remembered    ports.RememberedUserStore
	Logger        *slog.Logger
}

// AuthService orchestrates the credential and OTP sign-in flows,
// including the remembered-username lifecycle and the pending handoff
// between the two steps for unverified accounts.
type AuthService struct {
	auth       ports.CredentialAuthenticator
	sessions   *SessionService
	store      ports.SessionStore
	remembered ports.RememberedUserStore
	logger     *slog.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		auth:       opts.Authenticator,
		sessions:   opts.Sessions,
		store:      opts.Store,
		remembered: opts.Remembered,
		logger:     logger,
	}
}

// SignInInput groups parameters for the credential step.
type SignInInput struct {
	Username string
	Password string
	Remember bool
}

// SignInResult is the outcome of either sign-in step. Exactly one of
// three shapes comes back: a failure with a message, a verified success
// carrying the session, or NeedsOTP directing the caller to the
// verification step.
type SignInResult struct {
	Success  bool               `json:"success"`
	Message  string             `json:"message,omitempty"`
	NeedsOTP bool               `json:"needsOtp,omitempty"`
	Email    string             `json:"email,omitempty"`
	Session  domainauth.Session `json:"session,omitzero"`
}

// SignIn submits credentials. Verified accounts are logged in directly;
// unverified accounts get a pending handoff stored for the OTP step.
// Upstream failures fold into Success=false with the server's message.
func (s *AuthService) SignIn(ctx context.Context, sid string, in SignInInput) (*SignInResult, error) {
	if in.Username == "" || in.Password == "" {
		return nil, errors.Validation("username and password are required")
	}

	res := s.auth.Login(ctx, in.Username, in.Password)
	if !res.Success {
		return &SignInResult{Success: false, Message: res.Message}, nil
	}

	if !res.Verified {
		// Two-step flow: stash the profile and remember preference until
		// the OTP is confirmed. Nothing is written to the token or user
		// keys yet.
		pending := domainauth.PendingVerification{Remember: in.Remember}
		if res.Profile != nil {
			pending.Profile = *res.Profile
		}
		s.store.SavePending(ctx, sid, pending)
		s.logger.InfoContext(ctx, "login pending otp", "session", sid, "username", in.Username)
		return &SignInResult{Success: true, NeedsOTP: true, Email: pending.Profile.Email}, nil
	}

	sess := s.sessions.Login(ctx, sid, LoginInput{Token: &res.Token, User: res.Profile})
	s.applyRemember(ctx, in.Remember, in.Username)
	s.logger.InfoContext(ctx, "login verified", "session", sid, "username", in.Username)
	return &SignInResult{Success: true, Session: sess}, nil
}

// VerifyOTP completes the two-step flow. An incomplete code is rejected
// before any upstream call, and the pending handoff must still exist.
func (s *AuthService) VerifyOTP(ctx context.Context, sid, code string) (*SignInResult, error) {
	if len(code) != otpLength {
		return nil, errors.OTPIncomplete()
	}

	pending, ok := s.store.Pending(ctx, sid)
	if !ok {
		return nil, errors.Authentication("no sign-in awaiting verification")
	}

	res := s.auth.VerifyOTP(ctx, pending.Profile.Email, pending.Profile.StaffID, code)
	if !res.Success {
		return &SignInResult{Success: false, Message: res.Message}, nil
	}

	profile := pending.Profile
	profile.Verified = true
	sess := s.sessions.Login(ctx, sid, LoginInput{Token: &res.Token, User: &profile})
	username := profile.Username
	if username == "" {
		username = profile.Email
	}
	s.applyRemember(ctx, pending.Remember, username)
	s.store.RemovePending(ctx, sid)
	s.logger.InfoContext(ctx, "otp verified", "session", sid, "username", profile.Username)
	return &SignInResult{Success: true, Session: sess}, nil
}

// RememberedUsername returns the persisted login-form prefill, if any.
func (s *AuthService) RememberedUsername(ctx context.Context) string {
	username, _ := s.remembered.RememberedUser(ctx)
	return username
}

// SignOut clears the session. The remembered username survives sign-out.
func (s *AuthService) SignOut(ctx context.Context, sid string) {
	s.sessions.Logout(ctx, sid)
}

func (s *AuthService) applyRemember(ctx context.Context, remember bool, username string) {
	if remember && username != "" {
		s.remembered.SaveRememberedUser(ctx, username)
		return
	}
	s.remembered.RemoveRememberedUser(ctx)
}
