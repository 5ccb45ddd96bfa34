package mockauth

// Package mockauth provides a config-driven CredentialAuthenticator for
// local development. It recognizes a single demo credential pair and mints
// a signed token locally, so the console can run without the upstream CRM
// auth service.

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/auroracrm/console/internal/domain/auth"
	"github.com/auroracrm/console/internal/ports"
)

// Config controls the mock auth provider behavior. Zero values fall back
// to the standard demo identity.
type Config struct {
	Username      string
	Password      string
	SigningSecret string
	TokenDuration time.Duration // default 8h when zero
	Logger        *slog.Logger
}

const (
	defaultUsername = "demo@auroracrm.com"
	defaultPassword = "Pass@123"
	defaultSecret   = "mockauth-local-secret"
)

// Provider implements ports.CredentialAuthenticator against a fixed
// credential pair. Accounts are always verified, so the OTP branch is
// never taken, but VerifyOTP still answers for completeness.
type Provider struct {
	username string
	password string
	secret   []byte
	duration time.Duration
	logger   *slog.Logger
}

var _ ports.CredentialAuthenticator = (*Provider)(nil)

// NewProvider constructs a mock auth provider from Config.
func NewProvider(cfg Config) *Provider {
	username := cfg.Username
	if username == "" {
		username = defaultUsername
	}
	password := cfg.Password
	if password == "" {
		password = defaultPassword
	}
	secret := cfg.SigningSecret
	if secret == "" {
		secret = defaultSecret
	}
	dur := cfg.TokenDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		username: username,
		password: password,
		secret:   []byte(secret),
		duration: dur,
		logger:   logger,
	}
}

// Login accepts exactly the configured credential pair and issues a
// locally signed token together with the demo profile.
func (p *Provider) Login(ctx context.Context, username, password string) ports.AuthResult {
	if username != p.username || password != p.password {
		return ports.AuthResult{Success: false, Message: "Login failed. Please check credentials."}
	}

	profile := p.profile()
	token, err := p.mintToken(profile)
	if err != nil {
		p.logger.ErrorContext(ctx, "mint mock token", "error", err)
		return ports.AuthResult{Success: false, Message: "Login failed. Please check credentials."}
	}

	return ports.AuthResult{
		Success:  true,
		Token:    token,
		Verified: true,
		Profile:  profile,
	}
}

// VerifyOTP accepts any six-digit code for the demo account. The mock
// account is verified so real flows never reach here.
func (p *Provider) VerifyOTP(ctx context.Context, email, staffID, code string) ports.AuthResult {
	if email != p.username {
		return ports.AuthResult{Success: false, Message: "Login failed. Please check OTP."}
	}
	profile := p.profile()
	token, err := p.mintToken(profile)
	if err != nil {
		p.logger.ErrorContext(ctx, "mint mock token", "error", err)
		return ports.AuthResult{Success: false, Message: "Login failed. Please check OTP."}
	}
	return ports.AuthResult{Success: true, Token: token, Verified: true}
}

func (p *Provider) profile() *domainauth.Profile {
	return &domainauth.Profile{
		UserID:      "1",
		StaffID:     "0000",
		DisplayName: "Demo User",
		Email:       p.username,
		Phone:       "0000000000",
		Role:        "Demo",
		Username:    p.username,
		Verified:    true,
		LastLogin:   time.Now(),
	}
}

func (p *Provider) mintToken(profile *domainauth.Profile) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   profile.UserID,
		"email": profile.Email,
		"name":  profile.DisplayName,
		"role":  profile.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(p.duration).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}
