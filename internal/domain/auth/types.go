package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of transport/adapter concerns.

import "time"

// Profile is the canonical staff profile shape. Upstream payloads spell
// these fields in several casings and aliases; ProfileFromPayload is the
// single place that probing happens. Consumers only ever see this struct.
type Profile struct {
	UserID       string    `json:"userId,omitempty"`
	StaffID      string    `json:"staffId,omitempty"`
	DisplayName  string    `json:"displayName,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role,omitempty"`
	Username     string    `json:"username,omitempty"`
	DepartmentID string    `json:"departmentId,omitempty"`
	Verified     bool      `json:"verified,omitempty"`
	LastLogin    time.Time `json:"lastLogin,omitzero"`
}

// Session is the per-tab authentication state: an opaque bearer token and
// a profile. The two dimensions are independently nullable: after
// credential submission but before OTP the profile may be known while no
// token has been issued yet.
type Session struct {
	Token string   `json:"token,omitempty"`
	User  *Profile `json:"user,omitempty"`
}

// Authenticated reports whether the session carries a bearer token.
func (s Session) Authenticated() bool { return s.Token != "" }

// PendingVerification is the transient handoff from credential login to
// OTP verification for accounts that are not yet verified. It is never
// written to the token or user keys and is lost with the session.
type PendingVerification struct {
	Remember bool    `json:"remember"`
	Profile  Profile `json:"profile"`
}
