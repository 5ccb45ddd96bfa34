package httpx

import (
	"log/slog"
	"mime"
	"net/http"

	"github.com/auroracrm/console/internal/apiclient"
	"github.com/auroracrm/console/internal/errors"
	"github.com/auroracrm/console/internal/ports"
	"github.com/auroracrm/console/internal/service"
)

// AuthHandlers serves the sign-in, OTP, sign-out, and session status
// endpoints plus the profile read/update pair.
type AuthHandlers struct {
	Auth     *service.AuthService
	Sessions *service.SessionService
	Profiles ports.ProfileUpdater
	Logger   *slog.Logger
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// Login handles POST /api/auth/login. The console client posts JSON; the
// server-rendered login page posts a urlencoded form, which is answered
// with a redirect instead of a JSON body. A rejected credential pair is a
// 200 with success=false; the flow outcome is data, not an HTTP failure.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	in, fromForm, ok := readSignInRequest(w, r)
	if !ok {
		return
	}

	sid := apiclient.SessionIDFrom(r.Context())
	res, err := h.Auth.SignIn(r.Context(), sid, in)
	if err != nil {
		WriteError(w, err)
		return
	}
	if fromForm {
		if res.Success && !res.NeedsOTP {
			http.Redirect(w, r, "/", http.StatusSeeOther)
		} else {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		}
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// readSignInRequest decodes the sign-in body from either encoding. The
// second return reports a form submission, the third whether decoding
// succeeded (an error response has already been written when it did not).
func readSignInRequest(w http.ResponseWriter, r *http.Request) (service.SignInInput, bool, bool) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			WriteError(w, errors.Validation("malformed form body"))
			return service.SignInInput{}, true, false
		}
		return service.SignInInput{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
			Remember: r.PostFormValue("remember") != "",
		}, true, true
	}

	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return service.SignInInput{}, false, false
	}
	return service.SignInInput{
		Username: req.Username,
		Password: req.Password,
		Remember: req.Remember,
	}, false, true
}

type verifyOTPRequest struct {
	OTP string `json:"otp"`
}

// VerifyOTP handles POST /api/auth/verify-otp.
func (h *AuthHandlers) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sid := apiclient.SessionIDFrom(r.Context())
	res, err := h.Auth.VerifyOTP(r.Context(), sid, req.OTP)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	sid := apiclient.SessionIDFrom(r.Context())
	h.Auth.SignOut(r.Context(), sid)
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type statusResponse struct {
	Authenticated      bool   `json:"authenticated"`
	RememberedUsername string `json:"rememberedUsername,omitempty"`
}

// Status handles GET /api/auth/status. It never requires auth; the login
// page uses it to prefill the remembered username.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sid := apiclient.SessionIDFrom(r.Context())
	session := h.Sessions.Session(r.Context(), sid)
	WriteJSON(w, http.StatusOK, statusResponse{
		Authenticated:      session.Authenticated(),
		RememberedUsername: h.Auth.RememberedUsername(r.Context()),
	})
}

// Profile handles GET /api/profile for the authenticated user.
func (h *AuthHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	profile, ok := ProfileFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusOK, nil)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/profile. The form is forwarded as-is;
// the upstream owns which fields are editable. On success the stored
// session user is replaced with the returned profile.
func (h *AuthHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var form map[string]any
	if !DecodeJSON(w, r, &form) {
		return
	}

	profile, err := h.Profiles.UpdateProfile(r.Context(), form)
	if err != nil {
		WriteError(w, err)
		return
	}

	sid := apiclient.SessionIDFrom(r.Context())
	session := h.Sessions.UpdateUser(r.Context(), sid, profile)
	WriteJSON(w, http.StatusOK, session.User)
}
