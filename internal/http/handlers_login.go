package httpx

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/auroracrm/console/internal/apiclient"
	"github.com/auroracrm/console/internal/service"
)

// loginPage is the minimal server-rendered sign-in form. The console UI
// proper is a separate client; this page exists as the redirect target
// for unauthenticated browser navigation.
var loginPage = template.Must(template.New("login").Parse(`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Aurora CRM Console</title></head>
<body>
<h1>Sign in</h1>
<form method="post" action="/api/auth/login" id="login-form">
  <label>Username <input name="username" value="{{.RememberedUsername}}" autocomplete="username"></label>
  <label>Password <input name="password" type="password" autocomplete="current-password"></label>
  <label><input name="remember" type="checkbox"{{if .RememberedUsername}} checked{{end}}> Remember me</label>
  <button type="submit">Sign in</button>
</form>
</body>
</html>
`))

var homePage = template.Must(template.New("home").Parse(`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Aurora CRM Console</title></head>
<body>
<h1>Aurora CRM Console</h1>
<p>Signed in as {{.DisplayName}}.</p>
</body>
</html>
`))

// LoginPageHandlers serves the GET /login redirect target.
type LoginPageHandlers struct {
	Auth     *service.AuthService
	Sessions *service.SessionService
	Logger   *slog.Logger
}

type loginPageData struct {
	RememberedUsername string
}

// Show renders the sign-in form with the remembered username prefilled.
// Already-authenticated sessions are bounced back to the root.
func (h *LoginPageHandlers) Show(w http.ResponseWriter, r *http.Request) {
	sid := apiclient.SessionIDFrom(r.Context())
	if h.Sessions.Session(r.Context(), sid).Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := loginPageData{RememberedUsername: h.Auth.RememberedUsername(r.Context())}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := loginPage.Execute(w, data); err != nil {
		h.Logger.Error("render login page", slog.Any("error", err))
	}
}

// Home renders the landing shell for an authenticated session.
func (h *LoginPageHandlers) Home(w http.ResponseWriter, r *http.Request) {
	name := ""
	if profile, ok := ProfileFromContext(r.Context()); ok {
		name = profile.DisplayName
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homePage.Execute(w, struct{ DisplayName string }{name}); err != nil {
		h.Logger.Error("render home page", slog.Any("error", err))
	}
}
