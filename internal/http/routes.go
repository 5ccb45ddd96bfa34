package httpx

import (
	"log/slog"
	"net/http"

	"github.com/auroracrm/console/internal/ports"
	"github.com/auroracrm/console/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth        *service.AuthService
	Sessions    *service.SessionService
	Customers   *service.CustomerService
	Tickets     *service.TicketService
	Chat        *service.ChatService
	FormOptions *service.FormOptionsService
	Profiles    ports.ProfileUpdater
	Uploader    ports.Uploader
	Logger      *slog.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authHandlers := &AuthHandlers{
		Auth:     services.Auth,
		Sessions: services.Sessions,
		Profiles: services.Profiles,
		Logger:   logger,
	}
	customerHandlers := &CustomerHandlers{Customers: services.Customers}
	ticketHandlers := &TicketHandlers{Tickets: services.Tickets, Chat: services.Chat}
	lookupHandlers := &LookupHandlers{FormOptions: services.FormOptions}
	uploadHandlers := &UploadHandlers{Uploader: services.Uploader}
	loginHandlers := &LoginPageHandlers{Auth: services.Auth, Sessions: services.Sessions, Logger: logger}

	mux := http.NewServeMux()

	// Public surface: the sign-in flow and the login page.
	mux.HandleFunc("GET /login", loginHandlers.Show)
	mux.HandleFunc("POST /api/auth/login", authHandlers.Login)
	mux.HandleFunc("POST /api/auth/verify-otp", authHandlers.VerifyOTP)
	mux.HandleFunc("POST /api/auth/logout", authHandlers.Logout)
	mux.HandleFunc("GET /api/auth/status", authHandlers.Status)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Authenticated surface.
	authed := http.NewServeMux()
	authed.HandleFunc("GET /api/profile", authHandlers.Profile)
	authed.HandleFunc("PUT /api/profile", authHandlers.UpdateProfile)
	authed.HandleFunc("POST /api/customers/search", customerHandlers.Search)
	authed.HandleFunc("GET /api/form-options", lookupHandlers.Options)
	authed.HandleFunc("GET /api/employees", lookupHandlers.Employees)
	authed.HandleFunc("GET /api/tickets", ticketHandlers.Queue)
	authed.HandleFunc("POST /api/tickets", ticketHandlers.Create)
	authed.HandleFunc("GET /api/tickets/{id}", ticketHandlers.Get)
	authed.HandleFunc("POST /api/tickets/{id}/resolve", ticketHandlers.Resolve)
	authed.HandleFunc("GET /api/tickets/{id}/comments", ticketHandlers.Comments)
	authed.HandleFunc("POST /api/tickets/{id}/comments", ticketHandlers.InsertComment)
	authed.HandleFunc("POST /api/uploads", uploadHandlers.Upload)

	requireAuth := RequireAuth(services.Sessions)
	mux.Handle("/api/", requireAuth(authed))
	mux.Handle("GET /{$}", requireAuth(http.HandlerFunc(loginHandlers.Home)))

	var handler http.Handler = mux
	handler = EnsureSession()(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
