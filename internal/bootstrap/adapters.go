package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/auroracrm/console/config"
	"github.com/auroracrm/console/internal/adapters/crmapi"
	"github.com/auroracrm/console/internal/adapters/memory"
	"github.com/auroracrm/console/internal/adapters/mockauth"
	redisstore "github.com/auroracrm/console/internal/adapters/redis"
	"github.com/auroracrm/console/internal/apiclient"
	"github.com/auroracrm/console/internal/ports"
	"github.com/auroracrm/console/internal/service"
)

// profileUpdatePath is the upstream profile-update endpoint.
const profileUpdatePath = "auth/profile"

// ServiceContainer bundles the constructed services and adapters handed
// to the HTTP layer.
type ServiceContainer struct {
	Auth        *service.AuthService
	Sessions    *service.SessionService
	Customers   *service.CustomerService
	Tickets     *service.TicketService
	Chat        *service.ChatService
	FormOptions *service.FormOptionsService
	Profiles    ports.ProfileUpdater
	Uploader    ports.Uploader

	// RedisClient is non-nil when the redis session store is in use;
	// the caller owns closing it.
	RedisClient redis.UniversalClient
}

// ServiceDeps contains dependencies for building the service container.
type ServiceDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// sessionBackend pairs the two store interfaces a single backend serves.
type sessionBackend interface {
	ports.SessionStore
	ports.RememberedUserStore
}

// NewServices wires the session store, upstream clients, adapters, and
// services. Dev mode selects the in-memory store and the mock
// authenticator so the console runs self-contained.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var store sessionBackend
	var redisClient redis.UniversalClient
	if cfg.IsDev {
		logger.Info("using in-memory session store")
		store = memory.NewSessionStore()
	} else {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = redisstore.NewSessionStore(redisClient, logger)
	}

	sessions := service.NewSessionService(service.SessionServiceOptions{Store: store, Logger: logger})

	// The 401 interceptor removes the token itself; the hook completes
	// the session clear by dropping the stored user as well.
	onAuthExpired := func(ctx context.Context, sid string) {
		store.RemoveUser(ctx, sid)
	}

	crmClient, err := apiclient.New(apiclient.Options{
		BaseURL:       cfg.API.CRMBaseURL,
		Tokens:        store,
		OnAuthExpired: onAuthExpired,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("crm api client: %w", err)
	}
	commentClient, err := apiclient.New(apiclient.Options{
		BaseURL:       cfg.API.CommentBaseURL,
		Tokens:        store,
		OnAuthExpired: onAuthExpired,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("comment api client: %w", err)
	}
	uploadClient, err := apiclient.New(apiclient.Options{
		BaseURL:       cfg.API.UploadBaseURL,
		Tokens:        store,
		OnAuthExpired: onAuthExpired,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("upload api client: %w", err)
	}

	remoteAuth := crmapi.NewAuthenticator(crmClient, profileUpdatePath, logger)
	var authenticator ports.CredentialAuthenticator = remoteAuth
	if cfg.Auth.IsMock() {
		logger.Info("using mock authenticator", "username", cfg.Auth.MockUsername)
		authenticator = mockauth.NewProvider(mockauth.Config{
			Username:      cfg.Auth.MockUsername,
			Password:      cfg.Auth.MockPassword,
			SigningSecret: cfg.Auth.MockSigningSecret,
			Logger:        logger,
		})
	}

	auth := service.NewAuthService(service.AuthServiceOptions{
		Authenticator: authenticator,
		Sessions:      sessions,
		Store:         store,
		Remembered:    store,
		Logger:        logger,
	})

	return &ServiceContainer{
		Auth:        auth,
		Sessions:    sessions,
		Customers:   service.NewCustomerService(service.CustomerServiceOptions{Directory: crmapi.NewCustomerDirectory(crmClient), Logger: logger}),
		Tickets:     service.NewTicketService(service.TicketServiceOptions{Tickets: crmapi.NewTickets(crmClient), Logger: logger}),
		Chat:        service.NewChatService(service.ChatServiceOptions{Chat: crmapi.NewChat(commentClient), Logger: logger}),
		FormOptions: service.NewFormOptionsService(service.FormOptionsServiceOptions{Lookups: crmapi.NewLookups(crmClient), Logger: logger}),
		Profiles:    remoteAuth,
		Uploader:    crmapi.NewUploader(uploadClient, cfg.API.MediaHost, cfg.API.UploadAppID),
		RedisClient: redisClient,
	}, nil
}
