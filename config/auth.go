package config

// AuthConfig contains authentication configuration.
type AuthConfig struct {
	// Mode selects the authenticator: "remote" calls the upstream CRM
	// auth endpoints; "mock" accepts the configured demo credentials.
	Mode string `env:"AUTH_MODE" envDefault:"remote"`

	// MockUsername and MockPassword are the accepted demo credential
	// pair in mock mode.
	MockUsername string `env:"AUTH_MOCK_USERNAME" envDefault:"demo@auroracrm.com"`
	MockPassword string `env:"AUTH_MOCK_PASSWORD" envDefault:"Pass@123"`

	// MockSigningSecret signs the locally minted demo token.
	MockSigningSecret string `env:"AUTH_MOCK_SIGNING_SECRET" envDefault:""`
}

// IsMock reports whether the mock authenticator is selected.
func (a AuthConfig) IsMock() bool { return a.Mode == "mock" }
