package config

// RedisConfig contains the session store connection settings. In dev
// mode an in-memory store is used instead and these are ignored.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
