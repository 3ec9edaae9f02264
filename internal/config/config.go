package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// XConfig holds the X (Twitter) app credentials and the simulated login flow settings.
// The credentials are read so deployments can provide them, but nothing sends them anywhere.
type XConfig struct {
	APIKey        string        `env:"API_KEY"`
	APISecret     string        `env:"API_SECRET"`
	BearerToken   string        `env:"BEARER_TOKEN"`
	AuthorizeURL  string        `env:"AUTHORIZE_URL" envDefault:"/auth/x/authorize"`
	CallbackURL   string        `env:"CALLBACK_URL" envDefault:"/"`
	RedirectURL   string        `env:"REDIRECT_URL" envDefault:"/"`
	Scopes        []string      `env:"SCOPES" envSeparator:"," envDefault:"tweet.read,users.read,offline.access"`
	RedirectDelay time.Duration `env:"REDIRECT_DELAY" envDefault:"2s"`
	PendingTTL    time.Duration `env:"PENDING_TTL" envDefault:"15m"`
}

// HasCredentials reports whether all three X credentials were supplied.
func (c XConfig) HasCredentials() bool {
	return c.APIKey != "" && c.APISecret != "" && c.BearerToken != ""
}

type Config struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppName string `env:"APP_NAME" envDefault:"X Raider Tracker"`
	Port    string `env:"PORT" envDefault:"8080"`

	// DBDriver is "sqlite" or "postgres". The default DSN keeps everything in process memory.
	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBDSN    string `env:"DB_DSN" envDefault:"file::memory:?cache=shared"`

	// StateStore selects where identities and login attempts live: "memory" or "redis".
	StateStore    string `env:"STATE_STORE" envDefault:"memory"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	ClientTokenSecret string        `env:"CLIENT_TOKEN_SECRET" envDefault:"dev-client-secret"`
	ReportInterval    time.Duration `env:"REPORT_INTERVAL" envDefault:"1h"`
	RosterTTL         time.Duration `env:"ROSTER_TTL" envDefault:"5m"`
	RosterRefresh     time.Duration `env:"ROSTER_REFRESH" envDefault:"1m"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	X XConfig `envPrefix:"X_"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.StateStore {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported STATE_STORE %q", c.StateStore)
	}
	if c.ClientTokenSecret == "" {
		return errors.New("CLIENT_TOKEN_SECRET must not be empty")
	}
	if c.X.RedirectDelay < 0 {
		return errors.New("X_REDIRECT_DELAY must not be negative")
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
