package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ServerConfig holds the settings of the quiz server.
// Every field can be set through a KOPFRECHNEN_ environment variable.
type ServerConfig struct {
	Port        int    `env:"KOPFRECHNEN_PORT" envDefault:"9090"`
	LogLevel    string `env:"KOPFRECHNEN_LOG_LEVEL" envDefault:"info"`
	AllowOrigin string `env:"KOPFRECHNEN_ALLOW_ORIGIN" envDefault:"*"`

	// DatabaseURL selects the session repository: empty keeps sessions in
	// memory only, sqlite://<path> or postgresql://... persist live sessions.
	DatabaseURL string `env:"KOPFRECHNEN_DATABASE_URL"`

	FirebaseProjectID       string `env:"KOPFRECHNEN_FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `env:"KOPFRECHNEN_FIREBASE_CREDENTIALS_FILE"`

	TLSCertFile string `env:"KOPFRECHNEN_TLS_CERT_FILE"`
	TLSKeyFile  string `env:"KOPFRECHNEN_TLS_KEY_FILE"`

	// Seed for the problem generator; 0 draws a random seed at startup.
	Seed int64 `env:"KOPFRECHNEN_SEED" envDefault:"0"`

	LoopInterval   time.Duration `env:"KOPFRECHNEN_LOOP_INTERVAL" envDefault:"100ms"`
	SaveInterval   time.Duration `env:"KOPFRECHNEN_SAVE_INTERVAL" envDefault:"10s"`
	ReapInterval   time.Duration `env:"KOPFRECHNEN_REAP_INTERVAL" envDefault:"1m"`
	SessionTTL     time.Duration `env:"KOPFRECHNEN_SESSION_TTL" envDefault:"2h"`
	EventQueueSize int           `env:"KOPFRECHNEN_EVENT_QUEUE_SIZE" envDefault:"1024"`
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, filename := range filenames {
		if err := godotenv.Load(filename); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %v", filename, err)
		}
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerConfig parses the server configuration from the environment.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that env parsing cannot.
func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.LoopInterval <= 0 {
		return fmt.Errorf("loop interval must be positive")
	}
	if c.EventQueueSize <= 0 {
		return fmt.Errorf("event queue size must be positive")
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return fmt.Errorf("both TLS cert and key files must be set")
	}
	if c.DatabaseURL != "" {
		u, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to parse database url: %v", err)
		}
		switch u.Scheme {
		case "sqlite", "postgres", "postgresql":
		default:
			return fmt.Errorf("unknown database type %s", u.Scheme)
		}
	}
	return nil
}

// TLSEnabled reports whether the server should listen with TLS.
func (c *ServerConfig) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// AuthEnabled reports whether requests must carry a Firebase ID token.
func (c *ServerConfig) AuthEnabled() bool {
	return c.FirebaseProjectID != ""
}
