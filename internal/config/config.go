package config

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

var knownWeakSecrets = []string{
	"change-me", "dev-secret-change-me", "secret", "admin", "password",
}

type Config struct {
	Port                  int    `env:"PORT" envDefault:"8080"`
	AppEnv                string `env:"APP_ENV" envDefault:"development"`
	DatabaseURL           string `env:"DATABASE_URL,required"`
	RedisURL              string `env:"REDIS_URL,required"`
	LogLevel              string `env:"LOG_LEVEL" envDefault:"info"`
	AdminEmail            string `env:"ADMIN_EMAIL"`
	AdminPassword         string `env:"ADMIN_PASSWORD"`
	AdminPasswordHash     string `env:"ADMIN_PASSWORD_HASH"`
	SessionSecret         string `env:"SESSION_SECRET" envDefault:"dev-secret-change-me"`
	OIDCIssuer            string `env:"OIDC_ISSUER"`
	OIDCClientID          string `env:"OIDC_CLIENT_ID"`
	OIDCClientSecret      string `env:"OIDC_CLIENT_SECRET"`
	OIDCRedirectURL       string `env:"OIDC_REDIRECT_URL"`
	MaxDocumentBytes      int64  `env:"MAX_DOCUMENT_BYTES" envDefault:"10485760"`
	DocumentEncryptionKey string `env:"DOCUMENT_ENCRYPTION_KEY"`
	StaticDir             string `env:"STATIC_DIR" envDefault:"static"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsProduction drives cookie Secure flags and HSTS.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func (c *Config) AdminConfigured() bool {
	return c.AdminEmail != "" && (c.AdminPassword != "" || c.AdminPasswordHash != "")
}

func (c *Config) OIDCEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}

// MaxBodyBytes leaves room for base64 expansion of the largest document.
func (c *Config) MaxBodyBytes() int64 {
	return c.MaxDocumentBytes*4/3 + 64*1024
}

func (c *Config) SessionTTL() time.Duration {
	return SessionMaxAge
}

func (c *Config) Validate() error {
	if c.AdminPasswordHash != "" {
		if !strings.HasPrefix(c.AdminPasswordHash, "$2a$") &&
			!strings.HasPrefix(c.AdminPasswordHash, "$2b$") &&
			!strings.HasPrefix(c.AdminPasswordHash, "$2y$") {
			return fmt.Errorf("ADMIN_PASSWORD_HASH must be a bcrypt hash (generate with: server hash-password <password>)")
		}
	}

	if c.DocumentEncryptionKey != "" {
		key, err := hex.DecodeString(c.DocumentEncryptionKey)
		if err != nil || len(key) != 32 {
			return fmt.Errorf("DOCUMENT_ENCRYPTION_KEY must be 64 hex characters")
		}
	}

	if c.MaxDocumentBytes <= 0 {
		return fmt.Errorf("MAX_DOCUMENT_BYTES must be positive")
	}

	if c.IsProduction() {
		if err := validateSecret("SESSION_SECRET", c.SessionSecret); err != nil {
			return err
		}
		if c.AdminPassword != "" && c.AdminPasswordHash == "" {
			log.Warn().Msg("ADMIN_PASSWORD is set in plain text in production: consider ADMIN_PASSWORD_HASH")
		}
		if strings.HasPrefix(c.RedisURL, "redis://") {
			log.Warn().Msg("REDIS_URL uses redis:// (not TLS) in production: consider using rediss://")
		}
		if c.DocumentEncryptionKey == "" {
			log.Warn().Msg("DOCUMENT_ENCRYPTION_KEY is empty in production: documents are stored unencrypted")
		}
	}

	if !c.AdminConfigured() {
		log.Warn().Msg("ADMIN_EMAIL / ADMIN_PASSWORD not set: admin login disabled")
	}

	return nil
}

func validateSecret(name, value string) error {
	if len(value) < 32 {
		return fmt.Errorf("%s must be at least 32 characters in production (generate with: openssl rand -base64 32)", name)
	}
	for _, weak := range knownWeakSecrets {
		if value == weak {
			return fmt.Errorf("%s is a known weak default; set a strong secret in production", name)
		}
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
