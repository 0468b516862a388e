package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Store backends accepted by STORE_BACKEND.
const (
	StoreBackendFile  = "file"
	StoreBackendRedis = "redis"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":3500"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`
	AppLocale         string        `envconfig:"APP_LOCALE" default:"pt-BR"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	SessionSecret string        `envconfig:"SESSION_SECRET" default:"segredo-sessao"`
	SessionCookie string        `envconfig:"SESSION_COOKIE" default:"fornecedor_session"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"24h"`

	StoreBackend  string `envconfig:"STORE_BACKEND" default:"file"`
	StoreFile     string `envconfig:"STORE_FILE" default:"fornecedores.json"`
	StoreRedisKey string `envconfig:"STORE_REDIS_KEY" default:"fornecedores"`

	AuthUser       string `envconfig:"AUTH_USER" default:"adm"`
	AuthPass       string `envconfig:"AUTH_PASS" default:"123456"`
	AuthPassBcrypt string `envconfig:"AUTH_PASS_BCRYPT"`

	RateLimitPerMinute int  `envconfig:"RATE_LIMIT_PER_MINUTE" default:"0"`
	JobsEnabled        bool `envconfig:"JOBS_ENABLED" default:"false"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the application cannot start with.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreBackendFile:
		if c.StoreFile == "" {
			return errors.New("store file must be provided")
		}
	case StoreBackendRedis:
		if c.StoreRedisKey == "" {
			return errors.New("store redis key must be provided")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
	if c.SessionCookie == "" {
		return errors.New("session cookie name must be provided")
	}
	if c.AuthUser == "" {
		return errors.New("auth user must be provided")
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
