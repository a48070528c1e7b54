package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Session  SessionConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port          int
	Env           string
	LogLevel      string
	AllowedOrigin string
	LoginPath     string
}

// UpstreamConfig points at the HR REST API the gateway fronts.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds the cookie session configuration. Keys are derived
// from Secret, so rotating the secret invalidates every session at once.
type SessionConfig struct {
	Secret     string
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:          appPort,
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		LoginPath:     getEnv("LOGIN_PATH", "/login"),
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:8081/api/v1"),
		Timeout: upstreamTimeout,
	}

	sessionMaxAge, err := time.ParseDuration(getEnv("SESSION_MAX_AGE", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_MAX_AGE: %w", err)
	}

	config.Session = SessionConfig{
		Secret:     getEnv("SESSION_SECRET", ""),
		CookieName: getEnv("SESSION_COOKIE_NAME", "hr_session"),
		MaxAge:     sessionMaxAge,
		Secure:     config.App.Env != "development",
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if len(c.Session.Secret) < 16 {
		return fmt.Errorf("SESSION_SECRET must be at least 16 characters")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
