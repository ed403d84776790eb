// Package config provides centralized configuration management for the budget API.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Import   ImportConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Auth     AuthConfig
	AI       AIConfig
	Events   EventsConfig
	Logging  LoggingConfig
}

// AppConfig holds identity settings reported by the root endpoint.
type AppConfig struct {
	Name    string `env:"APP_NAME" default:"Budget Tracker API"`
	Version string `env:"APP_VERSION" default:"1.0.0"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8000)
	Port int `env:"SERVER_PORT" envAlt:"PORT" default:"8000"`

	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout bounds graceful shutdown, including the wait for running imports.
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string (required)
	URL string `env:"DATABASE_URL" envAlt:"DB_URL" required:"true"`

	MaxConns        int           `env:"DB_MAX_CONNS" default:"20"`
	MinConns        int           `env:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`

	// MigrateOnStart applies embedded schema migrations before serving.
	MigrateOnStart bool `env:"DB_MIGRATE_ON_START" default:"true"`
}

// ImportConfig holds CSV import settings.
type ImportConfig struct {
	// MaxFileSize is the maximum accepted upload in bytes (default: 10MB)
	MaxFileSize int64 `env:"IMPORT_MAX_FILE_SIZE" envAlt:"UPLOAD_MAX_FILE_SIZE" default:"10485760"`

	// MaxConcurrent is the maximum number of confirm calls running at once (default: 5)
	MaxConcurrent int `env:"IMPORT_MAX_CONCURRENT" envAlt:"UPLOAD_MAX_CONCURRENT" default:"5"`

	// MaxWaitTime is how long a confirm call waits for a slot (default: 30s)
	MaxWaitTime time.Duration `env:"IMPORT_MAX_WAIT_TIME" envAlt:"UPLOAD_MAX_WAIT_TIME" default:"30s"`

	// Timeout is the maximum duration for a single import (default: 2m)
	Timeout time.Duration `env:"IMPORT_TIMEOUT" default:"2m"`

	// DefaultDateFormat is the strftime layout used when the caller sends none.
	DefaultDateFormat string `env:"IMPORT_DEFAULT_DATE_FORMAT" default:"%Y-%m-%d"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	Enabled           bool `env:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMinute int  `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`

	// ImportLimit is requests per minute for the import endpoints (default: 10)
	ImportLimit int `env:"RATE_LIMIT_IMPORT" default:"10"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`

	// CORSOrigins lists browser origins allowed to call the API.
	CORSOrigins []string `env:"CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// AuthConfig holds access token settings.
type AuthConfig struct {
	// SecretKey signs access tokens (required, at least 32 characters)
	SecretKey string `env:"SECRET_KEY" required:"true"`

	// Algorithm is the token signing method. Only HS256 is supported.
	Algorithm string `env:"ALGORITHM" default:"HS256"`

	// TokenTTL is the access token lifetime (default: 7 days)
	TokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" default:"168h"`

	// BcryptCost is the password hashing cost (default: 10)
	BcryptCost int `env:"BCRYPT_COST" default:"10"`
}

// AIConfig holds settings for the spending advisor.
type AIConfig struct {
	// GeminiAPIKey enables the advisor endpoints when set.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	Model   string        `env:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	Timeout time.Duration `env:"AI_TIMEOUT" default:"30s"`

	// ContextDays is how many days of history feed the advisor prompt.
	ContextDays int `env:"AI_CONTEXT_DAYS" default:"30"`
}

// Enabled reports whether advisor endpoints can be served.
func (c *AIConfig) Enabled() bool {
	return c.GeminiAPIKey != ""
}

// EventsConfig holds message broker settings for import notifications.
type EventsConfig struct {
	// AMQPURL enables event publishing when set.
	AMQPURL  string `env:"AMQP_URL" envAlt:"RABBITMQ_URL"`
	Exchange string `env:"AMQP_EXCHANGE" default:"budget"`
	Queue    string `env:"AMQP_IMPORT_QUEUE" default:"budget.imports"`
}

// Enabled reports whether an event broker is configured.
func (c *EventsConfig) Enabled() bool {
	return c.AMQPURL != ""
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
