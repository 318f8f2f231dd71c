package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Session backends understood by SessionConfig.Backend
const (
	SessionBackendMemory = "memory"
	SessionBackendFile   = "file"
	SessionBackendRedis  = "redis"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Notify  NotifyConfig
	Log     LogConfig
	OTEL    OTELConfig
}

// APIConfig holds the backend endpoint and session-expiry behaviour
type APIConfig struct {
	BaseURL       string
	Timeout       time.Duration
	LoginRoute    string
	RedirectDelay time.Duration
}

// SessionConfig holds session store configuration
type SessionConfig struct {
	Backend  string
	FilePath string
	RedisKey string
	TTL      time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NotifyConfig holds the pub/sub channels used for notices and navigation intents
type NotifyConfig struct {
	Redis             bool
	NoticeChannel     string
	NavigationChannel string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Env   string
	Level string
	File  string
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables, reading a .env file first when present
func Load() (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg := &Config{
		API: APIConfig{
			BaseURL:       getEnv("API_BASE_URL", "http://localhost:8000/api"),
			Timeout:       getEnvAsDuration("API_TIMEOUT", 0),
			LoginRoute:    getEnv("LOGIN_ROUTE", "/login"),
			RedirectDelay: getEnvAsDuration("SESSION_REDIRECT_DELAY", 1500*time.Millisecond),
		},
		Session: SessionConfig{
			Backend:  getEnv("SESSION_BACKEND", SessionBackendFile),
			FilePath: getEnv("SESSION_FILE", defaultSessionFile()),
			RedisKey: getEnv("SESSION_REDIS_KEY", "wardcall:session"),
			TTL:      getEnvAsDuration("SESSION_TTL", 12*time.Hour),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Notify: NotifyConfig{
			Redis:             getEnvAsBool("NOTIFY_REDIS", false),
			NoticeChannel:     getEnv("NOTIFY_NOTICE_CHANNEL", "wardcall:notices"),
			NavigationChannel: getEnv("NOTIFY_NAVIGATION_CHANNEL", "wardcall:navigation"),
		},
		Log: LogConfig{
			Env:   getEnv("APP_ENV", "development"),
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "wardcall"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values Load cannot default its way out of
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid API_BASE_URL %q: %w", c.API.BaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid API_BASE_URL %q: scheme must be http or https", c.API.BaseURL)
	}

	switch c.Session.Backend {
	case SessionBackendMemory, SessionBackendFile, SessionBackendRedis:
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.Session.Backend)
	}
	return nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".wardcall-session.json"
	}
	return filepath.Join(dir, "wardcall", "session.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
