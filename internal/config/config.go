package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Token drivers supported by the auth package.
const (
	TokenDriverJWT    = "jwt"
	TokenDriverPaseto = "paseto"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port            string
	Env             string // dev or prod
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	TrustedOrigins  []string // CORS allowed origins (front-end URLs)
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type AuthConfig struct {
	// TokenDriver selects the access-token implementation: "jwt" (HS256)
	// or "paseto" (v4.local).
	TokenDriver string
	// SigningSecret signs access tokens. For the paseto driver it must be
	// exactly 32 bytes (v4.local symmetric key).
	SigningSecret []byte
	TokenDuration time.Duration
	// LookupTimeout bounds the identity lookup performed while verifying
	// a token, so a hung store call cannot stall the request.
	LookupTimeout time.Duration
}

// Load reads configuration from environment variables into an immutable
// Config. The result is built once in main and passed by injection; nothing
// reads the environment after startup.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Env:             getEnv("APP_ENV", "dev"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
			TrustedOrigins:  getSliceEnv("FRONTEND_URLS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "clothesshop"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			TokenDriver:   getEnv("TOKEN_DRIVER", TokenDriverJWT),
			SigningSecret: []byte(getEnv("TOKEN_SECRET", "")),
			TokenDuration: getDurationEnv("TOKEN_DURATION", 7*24*time.Hour),
			LookupTimeout: getDurationEnv("AUTH_LOOKUP_TIMEOUT", 3*time.Second),
		},
	}

	if len(cfg.Auth.SigningSecret) == 0 {
		return nil, fmt.Errorf("TOKEN_SECRET must be set")
	}

	switch cfg.Auth.TokenDriver {
	case TokenDriverJWT:
		// HS256 accepts any non-empty secret
	case TokenDriverPaseto:
		if len(cfg.Auth.SigningSecret) != 32 {
			return nil, fmt.Errorf("TOKEN_SECRET must be exactly 32 bytes for the paseto driver, got %d", len(cfg.Auth.SigningSecret))
		}
	default:
		return nil, fmt.Errorf("unknown TOKEN_DRIVER %q", cfg.Auth.TokenDriver)
	}

	return cfg, nil
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Address returns Redis connection address (host:port)
func (c *RedisConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDevelopment returns true if the environment is set to dev
func (c *ServerConfig) IsDevelopment() bool {
	return c.Env == "dev"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	seconds, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return time.Duration(seconds) * time.Second
}

func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}

	return result
}
