package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
	JWTTTL    time.Duration

	// Timezone used to decide where a calendar day starts
	Timezone string

	// CORS configuration
	AllowedOrigins []string

	// Profile picture storage
	S3Bucket string
	S3Region string

	// Requests per minute allowed on the auth endpoints per client
	AuthRateLimit int

	// Deadline applied to every request context, and so to its store calls
	RequestTimeout time.Duration
}

// Default values applied when a setting is not provided
const (
	DefaultServerPort     = "5000"
	DefaultDBDriver       = "postgres"
	DefaultDBSSLMode      = "disable"
	DefaultJWTTTL         = 7 * 24 * time.Hour
	DefaultAuthRateLimit  = 20
	DefaultRequestTimeout = 15 * time.Second
)

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI:
		loadFromEnv(cfg)
		cfg.DBPassword = firstNonEmpty(os.Getenv("TEST_DB_PASSWORD"), cfg.DBPassword)
		cfg.JWTSecret = firstNonEmpty(os.Getenv("TEST_JWT_SECRET"), cfg.JWTSecret)
	case Development, Test:
		// A missing .env file is fine; the process environment still applies
		_ = godotenv.Load()
		loadFromEnv(cfg)
		applySecrets(cfg)
	case Production:
		loadFromEnv(cfg)
		applySecrets(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	applyDefaults(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Location resolves the configured timezone, falling back to the process local zone
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN builds a lib/pq connection string
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func loadFromEnv(cfg *Config) {
	cfg.ServerPort = os.Getenv("SERVER_PORT")
	cfg.ServerHost = os.Getenv("SERVER_HOST")
	cfg.DBDriver = os.Getenv("DB_DRIVER")
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = os.Getenv("DB_PORT")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBSSLMode = os.Getenv("DB_SSL_MODE")
	cfg.DBPath = os.Getenv("DB_PATH")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RedisDB = atoiOr(os.Getenv("REDIS_DB"), 0)
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if ttl, err := time.ParseDuration(os.Getenv("JWT_TTL")); err == nil {
		cfg.JWTTTL = ttl
	}
	cfg.Timezone = os.Getenv("APP_TIMEZONE")
	cfg.AllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))
	cfg.S3Bucket = os.Getenv("S3_BUCKET_NAME")
	cfg.S3Region = os.Getenv("AWS_REGION")
	cfg.AuthRateLimit = atoiOr(os.Getenv("AUTH_RATE_LIMIT"), 0)
	if timeout, err := time.ParseDuration(os.Getenv("REQUEST_TIMEOUT")); err == nil {
		cfg.RequestTimeout = timeout
	}
}

// applySecrets overrides sensitive values with Docker secrets when they exist
func applySecrets(cfg *Config) {
	if v := readSecret("db_password"); v != "" {
		cfg.DBPassword = v
	}
	if v := readSecret("jwt_secret"); v != "" {
		cfg.JWTSecret = v
	}
	if v := readSecret("redis_password"); v != "" {
		cfg.RedisPassword = v
	}
	if v := readSecret("db_user"); v != "" {
		cfg.DBUser = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.ServerPort == "" {
		cfg.ServerPort = DefaultServerPort
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = DefaultDBDriver
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = DefaultDBSSLMode
	}
	if cfg.JWTTTL <= 0 {
		cfg.JWTTTL = DefaultJWTTTL
	}
	if cfg.AuthRateLimit <= 0 {
		cfg.AuthRateLimit = DefaultAuthRateLimit
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
