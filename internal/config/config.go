package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Server    ServerConfig
	Loyalty   LoyaltyConfig
	Worker    WorkerConfig
	RateLimit RateLimitConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

// AuthConfig holds the settings used to verify identity-provider tokens
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	Audience  string
}

// RedisConfig holds Redis connection settings. Redis backs the settings
// cache and the background job queue.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds event streaming configuration. An empty broker list
// disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
	// ClientIPHeader names a header set by the edge proxy that carries the
	// client address, e.g. CF-Connecting-IP. Empty trusts only X-Forwarded-For.
	ClientIPHeader  string
	ShutdownTimeout time.Duration
}

// LoyaltyConfig holds engine-level knobs that are not part of the admin settings store
type LoyaltyConfig struct {
	SettingsCacheTTL time.Duration
}

// WorkerConfig holds background worker configuration
type WorkerConfig struct {
	BirthdayInterval time.Duration
	Concurrency      int
	// Location decides which calendar day "today" is for birthdays
	Location *time.Location
}

// RateLimitConfig holds per-caller request limits. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Database, err = loadDatabase(); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	cfg.Auth.Issuer = getEnvWithDefault("JWT_ISSUER", "loyalty-auth")
	cfg.Auth.Audience = getEnvWithDefault("JWT_AUDIENCE", "loyalty-server")

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "true") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = getIntEnv("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = getIntEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Kafka configuration
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "loyalty-events")

	// Server configuration
	if cfg.Server.Port, err = getIntEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")
	cfg.Server.ClientIPHeader = os.Getenv("CLIENT_IP_HEADER")
	if cfg.Server.ShutdownTimeout, err = getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}

	// Loyalty configuration
	if cfg.Loyalty.SettingsCacheTTL, err = getDurationEnv("SETTINGS_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	// Worker configuration
	if cfg.Worker.BirthdayInterval, err = getDurationEnv("BIRTHDAY_JOB_INTERVAL", 24*time.Hour); err != nil {
		return nil, err
	}
	tz := getEnvWithDefault("LOYALTY_TIMEZONE", "UTC")
	if cfg.Worker.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid LOYALTY_TIMEZONE %q: %w", tz, err)
	}
	if cfg.Worker.Concurrency, err = getIntEnv("WORKER_CONCURRENCY", 5); err != nil {
		return nil, err
	}

	// Rate limit configuration
	if cfg.RateLimit.RequestsPerMinute, err = getIntEnv("RATE_LIMIT_RPM", 120); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDatabase reads only the database settings, for tools that need
// nothing else
func LoadDatabase() (DatabaseConfig, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return DatabaseConfig{}, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return loadDatabase()
}

func loadDatabase() (DatabaseConfig, error) {
	var db DatabaseConfig
	var err error
	if db.Host, err = requireEnv("DB_HOST"); err != nil {
		return DatabaseConfig{}, err
	}
	if db.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return DatabaseConfig{}, err
	}
	if db.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return DatabaseConfig{}, err
	}
	if db.Name, err = requireEnv("DB_NAME"); err != nil {
		return DatabaseConfig{}, err
	}
	db.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")
	return db, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// Addr returns the host:port Redis address
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}
