// Package config loads process configuration from the environment once
// at startup. A .env file (production) or .env.local (anything else) is
// overlaid first when present, mirroring how deployments ship secrets.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

type Config struct {
	Host      string
	Port      int
	JWTSecret string
	JWTTTL    time.Duration
	// APIKey empty means the API-key guard runs in relaxed mode and
	// allows every request.
	APIKey      string
	UserStore   string
	MongoURI    string
	MongoDB     string
	PostgresDSN string
	NodeID      int64
}

// Load reads configuration from the environment. Missing required keys
// are returned as errors so startup can fail fast.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Host:      getEnv("APP_HOST", "0.0.0.0"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		APIKey:    os.Getenv("API_KEY"),
		UserStore: getEnv("USER_STORE", StoreMemory),
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   getEnv("MONGO_DB", "api-system"),
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	port, err := parseInt(getEnv("APP_PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("APP_PORT: %w", err)
	}
	cfg.Port = port

	ttl, err := parseTTL(getEnv("JWT_EXPIRES_IN", "4h"))
	if err != nil {
		return nil, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}
	cfg.JWTTTL = ttl

	nodeID, err := parseInt(getEnv("NODE_ID", "0"))
	if err != nil {
		return nil, fmt.Errorf("NODE_ID: %w", err)
	}
	cfg.NodeID = int64(nodeID)

	switch cfg.UserStore {
	case StoreMemory:
	case StoreMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("MONGO_URI is required when USER_STORE=mongo")
		}
	case StorePostgres:
		cfg.PostgresDSN = os.Getenv("POSTGRES_DSN")
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("POSTGRES_DSN is required when USER_STORE=postgres")
		}
	default:
		return nil, fmt.Errorf("USER_STORE must be memory, mongo or postgres")
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func loadEnvFile() {
	path := ".env.local"
	if os.Getenv("APP_ENV") == "production" {
		path = ".env"
	}
	// Absent env files are fine; the environment itself wins anyway.
	_ = godotenv.Load(path)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseInt(value string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return parsed, nil
}

// parseTTL accepts a Go duration string ("4h", "300s") or a bare
// integer meaning seconds.
func parseTTL(value string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds <= 0 {
			return 0, fmt.Errorf("must be positive, got %d", seconds)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	ttl, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", ttl)
	}
	return ttl, nil
}
