package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	StoreDriverBolt     = "bolt"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds every runtime parameter of the application.
type Config struct {
	ServerPort   int
	JWTSecretKey string

	StoreDriver string
	DataPath    string // bolt driver
	DatabaseURL string // postgres driver

	RosterMode string
	TeamLimit  int
}

// Load reads the configuration from environment variables, optionally
// picking up a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	driver := getEnvOrDefault("STORE_DRIVER", StoreDriverBolt)
	switch driver {
	case StoreDriverBolt, StoreDriverPostgres, StoreDriverMemory:
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q (expected bolt, postgres or memory)", driver)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if driver == StoreDriverPostgres && dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required for the postgres store driver")
	}

	teamLimit, err := intEnv("TEAM_LIMIT", 8)
	if err != nil {
		return nil, err
	}
	if teamLimit <= 0 {
		return nil, fmt.Errorf("TEAM_LIMIT must be positive, got %d", teamLimit)
	}

	cfg := &Config{
		ServerPort:   port,
		JWTSecretKey: jwtKey,
		StoreDriver:  driver,
		DataPath:     getEnvOrDefault("DATA_PATH", "data/passabola.db"),
		DatabaseURL:  dbURL,
		RosterMode:   getEnvOrDefault("ROSTER_MODE", "open"),
		TeamLimit:    teamLimit,
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func intEnv(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return value, nil
}
