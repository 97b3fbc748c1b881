package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	DiscordToken string
	DiscordAppID string

	// BoardRefreshInterval is how often pinned leaderboard messages are
	// re-rendered and level roles reconciled.
	BoardRefreshInterval time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:    getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:  getEnv(EnvEnvironment, DefaultEnvironment),
		DBUser:       getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:   getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:       getEnv(EnvDBHost, DefaultDBHost),
		DBPort:       getEnv(EnvDBPort, DefaultDBPort),
		DBName:       getEnv(EnvDBName, DefaultDBName),
		DiscordToken: getEnv(EnvDiscordToken, ""),
		DiscordAppID: getEnv(EnvDiscordAppID, ""),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	refreshStr := getEnv(EnvBoardRefresh, DefaultBoardRefresh)
	refreshSecs, err := strconv.Atoi(refreshStr)
	if err != nil || refreshSecs <= 0 {
		return nil, fmt.Errorf("invalid BOARD_REFRESH_SECONDS value: %q", refreshStr)
	}
	cfg.BoardRefreshInterval = time.Duration(refreshSecs) * time.Second

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN environment variable must be set")
	}
	if cfg.DiscordAppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID environment variable must be set")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
