package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the server
type Config struct {
	// HTTP
	Port string

	// Remote data gateway
	DatabaseURL string

	// The single administrative identity; compared case-insensitively
	// after trimming.
	OwnerDiscordID string

	// Skin image service; empty means the public mc-heads.net.
	AvatarBaseURL string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		OwnerDiscordID: getEnvOrDefault("OWNER_DISCORD_ID", "axolotal1212"),
		AvatarBaseURL:  os.Getenv("AVATAR_BASE_URL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
