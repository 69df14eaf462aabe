package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	Database    DatabaseConfig
	AI          AIConfig

	// Location decides which calendar date counts as today
	Location      *time.Location
	BulkWordCount int
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// AIConfig holds content generation settings. An empty APIKey is allowed;
// AI features then report a configuration error when used.
type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "vocabdeck"),
			User:     getEnv("DB_USER", "vocabdeck"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		AI: AIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getEnv("OPENAI_MODEL", "gpt-5-mini"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	if err := cfg.loadShared(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLocal reads only the settings the offline CLI needs
func LoadLocal() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AI: AIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getEnv("OPENAI_MODEL", "gpt-5-mini"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		},
	}
	if err := cfg.loadShared(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadShared() error {
	loc, err := time.LoadLocation(getEnv("APP_TIMEZONE", "UTC"))
	if err != nil {
		return fmt.Errorf("APP_TIMEZONE is invalid: %w", err)
	}
	c.Location = loc

	count, err := strconv.Atoi(getEnv("BULK_WORD_COUNT", "10"))
	if err != nil || count < 1 {
		return fmt.Errorf("BULK_WORD_COUNT must be a positive number")
	}
	c.BulkWordCount = count
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
