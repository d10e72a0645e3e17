package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the maintenance tooling
type Config struct {
	// Database configuration
	DatabaseURL string // full DSN; wins over the individual parts when set
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// Seed fixture locations
	IngredientFixture string
	RecipeFixture     string

	// Ingredient import
	ImportBaseURL string
	ImportDelay   time.Duration
}

// LoadConfig creates a new Config instance from environment variables.
// In development a .env file is honored when present.
func LoadConfig() (*Config, error) {
	if IsDevelopment() {
		// Missing .env is fine; plain env vars still apply.
		_ = godotenv.Load()
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            getEnv("DB_NAME", "coachplan"),
		DBSSLMode:         getEnv("DB_SSL_MODE", "disable"),
		IngredientFixture: getEnv("INGREDIENT_FIXTURE", "data/ingredients.json"),
		RecipeFixture:     getEnv("RECIPE_FIXTURE", "data/recipes.json"),
		ImportBaseURL:     os.Getenv("IMPORT_BASE_URL"),
	}

	delay, err := time.ParseDuration(getEnv("IMPORT_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMPORT_DELAY: %w", err)
	}
	cfg.ImportDelay = delay

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
