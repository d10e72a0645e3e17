package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the loaded configuration for the current
// environment. Development and test run against local defaults, so only
// production and CI insist on explicit credentials.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.DatabaseURL == "" {
		if cfg.DBHost == "" {
			errors = append(errors, "DB_HOST is required when DATABASE_URL is not set")
		}
		if cfg.DBName == "" {
			errors = append(errors, "DB_NAME is required when DATABASE_URL is not set")
		}
		env := GetEnvironment()
		if (env == Production || env == CI) && cfg.DBPassword == "" {
			errors = append(errors, fmt.Sprintf("DB_PASSWORD is required in the %s environment", env))
		}
	}

	if cfg.IngredientFixture == "" {
		errors = append(errors, "INGREDIENT_FIXTURE must not be empty")
	}
	if cfg.RecipeFixture == "" {
		errors = append(errors, "RECIPE_FIXTURE must not be empty")
	}
	if cfg.ImportDelay < 0 {
		errors = append(errors, "IMPORT_DELAY must not be negative")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
