package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process-wide configuration, loaded once at startup and
// injected into the components that need it.
type Config struct {
	// HTTP Server
	Port string

	// Database
	DatabasePath string

	// Auth
	JWTSecret    string
	BcryptCost   int
	CookieSecure bool
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() *Config {
	// Missing .env is fine; real config may come from the environment.
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabasePath: os.Getenv("DATABASE_PATH"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		BcryptCost:   getEnvInt("BCRYPT_COST", 12),
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
	}
}

// Validate checks the configuration and returns an error describing every
// problem found. The signing secret and database path have no defaults;
// their absence must stop the process rather than silently degrade.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DatabasePath == "" {
		errs = append(errs, "DATABASE_PATH is required")
	}

	if c.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required")
	} else if len(c.JWTSecret) < 32 {
		errs = append(errs, "JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		errs = append(errs, fmt.Sprintf("invalid bcrypt cost %d: must be between 4 and 14", c.BcryptCost))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
