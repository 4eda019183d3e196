package cliparse

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"
)

// FallbackPassword is used when no application password is configured.
// It exists so a fresh checkout runs at all; production deployments
// must set APP_PASSWORD.
const FallbackPassword = "your-team-password"

const defaultSerpAPIBaseURL = "https://serpapi.com"

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	AppPassword    string
	SerpAPIBaseURL string
}

// Driver maps the configured database type to its database/sql driver
// name.
func (c Config) Driver() string {
	if c.DatabaseType == "sqlite" {
		return "sqlite"
	}
	return "postgres"
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("rankdash", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AppPassword, "app-password", "", "Shared dashboard password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, errors.New("database type must be postgres or sqlite")
	}

	if cfg.AppPassword == "" {
		cfg.AppPassword = os.Getenv("APP_PASSWORD")
	}
	if cfg.AppPassword == "" {
		slog.Warn("APP_PASSWORD not set, using the development fallback password")
		cfg.AppPassword = FallbackPassword
	}

	cfg.SerpAPIBaseURL = os.Getenv("SERPAPI_BASE_URL")
	if cfg.SerpAPIBaseURL == "" {
		cfg.SerpAPIBaseURL = defaultSerpAPIBaseURL
	}

	return cfg, nil
}
