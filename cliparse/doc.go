// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: PostgreSQL connection string or SQLite path (required)
  - DatabaseType: "postgres" (default) or "sqlite"
  - AppPassword: Shared dashboard password; defaults to a development
    fallback with a logged warning when APP_PASSWORD is unset
  - SerpAPIBaseURL: SerpApi endpoint, overridable via SERPAPI_BASE_URL

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	--app-password  Shared password (prefer the APP_PASSWORD env var)

Every flag falls back to its environment variable when unset, so the
server runs from a plain .env file in development.
*/
package cliparse
