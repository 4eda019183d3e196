// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the rankdash API server.

Rankdash is the backend for an internal search-ranking dashboard: CRUD
over clients, keywords and per-client keywords, daily ranking result
rows written by upsert, a historical query endpoint, and a proxy to the
SerpApi search API.

# Starting the Server

The server reads configuration from the environment (a .env file is
picked up automatically) or CLI flags:

	DATABASE_URL=postgres://... APP_PASSWORD=... go run .

Or with flags:

	go run . -p 3000 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (PostgreSQL URL or SQLite path)

Optional settings:

  - PORT (-p): server port (default: 3000)
  - DATABASE_TYPE (-t): "postgres" (default) or "sqlite"
  - APP_PASSWORD (--app-password): shared dashboard password; falls
    back to a development default with a logged warning
  - SERPAPI_BASE_URL: override the SerpApi endpoint (used in tests)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (login, resources, results,
    historical, serpapi)
  - router: Route definitions using Go 1.22+ routing
  - middleware: session guard, CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Session token derivation and validation
  - db: Schema creation for both supported drivers
*/
package main
