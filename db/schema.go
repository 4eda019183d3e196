// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	ddl := schemaPostgres
	if databaseType == "sqlite" {
		ddl = schemaSQLite
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Dates are stored as TEXT in 'YYYY-MM-DD' form in both dialects; ISO
// dates compare correctly as strings, so range filters stay portable.

const schemaPostgres = `
-- Clients
CREATE TABLE IF NOT EXISTS clients (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    website_url TEXT,
    google_business_name TEXT
);

-- Global keywords
CREATE TABLE IF NOT EXISTS keywords (
    id BIGSERIAL PRIMARY KEY,
    keyword TEXT NOT NULL
);

-- Per-client keywords
CREATE TABLE IF NOT EXISTS client_keywords (
    id BIGSERIAL PRIMARY KEY,
    client_id BIGINT NOT NULL REFERENCES clients(id),
    keyword TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_client_keywords_client ON client_keywords(client_id);

-- Daily ranking results for global keywords, one row per keyword per day
CREATE TABLE IF NOT EXISTS results (
    keyword_id BIGINT NOT NULL REFERENCES keywords(id),
    date TEXT NOT NULL,
    result_json TEXT,
    UNIQUE (keyword_id, date)
);

CREATE INDEX IF NOT EXISTS idx_results_date ON results(date);

-- Daily ranking results for client keywords
CREATE TABLE IF NOT EXISTS client_results (
    client_keyword_id BIGINT NOT NULL REFERENCES client_keywords(id),
    date TEXT NOT NULL,
    result_json TEXT,
    UNIQUE (client_keyword_id, date)
);

CREATE INDEX IF NOT EXISTS idx_client_results_date ON client_results(date);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS clients (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    website_url TEXT,
    google_business_name TEXT
);

CREATE TABLE IF NOT EXISTS keywords (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    keyword TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS client_keywords (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    client_id INTEGER NOT NULL REFERENCES clients(id),
    keyword TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_client_keywords_client ON client_keywords(client_id);

CREATE TABLE IF NOT EXISTS results (
    keyword_id INTEGER NOT NULL REFERENCES keywords(id),
    date TEXT NOT NULL,
    result_json TEXT,
    UNIQUE (keyword_id, date)
);

CREATE INDEX IF NOT EXISTS idx_results_date ON results(date);

CREATE TABLE IF NOT EXISTS client_results (
    client_keyword_id INTEGER NOT NULL REFERENCES client_keywords(id),
    date TEXT NOT NULL,
    result_json TEXT,
    UNIQUE (client_keyword_id, date)
);

CREATE INDEX IF NOT EXISTS idx_client_results_date ON client_results(date);
`
