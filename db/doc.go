// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db manages database schema creation.

# Schema

CreateSchema creates all tables for the configured driver:

	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		// handle error
	}

It is idempotent (IF NOT EXISTS) and keeps one DDL constant per
dialect: PostgreSQL for production, SQLite for local runs and tests.

# Tables

  - clients: tracked client businesses
  - keywords: global (agency-owned) keywords
  - client_keywords: keywords tracked per client
  - results: one ranking payload per keyword per calendar day
  - client_results: one ranking payload per client keyword per day

The result tables carry a UNIQUE constraint on (owner, date); the
upsert write path relies on it for its conflict target. Result rows
are never updated outside that upsert, and the services delete
dependent result rows themselves rather than relying on cascades.
*/
package db
