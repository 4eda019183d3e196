// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the rankdash API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AuthHandler: shared-password login, session cookie issuance
  - ResourceHandler: generic list/create/delete over one entity table
  - ResultsHandler: time-series reads and daily upserts for one result table
  - HistoricalHandler: windowed, joined time-series queries
  - SerpHandler: proxy to the SerpApi ranking provider

Handlers are created via constructor functions:

	clients := handlers.NewResourceHandler(db, handlers.Clients)
	results := handlers.NewResultsHandler(db, handlers.Results)

# Generic Resources

Clients, keywords and client-keywords share one CRUD shape, so a single
ResourceHandler is parameterized by a Resource value (table, insert
columns, optional list filter, optional dependent result table). The
dependent table is cleared before a delete because the store's cascade
behavior is not relied upon; a failed dependent delete is logged and
the primary delete proceeds.

# Result Series

results and client_results differ only in their owner column and their
today view, captured by the two ResultSeries values. Result rows are
keyed by (owner, date) and written exclusively through an upsert:

	POST /api/results {keyword_id, result_JSON, date}

A second write to the same key overwrites the day's payload.

# Historical Queries

GET /api/historical selects a date window (explicit date_from/date_to,
days=all capped at two years, or an N-day lookback defaulting to 30)
and returns payload-bearing rows joined to their owning keyword.

# SerpApi Proxy

POST /api/serpapi forwards {keyword, apiKey} to the provider with fixed
engine/locale parameters and relays the JSON response verbatim.
*/
package handlers
