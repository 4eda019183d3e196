// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines routes for the rankdash API server.

# Route Structure

NewRouter wires the API under /api using Go 1.22+ method routing:

	POST   /api/auth             login
	GET    /api/clients          list clients
	POST   /api/clients          create client
	GET    /api/keywords         list keywords
	POST   /api/keywords         create keyword
	DELETE /api/keywords         delete keyword (+ its results)
	GET    /api/client-keywords  list one client's keywords (client_id)
	POST   /api/client-keywords  create client keyword
	DELETE /api/client-keywords  delete client keyword (+ its results)
	GET    /api/results          today view or keyword history
	POST   /api/results          daily upsert
	GET    /api/client-results   today view (client_id) or history
	POST   /api/client-results   daily upsert
	GET    /api/historical       windowed joined series
	POST   /api/serpapi          ranking provider proxy
	GET    /api/health           liveness probe

# Middleware Chain

The returned handler is wrapped in CORS and the session guard. Pages
(/ and anything else outside /api and /login) require the app-auth
cookie; API routes and the login page do not.
*/
package router
