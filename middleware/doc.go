// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and shared handler helpers.

# Session Guard

RequireSession wraps the whole router and enforces the dashboard's
shared-password session:

	handler := middleware.RequireSession(cfg.AppPassword, mux)

The login page (/login) and every /api/ path bypass the guard; any
other path without a valid app-auth cookie receives a 302 redirect to
/login.

# Request Logging

WithLogging logs start and completion of each request with a generated
request ID and the request duration.

# JSON Helpers

JSONResponse, ErrorResponse and ParseJSONBody keep handlers small:

	middleware.ErrorResponse(w, http.StatusBadRequest, "client_id is required")

ErrorResponse emits the API's {"error": message} envelope.
*/
package middleware
