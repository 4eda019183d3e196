// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/purplefish/rankdash/cliparse"
	"github.com/purplefish/rankdash/handlers"
	"github.com/purplefish/rankdash/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	clients := handlers.NewResourceHandler(db, handlers.Clients)
	keywords := handlers.NewResourceHandler(db, handlers.Keywords)
	clientKeywords := handlers.NewResourceHandler(db, handlers.ClientKeywords)
	results := handlers.NewResultsHandler(db, handlers.Results)
	clientResults := handlers.NewResultsHandler(db, handlers.ClientResults)
	historical := handlers.NewHistoricalHandler(db)
	serp := handlers.NewSerpHandler(cfg)

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Login
	mux.HandleFunc("POST /api/auth", middleware.WithLogging(authHandler.Login))

	// Entity CRUD
	mux.HandleFunc("GET /api/clients", middleware.WithLogging(clients.List))
	mux.HandleFunc("POST /api/clients", middleware.WithLogging(clients.Create))

	mux.HandleFunc("GET /api/keywords", middleware.WithLogging(keywords.List))
	mux.HandleFunc("POST /api/keywords", middleware.WithLogging(keywords.Create))
	mux.HandleFunc("DELETE /api/keywords", middleware.WithLogging(keywords.Delete))

	mux.HandleFunc("GET /api/client-keywords", middleware.WithLogging(clientKeywords.List))
	mux.HandleFunc("POST /api/client-keywords", middleware.WithLogging(clientKeywords.Create))
	mux.HandleFunc("DELETE /api/client-keywords", middleware.WithLogging(clientKeywords.Delete))

	// Daily result series
	mux.HandleFunc("GET /api/results", middleware.WithLogging(results.Get))
	mux.HandleFunc("POST /api/results", middleware.WithLogging(results.Upsert))

	mux.HandleFunc("GET /api/client-results", middleware.WithLogging(clientResults.Get))
	mux.HandleFunc("POST /api/client-results", middleware.WithLogging(clientResults.Upsert))

	// Historical queries and the ranking proxy
	mux.HandleFunc("GET /api/historical", middleware.WithLogging(historical.Get))
	mux.HandleFunc("POST /api/serpapi", middleware.WithLogging(serp.Search))

	// Pages (everything outside /api and /login sits behind the guard)
	mux.HandleFunc("GET /login", loginPage)
	mux.HandleFunc("GET /", dashboardPage)

	return middleware.CORS(middleware.RequireSession(cfg.AppPassword, mux))
}

func loginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(loginHTML))
}

func dashboardPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(dashboardHTML))
}

const loginHTML = `<!DOCTYPE html>
<html>
<head><title>rankdash - login</title></head>
<body>
<form id="login">
  <input type="password" name="password" placeholder="Team password" autofocus>
  <button type="submit">Log in</button>
  <p id="msg"></p>
</form>
<script>
document.getElementById('login').addEventListener('submit', async (e) => {
  e.preventDefault();
  const password = e.target.password.value;
  const resp = await fetch('/api/auth', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({password})
  });
  if (resp.ok) {
    window.location = '/';
  } else {
    document.getElementById('msg').textContent = 'Invalid password';
  }
});
</script>
</body>
</html>
`

const dashboardHTML = `<!DOCTYPE html>
<html>
<head><title>rankdash</title></head>
<body>
<h1>rankdash</h1>
<p>Ranking dashboard API is running. See /api for endpoints.</p>
</body>
</html>
`
