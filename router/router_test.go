// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/purplefish/rankdash/auth"
	"github.com/purplefish/rankdash/models"
	"github.com/purplefish/rankdash/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewRouter(conn, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestSessionGuardWiring(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewRouter(conn, cfg)

	// Pages redirect without a session
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("Expected 302 for unauthenticated page, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Expected redirect to /login, got %q", loc)
	}

	// The login page itself never redirects
	req = httptest.NewRequest("GET", "/login", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for /login, got %d", w.Code)
	}

	// API paths never redirect regardless of cookie
	req = httptest.NewRequest("GET", "/api/clients", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code == http.StatusFound {
		t.Error("API path must bypass the session guard")
	}

	// A valid session reaches the page
	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{
		Name:  auth.SessionCookieName,
		Value: auth.SessionToken(cfg.AppPassword),
	})
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 with valid session, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewRouter(conn, testutil.GetTestConfig())

	routes := []struct {
		method string
		path   string
	}{
		{"POST", "/api/auth"},
		{"GET", "/api/clients"},
		{"POST", "/api/clients"},
		{"GET", "/api/keywords"},
		{"POST", "/api/keywords"},
		{"DELETE", "/api/keywords"},
		{"GET", "/api/client-keywords"},
		{"POST", "/api/client-keywords"},
		{"DELETE", "/api/client-keywords"},
		{"GET", "/api/results"},
		{"POST", "/api/results"},
		{"GET", "/api/client-results"},
		{"POST", "/api/client-results"},
		{"GET", "/api/historical"},
		{"POST", "/api/serpapi"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			// Anything but 404/405 means the route is wired
			if w.Code == http.StatusNotFound || w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route not wired: got %d", w.Code)
			}
		})
	}
}

// Full pass through the middleware chain: login, create a keyword,
// upsert a result, read it back through the window query.
func TestEndToEndResultFlow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewRouter(conn, testutil.GetTestConfig())

	// Login
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, testutil.MakeRequest("POST", "/api/auth",
		models.LoginRequest{Password: testutil.TestPassword}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Create a keyword
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, testutil.MakeRequest("POST", "/api/keywords",
		map[string]any{"keyword": "seo agency london"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var keyword map[string]any
	testutil.AssertJSON(t, w, &keyword)
	keywordID := int64(keyword["id"].(float64))

	// Upsert today's result
	date := time.Now().UTC().Format("2006-01-02")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, testutil.MakeRequest("POST", "/api/results", map[string]any{
		"keyword_id":  keywordID,
		"result_JSON": map[string]any{"rank": 3},
		"date":        date,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Read it back via the 30-day window
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, testutil.MakeRequest("GET",
		fmt.Sprintf("/api/results?keyword_id=%d&days=30", keywordID), nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var rows []models.ResultRow
	testutil.AssertJSON(t, w, &rows)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].Date != date {
		t.Errorf("Date = %s, want %s", rows[0].Date, date)
	}
	var payload map[string]any
	if err := json.Unmarshal(rows[0].ResultJSON, &payload); err != nil {
		t.Fatalf("Bad payload: %v", err)
	}
	if payload["rank"] != float64(3) {
		t.Errorf("rank = %v, want 3", payload["rank"])
	}
}
