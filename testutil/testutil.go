// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/purplefish/rankdash/cliparse"
	"github.com/purplefish/rankdash/db"
)

// TestPassword is the shared password used across the test suite.
const TestPassword = "test-team-password"

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Handlers run the same SQL against PostgreSQL in production;
// the schema and queries are written to be valid under both.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A :memory: database exists per connection; keep exactly one
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3000,
		DatabaseURL:    ":memory:",
		DatabaseType:   "sqlite",
		AppPassword:    TestPassword,
		SerpAPIBaseURL: "https://serpapi.invalid",
	}
}

// CreateTestClient inserts a client and returns its ID
func CreateTestClient(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO clients (name, website_url, google_business_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, name+".example.com", name+" Ltd").Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}
	return id
}

// CreateTestKeyword inserts a global keyword and returns its ID
func CreateTestKeyword(t *testing.T, conn *sql.DB, keyword string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO keywords (keyword) VALUES ($1) RETURNING id
	`, keyword).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test keyword: %v", err)
	}
	return id
}

// CreateTestClientKeyword inserts a per-client keyword and returns its ID
func CreateTestClientKeyword(t *testing.T, conn *sql.DB, clientID int64, keyword string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO client_keywords (client_id, keyword) VALUES ($1, $2) RETURNING id
	`, clientID, keyword).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test client keyword: %v", err)
	}
	return id
}

// InsertTestResult inserts one dated result row for a global keyword.
// An empty payload inserts NULL.
func InsertTestResult(t *testing.T, conn *sql.DB, keywordID int64, date, payload string) {
	t.Helper()

	var p any
	if payload != "" {
		p = payload
	}
	_, err := conn.Exec(`
		INSERT INTO results (keyword_id, date, result_json) VALUES ($1, $2, $3)
	`, keywordID, date, p)
	if err != nil {
		t.Fatalf("Failed to insert test result: %v", err)
	}
}

// InsertTestClientResult inserts one dated result row for a client
// keyword. An empty payload inserts NULL.
func InsertTestClientResult(t *testing.T, conn *sql.DB, clientKeywordID int64, date, payload string) {
	t.Helper()

	var p any
	if payload != "" {
		p = payload
	}
	_, err := conn.Exec(`
		INSERT INTO client_results (client_keyword_id, date, result_json) VALUES ($1, $2, $3)
	`, clientKeywordID, date, p)
	if err != nil {
		t.Fatalf("Failed to insert test client result: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
