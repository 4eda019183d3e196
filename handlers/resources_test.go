// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/purplefish/rankdash/models"
	"github.com/purplefish/rankdash/testutil"
)

func TestClientsCreateAndList(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewResourceHandler(conn, Clients)

	// Create
	req := testutil.MakeRequest("POST", "/api/clients", map[string]any{
		"name":                 "Acme",
		"website_url":          "https://acme.example.com",
		"google_business_name": "Acme Ltd",
	}, nil)
	w := httptest.NewRecorder()
	handler.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var created map[string]any
	testutil.AssertJSON(t, w, &created)
	if created["name"] != "Acme" {
		t.Errorf("Expected name Acme, got %v", created["name"])
	}
	if created["id"] == nil {
		t.Error("Expected created row to carry an id")
	}

	// Absent fields insert as NULL
	req = testutil.MakeRequest("POST", "/api/clients", map[string]any{"name": "Bare"}, nil)
	w = httptest.NewRecorder()
	handler.Create(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var bare map[string]any
	testutil.AssertJSON(t, w, &bare)
	if bare["website_url"] != nil {
		t.Errorf("Expected null website_url, got %v", bare["website_url"])
	}

	// List
	req = testutil.MakeRequest("GET", "/api/clients", nil, nil)
	w = httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var listed []map[string]any
	testutil.AssertJSON(t, w, &listed)
	if len(listed) != 2 {
		t.Fatalf("Expected 2 clients, got %d", len(listed))
	}
}

func TestCreateStoreErrorSurfaces(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewResourceHandler(conn, Clients)

	// clients.name is NOT NULL; the store's rejection surfaces as 500
	req := testutil.MakeRequest("POST", "/api/clients", map[string]any{
		"website_url": "https://nameless.example.com",
	}, nil)
	w := httptest.NewRecorder()
	handler.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error == "" {
		t.Error("Expected the store's error message in the response")
	}
}

func TestKeywordDeleteCascades(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewResourceHandler(conn, Keywords)

	keywordID := testutil.CreateTestKeyword(t, conn, "seo agency london")
	keepID := testutil.CreateTestKeyword(t, conn, "seo agency leeds")
	testutil.InsertTestResult(t, conn, keywordID, "2024-01-01", `{"rank":3}`)
	testutil.InsertTestResult(t, conn, keywordID, "2024-01-02", `{"rank":2}`)
	testutil.InsertTestResult(t, conn, keepID, "2024-01-01", `{"rank":9}`)

	req := testutil.MakeRequest("DELETE", "/api/keywords", models.DeleteRequest{ID: keywordID}, nil)
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.SuccessResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Error("Expected success:true")
	}

	// The keyword and its result rows are gone
	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM keywords WHERE id = $1", keywordID).Scan(&n); err != nil {
		t.Fatalf("count keywords: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected keyword deleted, found %d", n)
	}
	if err := conn.QueryRow("SELECT COUNT(*) FROM results WHERE keyword_id = $1", keywordID).Scan(&n); err != nil {
		t.Fatalf("count results: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected dependent results deleted, found %d", n)
	}

	// Unrelated rows survive
	if err := conn.QueryRow("SELECT COUNT(*) FROM results WHERE keyword_id = $1", keepID).Scan(&n); err != nil {
		t.Fatalf("count kept results: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected unrelated result kept, found %d", n)
	}
}

func TestClientKeywordsList(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewResourceHandler(conn, ClientKeywords)

	clientA := testutil.CreateTestClient(t, conn, "Acme")
	clientB := testutil.CreateTestClient(t, conn, "Bolt")
	testutil.CreateTestClientKeyword(t, conn, clientA, "plumber bristol")
	testutil.CreateTestClientKeyword(t, conn, clientA, "plumber bath")
	testutil.CreateTestClientKeyword(t, conn, clientB, "locksmith york")

	tests := []struct {
		name     string
		path     string
		wantRows int
	}{
		{"filters by client", fmt.Sprintf("/api/client-keywords?client_id=%d", clientA), 2},
		{"other client", fmt.Sprintf("/api/client-keywords?client_id=%d", clientB), 1},
		{"unknown client", "/api/client-keywords?client_id=9999", 0},
		{"missing client_id matches nothing", "/api/client-keywords", 0},
		{"non-numeric client_id matches nothing", "/api/client-keywords?client_id=abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", tt.path, nil, nil)
			w := httptest.NewRecorder()
			handler.List(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			var listed []map[string]any
			testutil.AssertJSON(t, w, &listed)
			if len(listed) != tt.wantRows {
				t.Errorf("Expected %d rows, got %d", tt.wantRows, len(listed))
			}
		})
	}
}

func TestClientKeywordDeleteCascades(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewResourceHandler(conn, ClientKeywords)

	clientID := testutil.CreateTestClient(t, conn, "Acme")
	ckID := testutil.CreateTestClientKeyword(t, conn, clientID, "plumber bristol")
	testutil.InsertTestClientResult(t, conn, ckID, "2024-01-01", `{"rank":7}`)

	req := testutil.MakeRequest("DELETE", "/api/client-keywords", models.DeleteRequest{ID: ckID}, nil)
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM client_keywords WHERE id = $1", ckID).Scan(&n); err != nil {
		t.Fatalf("count client_keywords: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected client keyword deleted, found %d", n)
	}
	if err := conn.QueryRow("SELECT COUNT(*) FROM client_results WHERE client_keyword_id = $1", ckID).Scan(&n); err != nil {
		t.Fatalf("count client_results: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected dependent client results deleted, found %d", n)
	}
}

func TestDeleteUnknownIDSucceeds(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewResourceHandler(conn, Keywords)

	// Deleting a nonexistent row is not an error: the store deletes
	// zero rows and the handler reports success, as the dashboard
	// expects.
	req := testutil.MakeRequest("DELETE", "/api/keywords", models.DeleteRequest{ID: 12345}, nil)
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
}
