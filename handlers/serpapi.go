// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/purplefish/rankdash/cliparse"
	"github.com/purplefish/rankdash/middleware"
	"github.com/purplefish/rankdash/models"
)

// serpTimeout bounds the single outbound call; SerpApi can take a
// while on cold queries.
const serpTimeout = 30 * time.Second

type SerpHandler struct {
	cfg    cliparse.Config
	client *http.Client
}

func NewSerpHandler(cfg cliparse.Config) *SerpHandler {
	return &SerpHandler{
		cfg:    cfg,
		client: &http.Client{Timeout: serpTimeout},
	}
}

// Search handles POST /api/serpapi
// Forwards the keyword and the caller's API key to SerpApi and relays
// the provider's JSON verbatim. The key is never stored.
func (h *SerpHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SerpSearchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.JSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Internal server error",
			Details: err.Error(),
		})
		return
	}

	params := url.Values{}
	params.Set("q", req.Keyword)
	params.Set("engine", "google")
	params.Set("api_key", req.APIKey)
	params.Set("gl", "uk")
	params.Set("hl", "en")

	resp, err := h.client.Get(h.cfg.SerpAPIBaseURL + "/search.json?" + params.Encode())
	if err != nil {
		slog.Error("serpapi fetch failed", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "SerpApi fetch failed",
			Details: err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("serpapi returned error status", "status", resp.StatusCode)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.UpstreamStatusResponse{
			Error:  "SerpApi error",
			Status: resp.StatusCode,
		})
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("serpapi body read failed", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Internal server error",
			Details: err.Error(),
		})
		return
	}

	// Relay the provider's JSON untouched
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write serpapi response", "error", err)
	}
}
