// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/purplefish/rankdash/middleware"
	"github.com/purplefish/rankdash/models"
)

const (
	// "all time" is capped at two years back
	allTimeDays = 2 * 365

	defaultLookbackDays = 30
)

type HistoricalHandler struct {
	db *sql.DB
}

func NewHistoricalHandler(db *sql.DB) *HistoricalHandler {
	return &HistoricalHandler{db: db}
}

// dateWindow picks the query window: an explicit range wins, then
// days=all, then an N-day lookback defaulting to 30.
func dateWindow(q url.Values) (startDate, endDate string) {
	dateFrom := q.Get("date_from")
	dateTo := q.Get("date_to")
	days := q.Get("days")

	switch {
	case dateFrom != "" && dateTo != "":
		return dateFrom, dateTo
	case days == "all":
		return daysAgoUTC(allTimeDays), todayUTC()
	default:
		daysNum, err := strconv.Atoi(days)
		if err != nil {
			daysNum = defaultLookbackDays
		}
		return daysAgoUTC(daysNum), todayUTC()
	}
}

// Get handles GET /api/historical
// type=purplefish returns the agency's own keyword series, type=client
// one client's series; both exclude rows with a null payload.
func (h *HistoricalHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	startDate, endDate := dateWindow(q)

	switch q.Get("type") {
	case "purplefish":
		h.getPurplefish(w, startDate, endDate)
	case "client":
		clientID, err := strconv.ParseInt(q.Get("client_id"), 10, 64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid parameters")
			return
		}
		h.getClient(w, clientID, startDate, endDate)
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid parameters")
	}
}

func (h *HistoricalHandler) getPurplefish(w http.ResponseWriter, startDate, endDate string) {
	rows, err := h.db.Query(`
		SELECT r.date, r.result_json, k.id, k.keyword
		FROM results r
		JOIN keywords k ON k.id = r.keyword_id
		WHERE r.date >= $1 AND r.date <= $2 AND r.result_json IS NOT NULL
		ORDER BY r.date ASC
	`, startDate, endDate)
	if err != nil {
		slog.Error("failed to query historical results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	out := []models.HistoricalRow{}
	for rows.Next() {
		var row models.HistoricalRow
		var raw []byte
		if err := rows.Scan(&row.Date, &raw, &row.KeywordID, &row.Keyword); err != nil {
			slog.Error("failed to scan historical row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		row.ResultJSON = json.RawMessage(raw)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, out)
}

func (h *HistoricalHandler) getClient(w http.ResponseWriter, clientID int64, startDate, endDate string) {
	rows, err := h.db.Query(`
		SELECT cr.date, cr.result_json, ck.id, ck.keyword, ck.client_id
		FROM client_results cr
		JOIN client_keywords ck ON ck.id = cr.client_keyword_id
		WHERE ck.client_id = $1
		  AND cr.date >= $2 AND cr.date <= $3
		  AND cr.result_json IS NOT NULL
		ORDER BY cr.date ASC
	`, clientID, startDate, endDate)
	if err != nil {
		slog.Error("failed to query historical client results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	out := []models.HistoricalClientRow{}
	for rows.Next() {
		var row models.HistoricalClientRow
		var raw []byte
		if err := rows.Scan(&row.Date, &raw, &row.ClientKeywordID, &row.Keyword, &row.ClientID); err != nil {
			slog.Error("failed to scan historical client row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		row.ResultJSON = json.RawMessage(raw)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, out)
}
