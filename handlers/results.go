// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/purplefish/rankdash/middleware"
	"github.com/purplefish/rankdash/models"
)

// ResultSeries describes one of the two time-series tables. Both
// share the history and upsert paths; only the today view differs.
type ResultSeries struct {
	Table       string
	OwnerColumn string

	// ClientJoin marks the series whose today view joins through
	// client_keywords and requires a client_id parameter.
	ClientJoin bool
}

var (
	Results = ResultSeries{
		Table:       "results",
		OwnerColumn: "keyword_id",
	}

	ClientResults = ResultSeries{
		Table:       "client_results",
		OwnerColumn: "client_keyword_id",
		ClientJoin:  true,
	}
)

type ResultsHandler struct {
	db     *sql.DB
	series ResultSeries
}

func NewResultsHandler(db *sql.DB, series ResultSeries) *ResultsHandler {
	return &ResultsHandler{db: db, series: series}
}

// Get handles GET /api/results and GET /api/client-results
// With an owner id and a day count it returns that owner's history;
// otherwise it returns today's rows.
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// The dashboard sends keyword_id for both series; the owner
	// column's own name is accepted too.
	owner := q.Get(h.series.OwnerColumn)
	if owner == "" {
		owner = q.Get("keyword_id")
	}
	days := q.Get("days")

	if owner != "" && days != "" {
		h.getHistory(w, owner, days)
		return
	}

	if h.series.ClientJoin {
		h.getClientToday(w, q.Get("client_id"))
		return
	}

	h.getToday(w)
}

// getHistory returns one owner's rows from the lookback start onward,
// oldest first.
func (h *ResultsHandler) getHistory(w http.ResponseWriter, owner, days string) {
	daysNum, err := strconv.Atoi(days)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "days must be a number")
		return
	}
	startDate := daysAgoUTC(daysNum)

	rows, err := h.db.Query(`
		SELECT date, result_json
		FROM `+h.series.Table+`
		WHERE `+h.series.OwnerColumn+` = $1 AND date >= $2
		ORDER BY date ASC
	`, owner, startDate)
	if err != nil {
		slog.Error("failed to query result history", "table", h.series.Table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	out := []models.ResultRow{}
	for rows.Next() {
		var row models.ResultRow
		var raw []byte
		if err := rows.Scan(&row.Date, &raw); err != nil {
			slog.Error("failed to scan result row", "error", err)
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

// getToday returns every global keyword's row for the current day.
func (h *ResultsHandler) getToday(w http.ResponseWriter) {
	rows, err := h.db.Query(`
		SELECT keyword_id, result_json
		FROM results
		WHERE date = $1
	`, todayUTC())
	if err != nil {
		slog.Error("failed to query today's results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	out := []models.TodayResultRow{}
	for rows.Next() {
		var row models.TodayResultRow
		var raw []byte
		if err := rows.Scan(&row.KeywordID, &raw); err != nil {
			slog.Error("failed to scan result row", "error", err)
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

// getClientToday returns today's rows for one client's keywords,
// joined to expose the keyword text.
func (h *ResultsHandler) getClientToday(w http.ResponseWriter, clientID string) {
	if clientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "client_id is required")
		return
	}

	rows, err := h.db.Query(`
		SELECT cr.client_keyword_id, cr.result_json, ck.keyword, ck.client_id
		FROM client_results cr
		JOIN client_keywords ck ON ck.id = cr.client_keyword_id
		WHERE ck.client_id = $1 AND cr.date = $2
	`, clientID, todayUTC())
	if err != nil {
		slog.Error("failed to query today's client results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	out := []models.ClientTodayResultRow{}
	for rows.Next() {
		var row models.ClientTodayResultRow
		var raw []byte
		if err := rows.Scan(&row.ClientKeywordID, &raw, &row.Keyword, &row.ClientID); err != nil {
			slog.Error("failed to scan client result row", "error", err)
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

// Upsert handles POST /api/results and POST /api/client-results
// Inserts or overwrites the single row keyed by (owner, date). This is
// the only write path for result data.
func (h *ResultsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	ownerID := req.KeywordID
	if h.series.ClientJoin {
		ownerID = req.ClientKeywordID
	}

	// A nil owner or empty date inserts as NULL and fails in the
	// store; validation is the store's job here, as everywhere else.
	var owner any
	if ownerID != nil {
		owner = *ownerID
	}
	var payload any
	if req.ResultJSON != nil {
		payload = string(req.ResultJSON)
	}

	var (
		gotOwner int64
		gotDate  string
		raw      []byte
	)
	err := h.db.QueryRow(`
		INSERT INTO `+h.series.Table+` (`+h.series.OwnerColumn+`, date, result_json)
		VALUES ($1, $2, $3)
		ON CONFLICT (`+h.series.OwnerColumn+`, date)
		DO UPDATE SET result_json = EXCLUDED.result_json
		RETURNING `+h.series.OwnerColumn+`, date, result_json
	`, owner, req.Date, payload).Scan(&gotOwner, &gotDate, &raw)
	if err != nil {
		slog.Error("failed to upsert result", "table", h.series.Table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("result upserted", "table", h.series.Table, "owner", gotOwner, "date", gotDate)

	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		h.series.OwnerColumn: gotOwner,
		"date":               gotDate,
		"result_JSON":        json.RawMessage(raw),
	})
}
