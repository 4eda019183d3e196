// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/purplefish/rankdash/middleware"
	"github.com/purplefish/rankdash/models"
)

// Resource describes one CRUD table. The three entity tables share an
// identical list/create/delete shape, so a single handler is
// parameterized by this struct instead of being copied per table.
type Resource struct {
	Table string

	// InsertColumns are the columns taken from the request body on
	// create, in declared order. Absent body fields insert as NULL;
	// anything else the store enforces itself.
	InsertColumns []string

	// FilterParam/FilterColumn restrict List to rows matching a
	// required integer query parameter. A missing or malformed
	// parameter matches no rows.
	FilterParam  string
	FilterColumn string

	// DependentTable/DependentColumn name the result table cleared
	// before a row is deleted. The store's cascade behavior is not
	// trusted to do this.
	DependentTable  string
	DependentColumn string
}

// The three dashboard resources.
var (
	Clients = Resource{
		Table:         "clients",
		InsertColumns: []string{"name", "website_url", "google_business_name"},
	}

	Keywords = Resource{
		Table:           "keywords",
		InsertColumns:   []string{"keyword"},
		DependentTable:  "results",
		DependentColumn: "keyword_id",
	}

	ClientKeywords = Resource{
		Table:           "client_keywords",
		InsertColumns:   []string{"client_id", "keyword"},
		FilterParam:     "client_id",
		FilterColumn:    "client_id",
		DependentTable:  "client_results",
		DependentColumn: "client_keyword_id",
	}
)

type ResourceHandler struct {
	db  *sql.DB
	res Resource
}

func NewResourceHandler(db *sql.DB, res Resource) *ResourceHandler {
	return &ResourceHandler{db: db, res: res}
}

// List handles GET /api/{resource}
// Returns all rows; filtered resources return only rows matching the
// filter parameter, and an absent filter value matches nothing.
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	query := "SELECT * FROM " + h.res.Table
	var args []any

	if h.res.FilterParam != "" {
		id, err := strconv.ParseInt(r.URL.Query().Get(h.res.FilterParam), 10, 64)
		if err != nil {
			// Filtering on a missing owner matches no rows
			middleware.JSONResponse(w, http.StatusOK, []map[string]any{})
			return
		}
		query += " WHERE " + h.res.FilterColumn + " = $1"
		args = append(args, id)
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		slog.Error("failed to list rows", "table", h.res.Table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	out, err := scanGenericRows(rows)
	if err != nil {
		slog.Error("failed to scan rows", "table", h.res.Table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, out)
}

// Create handles POST /api/{resource}
// Inserts one row from the request body and returns the created row.
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := middleware.ParseJSONBody(r, &body); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	placeholders := make([]string, len(h.res.InsertColumns))
	args := make([]any, len(h.res.InsertColumns))
	for i, col := range h.res.InsertColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = body[col]
	}

	query := "INSERT INTO " + h.res.Table +
		" (" + strings.Join(h.res.InsertColumns, ", ") + ")" +
		" VALUES (" + strings.Join(placeholders, ", ") + ")" +
		" RETURNING *"

	rows, err := h.db.Query(query, args...)
	if err != nil {
		slog.Error("failed to insert row", "table", h.res.Table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	out, err := scanGenericRows(rows)
	if err != nil || len(out) == 0 {
		if err == nil {
			err = sql.ErrNoRows
		}
		slog.Error("failed to read created row", "table", h.res.Table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("row created", "table", h.res.Table)
	middleware.JSONResponse(w, http.StatusOK, out[0])
}

// Delete handles DELETE /api/{resource}
// Deletes dependent result rows first (best effort), then the entity
// row itself.
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.res.DependentTable != "" {
		_, err := h.db.Exec(
			"DELETE FROM "+h.res.DependentTable+" WHERE "+h.res.DependentColumn+" = $1",
			req.ID,
		)
		if err != nil {
			// Best effort: the primary delete still proceeds
			slog.Warn("failed to delete dependent rows",
				"table", h.res.DependentTable, "id", req.ID, "error", err)
		}
	}

	_, err := h.db.Exec("DELETE FROM "+h.res.Table+" WHERE id = $1", req.ID)
	if err != nil {
		slog.Error("failed to delete row", "table", h.res.Table, "id", req.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("row deleted", "table", h.res.Table, "id", req.ID)
	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// scanGenericRows reads every row into a map keyed by column name, so
// all resources share one scan path regardless of their columns.
func scanGenericRows(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []map[string]any{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			// Drivers hand text back as []byte, which would marshal
			// as base64
			if b, ok := vals[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = vals[i]
			}
		}
		out = append(out, row)
	}

	return out, rows.Err()
}
