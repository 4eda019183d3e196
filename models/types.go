package models

import "encoding/json"

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

type DeleteRequest struct {
	ID int64 `json:"id"`
}

// UpsertResultRequest covers both result tables; exactly one owner
// field is expected per table.
type UpsertResultRequest struct {
	KeywordID       *int64          `json:"keyword_id"`
	ClientKeywordID *int64          `json:"client_keyword_id"`
	ResultJSON      json.RawMessage `json:"result_JSON"`
	Date            string          `json:"date"`
}

type SerpSearchRequest struct {
	Keyword string `json:"keyword"`
	APIKey  string `json:"apiKey"`
}

// Response types

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// UpstreamStatusResponse reports a non-2xx status from the ranking
// provider.
type UpstreamStatusResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// Result rows

// ResultRow is a dated ranking payload for one owner. The payload is
// opaque: stored and relayed, never parsed.
type ResultRow struct {
	Date       string          `json:"date"`
	ResultJSON json.RawMessage `json:"result_JSON"`
}

// TodayResultRow is the today-view projection for global keywords.
type TodayResultRow struct {
	KeywordID  int64           `json:"keyword_id"`
	ResultJSON json.RawMessage `json:"result_JSON"`
}

// ClientTodayResultRow is the today-view projection for a client's
// keywords, joined through client_keywords.
type ClientTodayResultRow struct {
	ClientKeywordID int64           `json:"client_keyword_id"`
	ResultJSON      json.RawMessage `json:"result_JSON"`
	Keyword         string          `json:"keyword"`
	ClientID        int64           `json:"client_id"`
}

// Historical rows

type HistoricalRow struct {
	Date       string          `json:"date"`
	ResultJSON json.RawMessage `json:"result_JSON"`
	KeywordID  int64           `json:"keyword_id"`
	Keyword    string          `json:"keyword"`
}

type HistoricalClientRow struct {
	Date            string          `json:"date"`
	ResultJSON      json.RawMessage `json:"result_JSON"`
	ClientKeywordID int64           `json:"client_keyword_id"`
	Keyword         string          `json:"keyword"`
	ClientID        int64           `json:"client_id"`
}
