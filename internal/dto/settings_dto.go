package dto

import (
	"time"

	"github.com/birikimsoft/defter_backend/internal/core/domain"
)

// SaveSettingRequest defines the payload for storing one setting.
type SaveSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// SettingsResponse returns the full settings map plus the effective
// corporate-tax default (after fallback handling).
type SettingsResponse struct {
	Settings            map[string]string `json:"settings"`
	CorporateTaxDefault float64           `json:"corporateTaxDefault"`
}

// HistoryRecordResponse is one operation-log entry.
type HistoryRecordResponse struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryRangeRequest bounds a history query, both dates DD.MM.YYYY inclusive.
type HistoryRangeRequest struct {
	From string `form:"from" binding:"required,displaydate"`
	To   string `form:"to" binding:"required,displaydate"`
}

// PurgeHistoryResponse reports how many log entries were removed.
type PurgeHistoryResponse struct {
	Deleted int64 `json:"deleted"`
}

// ToHistoryResponse converts domain history records.
func ToHistoryResponse(records []domain.HistoryRecord) []HistoryRecordResponse {
	out := make([]HistoryRecordResponse, len(records))
	for i, r := range records {
		out[i] = HistoryRecordResponse{ID: r.ID, Action: r.Action, Details: r.Details, CreatedAt: r.CreatedAt}
	}
	return out
}
