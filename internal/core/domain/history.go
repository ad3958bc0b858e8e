package domain

import "time"

// HistoryRecord is one entry of the append-only operation log.
type HistoryRecord struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}
