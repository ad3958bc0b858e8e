package models

import "time"

// History mirrors the history table, the append-only operation log.
type History struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
