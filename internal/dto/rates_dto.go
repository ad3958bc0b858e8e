package dto

import (
	"time"

	"github.com/birikimsoft/defter_backend/internal/core/domain"
)

// RateSnapshotResponse is the current-rate payload.
type RateSnapshotResponse struct {
	USD  float64   `json:"usd"`
	EUR  float64   `json:"eur"`
	AsOf time.Time `json:"asOf"`
	Tier string    `json:"tier"`
}

// ToRateSnapshotResponse converts a domain snapshot.
func ToRateSnapshotResponse(s domain.RateSnapshot) RateSnapshotResponse {
	return RateSnapshotResponse{USD: s.USD, EUR: s.EUR, AsOf: s.AsOf, Tier: string(s.Tier)}
}

// RatePairResponse carries a single day's banknote selling prices.
type RatePairResponse struct {
	USD float64 `json:"usd"`
	EUR float64 `json:"eur"`
}

// BulkRatesRequest asks for selling prices on many dates (DD.MM.YYYY).
type BulkRatesRequest struct {
	Dates []string `json:"dates" binding:"required"`
}

// BulkRatesResponse maps ISO dates to their resolved selling prices.
// Unresolvable dates are simply absent.
type BulkRatesResponse struct {
	Rates map[string]RatePairResponse `json:"rates"`
}

// ConvertResponse is the currency-conversion payload.
type ConvertResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
}
