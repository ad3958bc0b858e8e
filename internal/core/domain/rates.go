package domain

import "time"

// RateTier identifies which fallback tier produced a rate snapshot.
type RateTier string

const (
	TierLive        RateTier = "LIVE"
	TierPreviousDay RateTier = "PREVIOUS_DAY"
	TierCache       RateTier = "CACHE"
	TierDefault     RateTier = "DEFAULT"
)

// Default rates used when every other tier fails. Illustrative placeholders,
// not current market rates.
const (
	DefaultUSDRate = 0.030
	DefaultEURRate = 0.028
)

// RateSnapshot is the process-wide current-rate state. Rates are stored
// inverted (1 / banknote selling price), so amountTRY * rate = amountForeign.
type RateSnapshot struct {
	USD  float64  `json:"usd"`
	EUR  float64  `json:"eur"`
	AsOf time.Time `json:"asOf"`
	Tier RateTier `json:"tier"`
}

// Rate returns the snapshot rate for a normalized currency code,
// or 0 when the code is unknown.
func (s RateSnapshot) Rate(code string) float64 {
	switch code {
	case "USD":
		return s.USD
	case "EUR":
		return s.EUR
	}
	return 0
}

// Warm reports whether both rates are positive, i.e. the snapshot can be
// served without hitting the network again.
func (s RateSnapshot) Warm() bool {
	return s.USD > 0 && s.EUR > 0
}

// RatePair holds the banknote selling prices for a single day, as published
// by the rate feed (not inverted).
type RatePair struct {
	USD float64 `json:"usd"`
	EUR float64 `json:"eur"`
}

// HistoricalRate is a persisted RatePair keyed by calendar date.
// At most one record exists per date; upsert replaces.
type HistoricalRate struct {
	Date time.Time `json:"date"`
	USD  float64   `json:"usd"`
	EUR  float64   `json:"eur"`
}
