package models

import "time"

// ExchangeRate mirrors the exchange_rates table: the inverted current-rate
// pair persisted once per day by the resolver.
type ExchangeRate struct {
	Date    time.Time `json:"date"`
	USDRate float64   `json:"usd_rate"`
	EURRate float64   `json:"eur_rate"`
}

// HistoricalRate mirrors the historical_rates table: raw banknote selling
// prices back-filled for report dates, one row per calendar date.
type HistoricalRate struct {
	Date    time.Time `json:"date"`
	USDRate float64   `json:"usd_rate"`
	EURRate float64   `json:"eur_rate"`
}
