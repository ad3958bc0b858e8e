package domain

import "github.com/shopspring/decimal"

// MonthlyAmounts holds one value per calendar month, index 0 = January.
type MonthlyAmounts [12]decimal.Decimal

// HasNonZero reports whether any month carries a nonzero value.
func (m MonthlyAmounts) HasNonZero() bool {
	for _, v := range m {
		if !v.IsZero() {
			return true
		}
	}
	return false
}

// GeneralExpenses is the per-year general (non-invoice) expense row,
// one amount in TRY per month.
type GeneralExpenses struct {
	Year   int            `json:"year"`
	Months MonthlyAmounts `json:"months"`
}

// CorporateTaxRates is the per-year corporate tax percentage table. A zero
// percentage and an unconfigured month are deliberately indistinguishable:
// the store defaults every month to 0 and the UI writes 0 for cleared
// fields, so both mean "no tax due".
type CorporateTaxRates struct {
	Year     int            `json:"year"`
	Percents MonthlyAmounts `json:"percents"`
}
