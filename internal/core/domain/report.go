package domain

import "github.com/shopspring/decimal"

// MonthlyResult is one month's slice of the periodic tax report.
// Expense already includes the month's general expense. A loss month with a
// positive tax percentage produces a negative CorporateTax, which flows into
// quarterly and yearly totals unmodified.
type MonthlyResult struct {
	Month         int             `json:"month"` // 1..12
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	IncomeVAT     decimal.Decimal `json:"incomeVAT"`
	ExpenseVAT    decimal.Decimal `json:"expenseVAT"`
	VATDifference decimal.Decimal `json:"vatDifference"`
	TaxableBase   decimal.Decimal `json:"taxableBase"`
	TaxPercent    decimal.Decimal `json:"taxPercent"`
	CorporateTax  decimal.Decimal `json:"corporateTax"`
}

// QuarterlyResult rolls up the corporate tax of three calendar months.
type QuarterlyResult struct {
	Quarter      int             `json:"quarter"` // 0..3
	CorporateTax decimal.Decimal `json:"corporateTax"`
}

// YearlySummary nets the whole year.
type YearlySummary struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	TotalCorporateTax decimal.Decimal `json:"totalCorporateTax"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}

// YearCalculations bundles everything the periodic report needs for one year.
type YearCalculations struct {
	Year      int               `json:"year"`
	Monthly   []MonthlyResult   `json:"monthly"`   // always 12 entries
	Quarterly []QuarterlyResult `json:"quarterly"` // always 4 entries
	Summary   YearlySummary     `json:"summary"`
}
