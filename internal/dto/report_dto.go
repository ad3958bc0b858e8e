package dto

import (
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyResultResponse is one month of the periodic report.
type MonthlyResultResponse struct {
	Month         int             `json:"month"`
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	IncomeVAT     decimal.Decimal `json:"incomeVAT"`
	ExpenseVAT    decimal.Decimal `json:"expenseVAT"`
	VATDifference decimal.Decimal `json:"vatDifference"`
	TaxableBase   decimal.Decimal `json:"taxableBase"`
	TaxPercent    decimal.Decimal `json:"taxPercent"`
	CorporateTax  decimal.Decimal `json:"corporateTax"`
}

// QuarterlyResultResponse is one quarter's corporate-tax roll-up.
type QuarterlyResultResponse struct {
	Quarter      int             `json:"quarter"`
	CorporateTax decimal.Decimal `json:"corporateTax"`
}

// YearlySummaryResponse is the year's bottom line.
type YearlySummaryResponse struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	TotalCorporateTax decimal.Decimal `json:"totalCorporateTax"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}

// YearCalculationsResponse bundles the full periodic report for a year.
type YearCalculationsResponse struct {
	Year      int                       `json:"year"`
	Monthly   []MonthlyResultResponse   `json:"monthly"`
	Quarterly []QuarterlyResultResponse `json:"quarterly"`
	Summary   YearlySummaryResponse     `json:"summary"`
}

// YearRangeResponse lists the years that have any data.
type YearRangeResponse struct {
	Years []int `json:"years"`
}

// ToYearCalculationsResponse converts the domain calculations.
func ToYearCalculationsResponse(c *domain.YearCalculations) YearCalculationsResponse {
	resp := YearCalculationsResponse{
		Year:    c.Year,
		Summary: ToYearlySummaryResponse(c.Summary),
	}
	for _, m := range c.Monthly {
		resp.Monthly = append(resp.Monthly, MonthlyResultResponse{
			Month:         m.Month,
			Income:        m.Income,
			Expense:       m.Expense,
			IncomeVAT:     m.IncomeVAT,
			ExpenseVAT:    m.ExpenseVAT,
			VATDifference: m.VATDifference,
			TaxableBase:   m.TaxableBase,
			TaxPercent:    m.TaxPercent,
			CorporateTax:  m.CorporateTax,
		})
	}
	for _, q := range c.Quarterly {
		resp.Quarterly = append(resp.Quarterly, QuarterlyResultResponse{
			Quarter:      q.Quarter,
			CorporateTax: q.CorporateTax,
		})
	}
	return resp
}

// ToYearlySummaryResponse converts the domain summary.
func ToYearlySummaryResponse(s domain.YearlySummary) YearlySummaryResponse {
	return YearlySummaryResponse{
		TotalIncome:       s.TotalIncome,
		TotalExpense:      s.TotalExpense,
		TotalCorporateTax: s.TotalCorporateTax,
		NetProfit:         s.NetProfit,
	}
}
