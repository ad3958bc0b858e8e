package dto

import (
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// YearlyAmountsRequest defines the payload for saving a year's general
// expenses or corporate-tax percentages, one value per month (index 0 =
// January, missing months default to zero).
type YearlyAmountsRequest struct {
	Months []decimal.Decimal `json:"months" binding:"required,max=12"`
}

// Amounts expands the request into a full 12-month array.
func (r YearlyAmountsRequest) Amounts() domain.MonthlyAmounts {
	var months domain.MonthlyAmounts
	for i, v := range r.Months {
		if i >= len(months) {
			break
		}
		months[i] = v
	}
	return months
}

// YearlyAmountsResponse returns a year's monthly values.
type YearlyAmountsResponse struct {
	Year   int               `json:"year"`
	Months []decimal.Decimal `json:"months"`
}

// ToYearlyExpensesResponse converts a general-expense row.
func ToYearlyExpensesResponse(e *domain.GeneralExpenses) YearlyAmountsResponse {
	return YearlyAmountsResponse{Year: e.Year, Months: e.Months[:]}
}

// ToCorporateTaxResponse converts a corporate-tax row.
func ToCorporateTaxResponse(r *domain.CorporateTaxRates) YearlyAmountsResponse {
	return YearlyAmountsResponse{Year: r.Year, Months: r.Percents[:]}
}
