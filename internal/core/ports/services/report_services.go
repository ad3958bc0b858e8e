package services

import (
	"context"

	"github.com/birikimsoft/defter_backend/internal/core/domain"
)

// PeriodSvcFacade aggregates invoices and expenses into the periodic tax report.
type PeriodSvcFacade interface {
	// CalculationsForYear produces the 12 monthly results, 4 quarterly
	// roll-ups and the yearly summary for a year.
	CalculationsForYear(ctx context.Context, year int) (*domain.YearCalculations, error)

	// YearlySummary produces just the year's summary line.
	YearlySummary(ctx context.Context, year int) (*domain.YearlySummary, error)

	// YearRange returns the sorted distinct years present across income
	// invoices, expense invoices and nonzero general-expense rows. Never
	// empty: the current year is the fallback.
	YearRange(ctx context.Context) ([]int, error)
}

// ExpenseSvcFacade manages the per-year general-expense and corporate-tax tables.
type ExpenseSvcFacade interface {
	GetYearlyExpenses(ctx context.Context, year int) (*domain.GeneralExpenses, error)
	SaveYearlyExpenses(ctx context.Context, expenses domain.GeneralExpenses) error
	GetCorporateTax(ctx context.Context, year int) (*domain.CorporateTaxRates, error)
	SaveCorporateTax(ctx context.Context, rates domain.CorporateTaxRates) error
}
