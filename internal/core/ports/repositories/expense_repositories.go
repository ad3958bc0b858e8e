package repositories

import (
	"context"

	"github.com/birikimsoft/defter_backend/internal/core/domain"
)

// ExpenseReader defines read operations for the per-year expense and tax tables.
type ExpenseReader interface {
	// GetYearlyExpenses returns the general-expense row for a year.
	// apperrors.ErrNotFound when the year has no row.
	GetYearlyExpenses(ctx context.Context, year int) (*domain.GeneralExpenses, error)

	// GetCorporateTax returns the corporate-tax percentage row for a year.
	// apperrors.ErrNotFound when the year has no row.
	GetCorporateTax(ctx context.Context, year int) (*domain.CorporateTaxRates, error)

	// ListExpenseYears returns the years whose general-expense row carries at
	// least one nonzero month.
	ListExpenseYears(ctx context.Context) ([]int, error)
}

// ExpenseWriter defines write operations for the per-year tables.
type ExpenseWriter interface {
	UpsertYearlyExpenses(ctx context.Context, expenses domain.GeneralExpenses) error
	UpsertCorporateTax(ctx context.Context, rates domain.CorporateTaxRates) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
