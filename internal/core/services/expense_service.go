package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	portsrepo "github.com/birikimsoft/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
)

type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	historyRepo portsrepo.HistoryRepositoryFacade
	logger      *slog.Logger
}

// NewExpenseService creates an ExpenseSvcFacade.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, historyRepo portsrepo.HistoryRepositoryFacade, logger *slog.Logger) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo, historyRepo: historyRepo, logger: logger}
}

// GetYearlyExpenses returns the stored row, or an all-zero row when the year
// has never been edited.
func (s *expenseService) GetYearlyExpenses(ctx context.Context, year int) (*domain.GeneralExpenses, error) {
	expenses, err := s.expenseRepo.GetYearlyExpenses(ctx, year)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &domain.GeneralExpenses{Year: year}, nil
	}
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (s *expenseService) SaveYearlyExpenses(ctx context.Context, expenses domain.GeneralExpenses) error {
	if expenses.Year <= 0 {
		return fmt.Errorf("%w: year must be positive", apperrors.ErrValidation)
	}
	if err := s.expenseRepo.UpsertYearlyExpenses(ctx, expenses); err != nil {
		return fmt.Errorf("saving yearly expenses for %d: %w", expenses.Year, err)
	}
	s.record(ctx, "expenses_saved", fmt.Sprintf("general expenses for %d", expenses.Year))
	return nil
}

// GetCorporateTax returns the stored row, or a zero-percentage row when the
// year has never been edited. Zero means "not configured".
func (s *expenseService) GetCorporateTax(ctx context.Context, year int) (*domain.CorporateTaxRates, error) {
	rates, err := s.expenseRepo.GetCorporateTax(ctx, year)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &domain.CorporateTaxRates{Year: year}, nil
	}
	if err != nil {
		return nil, err
	}
	return rates, nil
}

func (s *expenseService) SaveCorporateTax(ctx context.Context, rates domain.CorporateTaxRates) error {
	if rates.Year <= 0 {
		return fmt.Errorf("%w: year must be positive", apperrors.ErrValidation)
	}
	if err := s.expenseRepo.UpsertCorporateTax(ctx, rates); err != nil {
		return fmt.Errorf("saving corporate tax for %d: %w", rates.Year, err)
	}
	s.record(ctx, "corporate_tax_saved", fmt.Sprintf("corporate tax percentages for %d", rates.Year))
	return nil
}

func (s *expenseService) record(ctx context.Context, action, details string) {
	if err := s.historyRepo.AddHistoryRecord(ctx, action, details); err != nil {
		s.logger.Error("failed to record history", slog.String("action", action), slog.String("error", err.Error()))
	}
}
