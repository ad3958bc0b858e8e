package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	"github.com/birikimsoft/defter_backend/internal/models"
	"github.com/birikimsoft/defter_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExpenseRepository persists the per-year general_expenses and
// corporate_tax tables. Both share the same shape: a year key plus one
// numeric column per month.
type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: db}}
}

func (r *PgxExpenseRepository) GetYearlyExpenses(ctx context.Context, year int) (*domain.GeneralExpenses, error) {
	row, err := r.getYearRow(ctx, "general_expenses", year)
	if err != nil {
		return nil, err
	}
	expenses := mapping.ToDomainGeneralExpenses(row)
	return &expenses, nil
}

func (r *PgxExpenseRepository) GetCorporateTax(ctx context.Context, year int) (*domain.CorporateTaxRates, error) {
	row, err := r.getYearRow(ctx, "corporate_tax", year)
	if err != nil {
		return nil, err
	}
	rates := mapping.ToDomainCorporateTaxRates(row)
	return &rates, nil
}

// ListExpenseYears returns the years whose general-expense row has at least
// one nonzero month.
func (r *PgxExpenseRepository) ListExpenseYears(ctx context.Context) ([]int, error) {
	query := fmt.Sprintf(
		"SELECT yil FROM general_expenses WHERE %s <> 0 ORDER BY yil",
		strings.Join(models.MonthColumns[:], " + "),
	)

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list expense years", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense year", err)
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read expense years", err)
	}
	return years, nil
}

func (r *PgxExpenseRepository) UpsertYearlyExpenses(ctx context.Context, expenses domain.GeneralExpenses) error {
	return r.upsertYearRow(ctx, "general_expenses", mapping.ToModelGeneralExpenses(expenses))
}

func (r *PgxExpenseRepository) UpsertCorporateTax(ctx context.Context, rates domain.CorporateTaxRates) error {
	return r.upsertYearRow(ctx, "corporate_tax", mapping.ToModelCorporateTaxRates(rates))
}

func (r *PgxExpenseRepository) getYearRow(ctx context.Context, table string, year int) (models.YearlyAmounts, error) {
	query := fmt.Sprintf("SELECT yil, %s FROM %s WHERE yil = $1",
		strings.Join(models.MonthColumns[:], ", "), table)

	var row models.YearlyAmounts
	dest := make([]any, 0, 13)
	dest = append(dest, &row.Year)
	for i := range row.Months {
		dest = append(dest, &row.Months[i])
	}

	if err := r.Pool.QueryRow(ctx, query, year).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return row, apperrors.NewNotFoundError(fmt.Sprintf("no %s row for %d", table, year))
		}
		return row, apperrors.NewAppError(500, "failed to load "+table, err)
	}
	return row, nil
}

func (r *PgxExpenseRepository) upsertYearRow(ctx context.Context, table string, row models.YearlyAmounts) error {
	cols := strings.Join(models.MonthColumns[:], ", ")

	placeholders := make([]string, 12)
	updates := make([]string, 12)
	args := make([]any, 0, 13)
	args = append(args, row.Year)
	for i, col := range models.MonthColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		updates[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
		args = append(args, row.Months[i])
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (yil, %s) VALUES ($1, %s) ON CONFLICT (yil) DO UPDATE SET %s",
		table, cols, strings.Join(placeholders, ", "), strings.Join(updates, ", "),
	)

	if _, err := r.Pool.Exec(ctx, query, args...); err != nil {
		return apperrors.NewAppError(500, "failed to upsert "+table, err)
	}
	return nil
}
