package pgsql

import (
	portsrepo "github.com/birikimsoft/defter_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo:     newPgxRateRepository(dbPool),
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		ExpenseRepo:  newPgxExpenseRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
		HistoryRepo:  newPgxHistoryRepository(dbPool),
	}
}
