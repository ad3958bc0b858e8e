package services

import (
	"log/slog"

	portsrepo "github.com/birikimsoft/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, source portssvc.RateSource, notifier portssvc.RateNotifier, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The rate resolver comes first since the converter and bulk fetcher
	// depend on it.
	container.Rates = NewRateResolverService(
		source,
		repos.RateRepo,
		logger,
		WithRateNotifier(notifier),
		WithRateTimeouts(cfg.RateFetchTimeout, cfg.HistoricalTimeout),
	)
	container.Converter = NewConverterService(container.Rates)
	container.BulkRates = NewBulkRateService(container.Rates, repos.RateRepo, cfg.BulkRateConcurrency, logger)

	container.Period = NewPeriodService(repos.InvoiceRepo, repos.ExpenseRepo, logger)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.HistoryRepo, logger)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.HistoryRepo, logger)
	container.Settings = NewSettingsService(repos.SettingsRepo, logger)
	container.History = NewHistoryService(repos.HistoryRepo, logger)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RateResolverSvcFacade = (*rateResolverService)(nil)
	_ portssvc.ConverterSvcFacade    = (*converterService)(nil)
	_ portssvc.BulkRateSvcFacade     = (*bulkRateService)(nil)
	_ portssvc.PeriodSvcFacade       = (*periodService)(nil)
	_ portssvc.ExpenseSvcFacade      = (*expenseService)(nil)
	_ portssvc.InvoiceSvcFacade      = (*invoiceService)(nil)
	_ portssvc.SettingsSvcFacade     = (*settingsService)(nil)
	_ portssvc.HistorySvcFacade      = (*historyService)(nil)
)
