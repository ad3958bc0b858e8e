package services

import (
	"context"

	"github.com/birikimsoft/defter_backend/internal/core/domain"
	portsrepo "github.com/birikimsoft/defter_backend/internal/core/ports/repositories"
	"github.com/birikimsoft/defter_backend/internal/dto"
)

// InvoiceSvcFacade is the invoice CRUD surface, partitioned by kind.
type InvoiceSvcFacade interface {
	ListInvoices(ctx context.Context, kind domain.InvoiceKind, opts portsrepo.InvoiceListOptions) ([]domain.Invoice, error)
	GetInvoice(ctx context.Context, kind domain.InvoiceKind, id int64) (*domain.Invoice, error)
	CountInvoices(ctx context.Context, kind domain.InvoiceKind) (int64, error)
	CreateInvoice(ctx context.Context, kind domain.InvoiceKind, req dto.SaveInvoiceRequest) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, kind domain.InvoiceKind, id int64, req dto.SaveInvoiceRequest) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, kind domain.InvoiceKind, id int64) error
	DeleteInvoices(ctx context.Context, kind domain.InvoiceKind, ids []int64) (int64, error)
}

// SettingsSvcFacade is the settings key-value surface.
type SettingsSvcFacade interface {
	AllSettings(ctx context.Context) (map[string]string, error)
	SaveSetting(ctx context.Context, key, value string) error
	// CorporateTaxDefault returns the configured default corporate tax
	// percentage, falling back to 22.0 when the key is absent or does not
	// parse.
	CorporateTaxDefault(ctx context.Context) float64
}

// HistorySvcFacade is the operation-log surface.
type HistorySvcFacade interface {
	RecentHistory(ctx context.Context, limit int) ([]domain.HistoryRecord, error)
	HistoryByDateRange(ctx context.Context, from, to string) ([]domain.HistoryRecord, error)
	PurgeHistory(ctx context.Context, days int) (int64, error)
}
