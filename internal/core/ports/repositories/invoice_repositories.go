package repositories

import (
	"context"

	"github.com/birikimsoft/defter_backend/internal/core/domain"
)

// InvoiceListOptions controls invoice listing. Zero Limit means no limit.
// OrderBy must be one of the whitelisted column names; empty falls back to
// the repository default (newest first).
type InvoiceListOptions struct {
	Limit   int
	Offset  int
	OrderBy string
}

// InvoiceReader defines read operations for invoices.
type InvoiceReader interface {
	ListInvoices(ctx context.Context, kind domain.InvoiceKind, opts InvoiceListOptions) ([]domain.Invoice, error)
	FindInvoiceByID(ctx context.Context, kind domain.InvoiceKind, id int64) (*domain.Invoice, error)
	CountInvoices(ctx context.Context, kind domain.InvoiceKind) (int64, error)
}

// InvoiceWriter defines write operations for invoices.
type InvoiceWriter interface {
	// SaveInvoice inserts a new invoice and returns its assigned ID.
	SaveInvoice(ctx context.Context, inv domain.Invoice) (int64, error)
	UpdateInvoice(ctx context.Context, inv domain.Invoice) error
	DeleteInvoice(ctx context.Context, kind domain.InvoiceKind, id int64) error
	// DeleteInvoices removes the given IDs, returning how many rows matched.
	DeleteInvoices(ctx context.Context, kind domain.InvoiceKind, ids []int64) (int64, error)
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
