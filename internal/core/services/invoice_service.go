package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	portsrepo "github.com/birikimsoft/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/dto"
	"github.com/birikimsoft/defter_backend/internal/utils/dateutil"
)

// invoiceService provides invoice CRUD on top of the repository, normalizing
// the legacy date text at the boundary and recording every mutation in the
// operation log.
type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	historyRepo portsrepo.HistoryRepositoryFacade
	logger      *slog.Logger
}

// NewInvoiceService creates an InvoiceSvcFacade.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, historyRepo portsrepo.HistoryRepositoryFacade, logger *slog.Logger) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo, historyRepo: historyRepo, logger: logger}
}

func (s *invoiceService) ListInvoices(ctx context.Context, kind domain.InvoiceKind, opts portsrepo.InvoiceListOptions) ([]domain.Invoice, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown invoice kind %q", apperrors.ErrValidation, kind)
	}
	return s.invoiceRepo.ListInvoices(ctx, kind, opts)
}

func (s *invoiceService) GetInvoice(ctx context.Context, kind domain.InvoiceKind, id int64) (*domain.Invoice, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown invoice kind %q", apperrors.ErrValidation, kind)
	}
	return s.invoiceRepo.FindInvoiceByID(ctx, kind, id)
}

func (s *invoiceService) CountInvoices(ctx context.Context, kind domain.InvoiceKind) (int64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: unknown invoice kind %q", apperrors.ErrValidation, kind)
	}
	return s.invoiceRepo.CountInvoices(ctx, kind)
}

func (s *invoiceService) CreateInvoice(ctx context.Context, kind domain.InvoiceKind, req dto.SaveInvoiceRequest) (*domain.Invoice, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown invoice kind %q", apperrors.ErrValidation, kind)
	}

	inv := invoiceFromRequest(kind, req)
	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	id, err := s.invoiceRepo.SaveInvoice(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}
	inv.ID = id

	s.record(ctx, "invoice_added", fmt.Sprintf("%s invoice %s (%s)", kind, inv.InvoiceNo, inv.Company))
	s.logger.Info("invoice created", slog.String("kind", string(kind)), slog.Int64("id", id))
	return &inv, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, kind domain.InvoiceKind, id int64, req dto.SaveInvoiceRequest) (*domain.Invoice, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown invoice kind %q", apperrors.ErrValidation, kind)
	}

	existing, err := s.invoiceRepo.FindInvoiceByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	inv := invoiceFromRequest(kind, req)
	inv.ID = id
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = time.Now()

	if err := s.invoiceRepo.UpdateInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("updating invoice %d: %w", id, err)
	}

	s.record(ctx, "invoice_updated", fmt.Sprintf("%s invoice %d", kind, id))
	return &inv, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, kind domain.InvoiceKind, id int64) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown invoice kind %q", apperrors.ErrValidation, kind)
	}
	if err := s.invoiceRepo.DeleteInvoice(ctx, kind, id); err != nil {
		return err
	}
	s.record(ctx, "invoice_deleted", fmt.Sprintf("%s invoice %d", kind, id))
	return nil
}

func (s *invoiceService) DeleteInvoices(ctx context.Context, kind domain.InvoiceKind, ids []int64) (int64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: unknown invoice kind %q", apperrors.ErrValidation, kind)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	deleted, err := s.invoiceRepo.DeleteInvoices(ctx, kind, ids)
	if err != nil {
		return 0, err
	}
	s.record(ctx, "invoices_deleted", fmt.Sprintf("%d %s invoices", deleted, kind))
	return deleted, nil
}

// record appends to the operation log; log failures must not fail the
// mutation they describe.
func (s *invoiceService) record(ctx context.Context, action, details string) {
	if err := s.historyRepo.AddHistoryRecord(ctx, action, details); err != nil {
		s.logger.Error("failed to record history", slog.String("action", action), slog.String("error", err.Error()))
	}
}

func invoiceFromRequest(kind domain.InvoiceKind, req dto.SaveInvoiceRequest) domain.Invoice {
	rawDate := dateutil.NormalizeDisplayDate(req.Date)
	return domain.Invoice{
		Kind:        kind,
		InvoiceNo:   req.InvoiceNo,
		DispatchNo:  req.DispatchNo,
		RawDate:     rawDate,
		IssueDate:   dateutil.ParseDisplayDate(rawDate),
		Company:     req.Company,
		Item:        req.Item,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		TotalTRY:    req.TotalTRY,
		TotalUSD:    req.TotalUSD,
		TotalEUR:    req.TotalEUR,
		VATPercent:  req.VATPercent,
		VATAmount:   req.VATAmount,
		VATIncluded: req.VATIncluded,
		USDRate:     req.USDRate,
		EURRate:     req.EURRate,
	}
}
