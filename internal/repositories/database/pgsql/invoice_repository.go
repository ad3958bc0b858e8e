package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	portsrepo "github.com/birikimsoft/defter_backend/internal/core/ports/repositories"
	"github.com/birikimsoft/defter_backend/internal/models"
	"github.com/birikimsoft/defter_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// invoiceColumns is the stable select list shared by every invoice query.
const invoiceColumns = `id, kind, fatura_no, irsaliye_no, tarih, firma, malzeme, miktar, birim,
	toplam_tutar_tl, toplam_tutar_usd, toplam_tutar_eur, kdv_yuzdesi, kdv_tutari, kdv_dahil,
	usd_rate, eur_rate, created_at, updated_at`

// invoiceOrderColumns whitelists the sortable columns. Anything else falls
// back to the default ordering.
var invoiceOrderColumns = map[string]bool{
	"id":              true,
	"tarih":           true,
	"fatura_no":       true,
	"firma":           true,
	"toplam_tutar_tl": true,
	"created_at":      true,
}

// PgxInvoiceRepository implements the invoice repository interfaces using pgxpool.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: db}}
}

// ListInvoices returns one kind's invoices, newest first unless opts says
// otherwise. Zero limit means everything.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, kind domain.InvoiceKind, opts portsrepo.InvoiceListOptions) ([]domain.Invoice, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM invoices WHERE kind = $1", invoiceColumns)

	orderBy := "id DESC"
	if invoiceOrderColumns[opts.OrderBy] {
		orderBy = opts.OrderBy + " ASC"
	}
	fmt.Fprintf(&sb, " ORDER BY %s", orderBy)

	args := []any{string(kind)}
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list invoices", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		model, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(model))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read invoices", err)
	}
	return invoices, nil
}

// FindInvoiceByID retrieves a single invoice within one kind partition.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, kind domain.InvoiceKind, id int64) (*domain.Invoice, error) {
	query := fmt.Sprintf("SELECT %s FROM invoices WHERE kind = $1 AND id = $2", invoiceColumns)

	model, err := scanInvoice(r.Pool.QueryRow(ctx, query, string(kind), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("invoice %d not found", id))
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice", err)
	}

	inv := mapping.ToDomainInvoice(model)
	return &inv, nil
}

// CountInvoices counts one kind's invoices.
func (r *PgxInvoiceRepository) CountInvoices(ctx context.Context, kind domain.InvoiceKind) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM invoices WHERE kind = $1", string(kind)).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count invoices", err)
	}
	return count, nil
}

// SaveInvoice inserts a new invoice and returns the assigned ID.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, inv domain.Invoice) (int64, error) {
	model := mapping.ToModelInvoice(inv)

	var id int64
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO invoices (
			kind, fatura_no, irsaliye_no, tarih, firma, malzeme, miktar, birim,
			toplam_tutar_tl, toplam_tutar_usd, toplam_tutar_eur, kdv_yuzdesi, kdv_tutari,
			kdv_dahil, usd_rate, eur_rate, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id`,
		model.Kind, model.FaturaNo, model.IrsaliyeNo, model.Tarih, model.Firma,
		model.Malzeme, model.Miktar, model.Birim, model.ToplamTL, model.ToplamUSD,
		model.ToplamEUR, model.KDVYuzdesi, model.KDVTutari, model.KDVDahil,
		model.USDRate, model.EURRate, model.CreatedAt, model.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to save invoice", err)
	}
	return id, nil
}

// UpdateInvoice rewrites an existing invoice row in place.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, inv domain.Invoice) error {
	model := mapping.ToModelInvoice(inv)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE invoices SET
			fatura_no = $1, irsaliye_no = $2, tarih = $3, firma = $4, malzeme = $5,
			miktar = $6, birim = $7, toplam_tutar_tl = $8, toplam_tutar_usd = $9,
			toplam_tutar_eur = $10, kdv_yuzdesi = $11, kdv_tutari = $12, kdv_dahil = $13,
			usd_rate = $14, eur_rate = $15, updated_at = $16
		WHERE kind = $17 AND id = $18`,
		model.FaturaNo, model.IrsaliyeNo, model.Tarih, model.Firma, model.Malzeme,
		model.Miktar, model.Birim, model.ToplamTL, model.ToplamUSD, model.ToplamEUR,
		model.KDVYuzdesi, model.KDVTutari, model.KDVDahil, model.USDRate, model.EURRate,
		model.UpdatedAt, model.Kind, model.ID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("invoice %d not found", inv.ID))
	}
	return nil
}

// DeleteInvoice removes one invoice within a kind partition.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, kind domain.InvoiceKind, id int64) error {
	tag, err := r.Pool.Exec(ctx, "DELETE FROM invoices WHERE kind = $1 AND id = $2", string(kind), id)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("invoice %d not found", id))
	}
	return nil
}

// DeleteInvoices removes a batch of IDs, returning how many rows matched.
// Missing IDs are not an error.
func (r *PgxInvoiceRepository) DeleteInvoices(ctx context.Context, kind domain.InvoiceKind, ids []int64) (int64, error) {
	tag, err := r.Pool.Exec(ctx, "DELETE FROM invoices WHERE kind = $1 AND id = ANY($2)", string(kind), ids)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete invoices", err)
	}
	return tag.RowsAffected(), nil
}

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.ID, &m.Kind, &m.FaturaNo, &m.IrsaliyeNo, &m.Tarih, &m.Firma, &m.Malzeme,
		&m.Miktar, &m.Birim, &m.ToplamTL, &m.ToplamUSD, &m.ToplamEUR, &m.KDVYuzdesi,
		&m.KDVTutari, &m.KDVDahil, &m.USDRate, &m.EURRate, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}
