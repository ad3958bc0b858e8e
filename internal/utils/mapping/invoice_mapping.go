package mapping

import (
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	"github.com/birikimsoft/defter_backend/internal/models"
	"github.com/birikimsoft/defter_backend/internal/utils/dateutil"
)

// ToModelInvoice converts a domain Invoice to a model Invoice.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		ID:         d.ID,
		Kind:       string(d.Kind),
		FaturaNo:   d.InvoiceNo,
		IrsaliyeNo: d.DispatchNo,
		Tarih:      d.RawDate,
		Firma:      d.Company,
		Malzeme:    d.Item,
		Miktar:     d.Quantity,
		Birim:      d.Unit,
		ToplamTL:   d.TotalTRY,
		ToplamUSD:  d.TotalUSD,
		ToplamEUR:  d.TotalEUR,
		KDVYuzdesi: d.VATPercent,
		KDVTutari:  d.VATAmount,
		KDVDahil:   d.VATIncluded,
		USDRate:    d.USDRate,
		EURRate:    d.EURRate,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice. The legacy
// date text is parsed here; IssueDate stays nil for dirty rows so the
// aggregation layer can skip them without ever seeing the raw string format.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:          m.ID,
		Kind:        domain.InvoiceKind(m.Kind),
		InvoiceNo:   m.FaturaNo,
		DispatchNo:  m.IrsaliyeNo,
		RawDate:     m.Tarih,
		IssueDate:   dateutil.ParseDisplayDate(m.Tarih),
		Company:     m.Firma,
		Item:        m.Malzeme,
		Quantity:    m.Miktar,
		Unit:        m.Birim,
		TotalTRY:    m.ToplamTL,
		TotalUSD:    m.ToplamUSD,
		TotalEUR:    m.ToplamEUR,
		VATPercent:  m.KDVYuzdesi,
		VATAmount:   m.KDVTutari,
		VATIncluded: m.KDVDahil,
		USDRate:     m.USDRate,
		EURRate:     m.EURRate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
