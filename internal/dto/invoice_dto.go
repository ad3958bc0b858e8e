package dto

import (
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveInvoiceRequest defines the payload for creating or updating an invoice.
// Date accepts DD.MM.YYYY, YYYY-MM-DD or DD/MM/YYYY; other values are
// replaced with today's date at the service boundary.
type SaveInvoiceRequest struct {
	InvoiceNo   string          `json:"invoiceNo"`
	DispatchNo  string          `json:"dispatchNo"`
	Date        string          `json:"date"`
	Company     string          `json:"company" binding:"required"`
	Item        string          `json:"item"`
	Quantity    string          `json:"quantity"`
	Unit        string          `json:"unit"`
	TotalTRY    decimal.Decimal `json:"totalTRY"`
	TotalUSD    decimal.Decimal `json:"totalUSD"`
	TotalEUR    decimal.Decimal `json:"totalEUR"`
	VATPercent  decimal.Decimal `json:"vatPercent"`
	VATAmount   decimal.Decimal `json:"vatAmount"`
	VATIncluded bool            `json:"vatIncluded"`
	USDRate     decimal.Decimal `json:"usdRate"`
	EURRate     decimal.Decimal `json:"eurRate"`
}

// DeleteInvoicesRequest defines the payload for bulk deletion.
type DeleteInvoicesRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// InvoiceResponse defines the structure for API responses containing invoice details.
type InvoiceResponse struct {
	ID          int64           `json:"id"`
	Kind        string          `json:"kind"`
	InvoiceNo   string          `json:"invoiceNo"`
	DispatchNo  string          `json:"dispatchNo"`
	Date        string          `json:"date"`
	Company     string          `json:"company"`
	Item        string          `json:"item"`
	Quantity    string          `json:"quantity"`
	Unit        string          `json:"unit"`
	TotalTRY    decimal.Decimal `json:"totalTRY"`
	TotalUSD    decimal.Decimal `json:"totalUSD"`
	TotalEUR    decimal.Decimal `json:"totalEUR"`
	VATPercent  decimal.Decimal `json:"vatPercent"`
	VATAmount   decimal.Decimal `json:"vatAmount"`
	VATIncluded bool            `json:"vatIncluded"`
	USDRate     decimal.Decimal `json:"usdRate"`
	EURRate     decimal.Decimal `json:"eurRate"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		Kind:        string(inv.Kind),
		InvoiceNo:   inv.InvoiceNo,
		DispatchNo:  inv.DispatchNo,
		Date:        inv.RawDate,
		Company:     inv.Company,
		Item:        inv.Item,
		Quantity:    inv.Quantity,
		Unit:        inv.Unit,
		TotalTRY:    inv.TotalTRY,
		TotalUSD:    inv.TotalUSD,
		TotalEUR:    inv.TotalEUR,
		VATPercent:  inv.VATPercent,
		VATAmount:   inv.VATAmount,
		VATIncluded: inv.VATIncluded,
		USDRate:     inv.USDRate,
		EURRate:     inv.EURRate,
	}
}

// ToListInvoiceResponse converts a slice of domain invoices to response DTOs.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}
