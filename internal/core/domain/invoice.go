package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind partitions invoices into outgoing (income) and incoming (expense).
type InvoiceKind string

const (
	KindOutgoing InvoiceKind = "outgoing"
	KindIncoming InvoiceKind = "incoming"
)

// Valid reports whether the kind is one of the two known partitions.
func (k InvoiceKind) Valid() bool {
	return k == KindOutgoing || k == KindIncoming
}

// Invoice is a flat invoice record. The legacy store keeps the issue date as
// DD.MM.YYYY text; IssueDate is the parsed value and is nil when the stored
// text could not be parsed. Aggregation operates on IssueDate only.
type Invoice struct {
	ID          int64           `json:"id"`
	Kind        InvoiceKind     `json:"kind"`
	InvoiceNo   string          `json:"invoiceNo"`
	DispatchNo  string          `json:"dispatchNo"`
	RawDate     string          `json:"date"` // DD.MM.YYYY as stored
	IssueDate   *time.Time      `json:"-"`
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
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
