package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice mirrors the invoices table. Column names keep the legacy Turkish
// schema so existing desktop databases import cleanly.
type Invoice struct {
	ID          int64           `json:"id"`
	Kind        string          `json:"kind"` // outgoing | incoming
	FaturaNo    string          `json:"fatura_no"`
	IrsaliyeNo  string          `json:"irsaliye_no"`
	Tarih       string          `json:"tarih"` // DD.MM.YYYY text
	Firma       string          `json:"firma"`
	Malzeme     string          `json:"malzeme"`
	Miktar      string          `json:"miktar"`
	Birim       string          `json:"birim"`
	ToplamTL    decimal.Decimal `json:"toplam_tutar_tl"`
	ToplamUSD   decimal.Decimal `json:"toplam_tutar_usd"`
	ToplamEUR   decimal.Decimal `json:"toplam_tutar_eur"`
	KDVYuzdesi  decimal.Decimal `json:"kdv_yuzdesi"`
	KDVTutari   decimal.Decimal `json:"kdv_tutari"`
	KDVDahil    bool            `json:"kdv_dahil"`
	USDRate     decimal.Decimal `json:"usd_rate"`
	EURRate     decimal.Decimal `json:"eur_rate"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
