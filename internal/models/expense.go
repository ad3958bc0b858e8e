package models

import "github.com/shopspring/decimal"

// MonthColumns lists the twelve month column names of the general_expenses
// and corporate_tax tables, January first. The Turkish names are the legacy
// schema's and are kept for import compatibility.
var MonthColumns = [12]string{
	"ocak", "subat", "mart", "nisan", "mayis", "haziran",
	"temmuz", "agustos", "eylul", "ekim", "kasim", "aralik",
}

// YearlyAmounts mirrors one row of general_expenses or corporate_tax:
// a year plus one numeric column per month.
type YearlyAmounts struct {
	Year   int                `json:"yil"`
	Months [12]decimal.Decimal `json:"months"`
}
