package mapping

import (
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	"github.com/birikimsoft/defter_backend/internal/models"
)

// ToDomainGeneralExpenses converts a yearly-amounts row to general expenses.
func ToDomainGeneralExpenses(m models.YearlyAmounts) domain.GeneralExpenses {
	return domain.GeneralExpenses{Year: m.Year, Months: m.Months}
}

// ToModelGeneralExpenses converts general expenses to a yearly-amounts row.
func ToModelGeneralExpenses(d domain.GeneralExpenses) models.YearlyAmounts {
	return models.YearlyAmounts{Year: d.Year, Months: d.Months}
}

// ToDomainCorporateTaxRates converts a yearly-amounts row to tax percentages.
func ToDomainCorporateTaxRates(m models.YearlyAmounts) domain.CorporateTaxRates {
	return domain.CorporateTaxRates{Year: m.Year, Percents: m.Months}
}

// ToModelCorporateTaxRates converts tax percentages to a yearly-amounts row.
func ToModelCorporateTaxRates(d domain.CorporateTaxRates) models.YearlyAmounts {
	return models.YearlyAmounts{Year: d.Year, Months: d.Percents}
}

// ToDomainHistory converts a history row to its domain record.
func ToDomainHistory(m models.History) domain.HistoryRecord {
	return domain.HistoryRecord{ID: m.ID, Action: m.Action, Details: m.Details, CreatedAt: m.CreatedAt}
}
