package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	portsrepo "github.com/birikimsoft/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// periodService aggregates invoices and the per-year expense/tax tables into
// monthly, quarterly and yearly figures.
type periodService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	expenseRepo portsrepo.ExpenseRepositoryFacade
	logger      *slog.Logger
}

// NewPeriodService creates a PeriodSvcFacade.
func NewPeriodService(invoiceRepo portsrepo.InvoiceRepositoryFacade, expenseRepo portsrepo.ExpenseRepositoryFacade, logger *slog.Logger) portssvc.PeriodSvcFacade {
	return &periodService{invoiceRepo: invoiceRepo, expenseRepo: expenseRepo, logger: logger}
}

// monthlyBuckets accumulates one year of invoice data, index 0 = January.
type monthlyBuckets struct {
	income     [12]decimal.Decimal
	expense    [12]decimal.Decimal
	incomeVAT  [12]decimal.Decimal
	expenseVAT [12]decimal.Decimal
	skipped    int
}

// CalculationsForYear builds the full periodic report for a year. Invoices
// without a parseable date or dated outside the year are skipped silently;
// dirty historical data must never block report generation.
func (s *periodService) CalculationsForYear(ctx context.Context, year int) (*domain.YearCalculations, error) {
	buckets, err := s.aggregateInvoices(ctx, year)
	if err != nil {
		return nil, err
	}

	generalExpenses, err := s.yearlyExpensesOrZero(ctx, year)
	if err != nil {
		return nil, err
	}
	taxRates, err := s.corporateTaxOrZero(ctx, year)
	if err != nil {
		return nil, err
	}

	calc := &domain.YearCalculations{Year: year}
	var totalIncome, totalExpense, totalTax decimal.Decimal

	for i := 0; i < 12; i++ {
		income := buckets.income[i]
		expense := buckets.expense[i].Add(generalExpenses.Months[i])
		taxableBase := income.Sub(expense)
		pct := taxRates.Percents[i]

		// 0% and "never configured" are deliberately the same: both mean no
		// tax due. A loss month with a positive rate yields a negative tax
		// that passes through to the roll-ups unmodified.
		tax := decimal.Zero
		if pct.IsPositive() {
			tax = taxableBase.Mul(pct).Div(oneHundred)
		}

		calc.Monthly = append(calc.Monthly, domain.MonthlyResult{
			Month:         i + 1,
			Income:        income,
			Expense:       expense,
			IncomeVAT:     buckets.incomeVAT[i],
			ExpenseVAT:    buckets.expenseVAT[i],
			VATDifference: buckets.incomeVAT[i].Sub(buckets.expenseVAT[i]),
			TaxableBase:   taxableBase,
			TaxPercent:    pct,
			CorporateTax:  tax,
		})

		totalIncome = totalIncome.Add(income)
		totalExpense = totalExpense.Add(expense)
		totalTax = totalTax.Add(tax)
	}

	for q := 0; q < 4; q++ {
		var quarterTax decimal.Decimal
		for j := 0; j < 3; j++ {
			quarterTax = quarterTax.Add(calc.Monthly[q*3+j].CorporateTax)
		}
		calc.Quarterly = append(calc.Quarterly, domain.QuarterlyResult{Quarter: q, CorporateTax: quarterTax})
	}

	calc.Summary = domain.YearlySummary{
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		TotalCorporateTax: totalTax,
		NetProfit:         totalIncome.Sub(totalExpense).Sub(totalTax),
	}

	if buckets.skipped > 0 {
		s.logger.Warn("skipped invoices during aggregation",
			slog.Int("year", year), slog.Int("skipped", buckets.skipped))
	}
	return calc, nil
}

// YearlySummary computes just the summary line for a year.
func (s *periodService) YearlySummary(ctx context.Context, year int) (*domain.YearlySummary, error) {
	calc, err := s.CalculationsForYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return &calc.Summary, nil
}

// YearRange collects the distinct years present in either invoice partition
// or in a general-expense row with any nonzero month. An empty book yields
// the current year so callers always have a year to show.
func (s *periodService) YearRange(ctx context.Context) ([]int, error) {
	years := map[int]bool{}

	for _, kind := range []domain.InvoiceKind{domain.KindOutgoing, domain.KindIncoming} {
		invoices, err := s.invoiceRepo.ListInvoices(ctx, kind, portsrepo.InvoiceListOptions{})
		if err != nil {
			return nil, fmt.Errorf("listing %s invoices for year range: %w", kind, err)
		}
		for _, inv := range invoices {
			if inv.IssueDate != nil {
				years[inv.IssueDate.Year()] = true
			}
		}
	}

	expenseYears, err := s.expenseRepo.ListExpenseYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing expense years: %w", err)
	}
	for _, y := range expenseYears {
		years[y] = true
	}

	if len(years) == 0 {
		return []int{time.Now().Year()}, nil
	}

	out := make([]int, 0, len(years))
	for y := range years {
		out = append(out, y)
	}
	sort.Ints(out)
	return out, nil
}

// aggregateInvoices sums both invoice partitions into month buckets.
func (s *periodService) aggregateInvoices(ctx context.Context, year int) (*monthlyBuckets, error) {
	buckets := &monthlyBuckets{}

	income, err := s.invoiceRepo.ListInvoices(ctx, domain.KindOutgoing, portsrepo.InvoiceListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing income invoices: %w", err)
	}
	s.accumulate(buckets, income, year, buckets.income[:], buckets.incomeVAT[:])

	expense, err := s.invoiceRepo.ListInvoices(ctx, domain.KindIncoming, portsrepo.InvoiceListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing expense invoices: %w", err)
	}
	s.accumulate(buckets, expense, year, buckets.expense[:], buckets.expenseVAT[:])

	return buckets, nil
}

func (s *periodService) accumulate(buckets *monthlyBuckets, invoices []domain.Invoice, year int, totals, vat []decimal.Decimal) {
	for _, inv := range invoices {
		if inv.IssueDate == nil || inv.IssueDate.Year() != year {
			if inv.IssueDate == nil {
				buckets.skipped++
			}
			continue
		}
		m := int(inv.IssueDate.Month()) - 1
		totals[m] = totals[m].Add(inv.TotalTRY)
		vat[m] = vat[m].Add(inv.VATAmount)
	}
}

// yearlyExpensesOrZero treats a missing row as all-zero months.
func (s *periodService) yearlyExpensesOrZero(ctx context.Context, year int) (*domain.GeneralExpenses, error) {
	expenses, err := s.expenseRepo.GetYearlyExpenses(ctx, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.GeneralExpenses{Year: year}, nil
		}
		return nil, fmt.Errorf("loading general expenses: %w", err)
	}
	return expenses, nil
}

// corporateTaxOrZero treats a missing row as all-zero percentages.
func (s *periodService) corporateTaxOrZero(ctx context.Context, year int) (*domain.CorporateTaxRates, error) {
	rates, err := s.expenseRepo.GetCorporateTax(ctx, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.CorporateTaxRates{Year: year}, nil
		}
		return nil, fmt.Errorf("loading corporate tax rates: %w", err)
	}
	return rates, nil
}
