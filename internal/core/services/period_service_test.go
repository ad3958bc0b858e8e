package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	portsrepo "github.com/birikimsoft/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, kind domain.InvoiceKind, opts portsrepo.InvoiceListOptions) ([]domain.Invoice, error) {
	args := m.Called(ctx, kind, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, kind domain.InvoiceKind, id int64) (*domain.Invoice, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CountInvoices(ctx context.Context, kind domain.InvoiceKind) (int64, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, inv domain.Invoice) (int64, error) {
	args := m.Called(ctx, inv)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, inv domain.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, kind domain.InvoiceKind, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoices(ctx context.Context, kind domain.InvoiceKind, ids []int64) (int64, error) {
	args := m.Called(ctx, kind, ids)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) GetYearlyExpenses(ctx context.Context, year int) (*domain.GeneralExpenses, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralExpenses), args.Error(1)
}

func (m *MockExpenseRepository) GetCorporateTax(ctx context.Context, year int) (*domain.CorporateTaxRates, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CorporateTaxRates), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenseYears(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockExpenseRepository) UpsertYearlyExpenses(ctx context.Context, expenses domain.GeneralExpenses) error {
	args := m.Called(ctx, expenses)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpsertCorporateTax(ctx context.Context, rates domain.CorporateTaxRates) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

func invoiceOn(kind domain.InvoiceKind, isoDate string, total, vat float64) domain.Invoice {
	t, _ := time.Parse("2006-01-02", isoDate)
	return domain.Invoice{
		Kind:      kind,
		RawDate:   t.Format("02.01.2006"),
		IssueDate: &t,
		TotalTRY:  decimal.NewFromFloat(total),
		VATAmount: decimal.NewFromFloat(vat),
	}
}

// --- Test Suite ---
type PeriodServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockExpenseRepo *MockExpenseRepository
	service         portssvc.PeriodSvcFacade
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.service = services.NewPeriodService(suite.mockInvoiceRepo, suite.mockExpenseRepo, testLogger())
}

func (suite *PeriodServiceTestSuite) expectInvoices(outgoing, incoming []domain.Invoice) {
	suite.mockInvoiceRepo.On("ListInvoices", mock.Anything, domain.KindOutgoing, mock.Anything).
		Return(outgoing, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", mock.Anything, domain.KindIncoming, mock.Anything).
		Return(incoming, nil).Once()
}

func (suite *PeriodServiceTestSuite) expectNoExpenseRows(year int) {
	suite.mockExpenseRepo.On("GetYearlyExpenses", mock.Anything, year).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockExpenseRepo.On("GetCorporateTax", mock.Anything, year).
		Return(nil, apperrors.ErrNotFound).Once()
}

// --- Test Cases ---

func (suite *PeriodServiceTestSuite) TestCalculationsForYear_SingleMonth() {
	ctx := context.Background()
	suite.expectInvoices(
		[]domain.Invoice{invoiceOn(domain.KindOutgoing, "2024-03-15", 1000, 180)},
		nil,
	)
	suite.expectNoExpenseRows(2024)

	calc, err := suite.service.CalculationsForYear(ctx, 2024)

	suite.Require().NoError(err)
	suite.Len(calc.Monthly, 12)
	suite.Len(calc.Quarterly, 4)

	march := calc.Monthly[2]
	suite.Equal(3, march.Month)
	suite.True(march.Income.Equal(decimal.NewFromInt(1000)), "income %s", march.Income)
	suite.True(march.IncomeVAT.Equal(decimal.NewFromInt(180)))
	suite.True(march.VATDifference.Equal(decimal.NewFromInt(180)))
	suite.True(march.TaxableBase.Equal(decimal.NewFromInt(1000)))
	suite.True(march.CorporateTax.IsZero())

	suite.True(calc.Monthly[0].Income.IsZero())
	suite.True(calc.Summary.TotalIncome.Equal(decimal.NewFromInt(1000)))
}

func (suite *PeriodServiceTestSuite) TestCalculationsForYear_CorporateTax() {
	ctx := context.Background()
	suite.expectInvoices(
		[]domain.Invoice{invoiceOn(domain.KindOutgoing, "2024-01-10", 5000, 900)},
		[]domain.Invoice{invoiceOn(domain.KindIncoming, "2024-01-20", 2000, 360)},
	)

	var expenses domain.GeneralExpenses
	expenses.Year = 2024
	expenses.Months[0] = decimal.NewFromInt(500)
	var rates domain.CorporateTaxRates
	rates.Year = 2024
	rates.Percents[0] = decimal.NewFromInt(20)

	suite.mockExpenseRepo.On("GetYearlyExpenses", mock.Anything, 2024).Return(&expenses, nil).Once()
	suite.mockExpenseRepo.On("GetCorporateTax", mock.Anything, 2024).Return(&rates, nil).Once()

	calc, err := suite.service.CalculationsForYear(ctx, 2024)

	suite.Require().NoError(err)
	jan := calc.Monthly[0]
	// Expense combines the invoice total and the general expense.
	suite.True(jan.Expense.Equal(decimal.NewFromInt(2500)), "expense %s", jan.Expense)
	suite.True(jan.TaxableBase.Equal(decimal.NewFromInt(2500)))
	suite.True(jan.CorporateTax.Equal(decimal.NewFromInt(500)), "tax %s", jan.CorporateTax)
	suite.True(jan.VATDifference.Equal(decimal.NewFromInt(540)))

	suite.True(calc.Quarterly[0].CorporateTax.Equal(decimal.NewFromInt(500)))
	suite.True(calc.Quarterly[1].CorporateTax.IsZero())
	suite.True(calc.Summary.NetProfit.Equal(decimal.NewFromInt(2000)), "net %s", calc.Summary.NetProfit)
}

func (suite *PeriodServiceTestSuite) TestCalculationsForYear_ZeroPercentMeansNoTax() {
	ctx := context.Background()
	suite.expectInvoices(
		[]domain.Invoice{invoiceOn(domain.KindOutgoing, "2024-06-01", 10000, 1800)},
		nil,
	)
	suite.expectNoExpenseRows(2024)

	calc, err := suite.service.CalculationsForYear(ctx, 2024)

	suite.Require().NoError(err)
	suite.True(calc.Monthly[5].CorporateTax.IsZero())
	suite.True(calc.Summary.TotalCorporateTax.IsZero())
}

func (suite *PeriodServiceTestSuite) TestCalculationsForYear_LossMonthYieldsNegativeTax() {
	ctx := context.Background()
	suite.expectInvoices(
		nil,
		[]domain.Invoice{invoiceOn(domain.KindIncoming, "2024-02-05", 4000, 720)},
	)

	var rates domain.CorporateTaxRates
	rates.Year = 2024
	rates.Percents[1] = decimal.NewFromInt(25)

	suite.mockExpenseRepo.On("GetYearlyExpenses", mock.Anything, 2024).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockExpenseRepo.On("GetCorporateTax", mock.Anything, 2024).Return(&rates, nil).Once()

	calc, err := suite.service.CalculationsForYear(ctx, 2024)

	suite.Require().NoError(err)
	feb := calc.Monthly[1]
	suite.True(feb.TaxableBase.Equal(decimal.NewFromInt(-4000)))
	suite.True(feb.CorporateTax.Equal(decimal.NewFromInt(-1000)), "tax %s", feb.CorporateTax)
	suite.True(calc.Quarterly[0].CorporateTax.Equal(decimal.NewFromInt(-1000)))
}

func (suite *PeriodServiceTestSuite) TestCalculationsForYear_SkipsUnparsedAndForeignYears() {
	ctx := context.Background()
	otherYear := invoiceOn(domain.KindOutgoing, "2023-12-31", 999, 0)
	noDate := domain.Invoice{Kind: domain.KindOutgoing, RawDate: "31.13.2024", TotalTRY: decimal.NewFromInt(500)}

	suite.expectInvoices(
		[]domain.Invoice{otherYear, noDate, invoiceOn(domain.KindOutgoing, "2024-05-05", 100, 18)},
		nil,
	)
	suite.expectNoExpenseRows(2024)

	calc, err := suite.service.CalculationsForYear(ctx, 2024)

	suite.Require().NoError(err)
	suite.True(calc.Summary.TotalIncome.Equal(decimal.NewFromInt(100)))
}

func (suite *PeriodServiceTestSuite) TestYearlySummary() {
	ctx := context.Background()
	suite.expectInvoices(
		[]domain.Invoice{invoiceOn(domain.KindOutgoing, "2024-08-01", 300, 54)},
		[]domain.Invoice{invoiceOn(domain.KindIncoming, "2024-09-01", 100, 18)},
	)
	suite.expectNoExpenseRows(2024)

	summary, err := suite.service.YearlySummary(ctx, 2024)

	suite.Require().NoError(err)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(300)))
	suite.True(summary.TotalExpense.Equal(decimal.NewFromInt(100)))
	suite.True(summary.NetProfit.Equal(decimal.NewFromInt(200)))
}

func (suite *PeriodServiceTestSuite) TestYearRange_CollectsAllSources() {
	ctx := context.Background()
	suite.expectInvoices(
		[]domain.Invoice{invoiceOn(domain.KindOutgoing, "2022-01-01", 1, 0)},
		[]domain.Invoice{invoiceOn(domain.KindIncoming, "2024-01-01", 1, 0)},
	)
	suite.mockExpenseRepo.On("ListExpenseYears", mock.Anything).Return([]int{2023}, nil).Once()

	years, err := suite.service.YearRange(ctx)

	suite.Require().NoError(err)
	suite.Equal([]int{2022, 2023, 2024}, years)
}

func (suite *PeriodServiceTestSuite) TestYearRange_EmptyBookFallsBackToCurrentYear() {
	ctx := context.Background()
	suite.expectInvoices(nil, nil)
	suite.mockExpenseRepo.On("ListExpenseYears", mock.Anything).Return([]int{}, nil).Once()

	years, err := suite.service.YearRange(ctx)

	suite.Require().NoError(err)
	suite.Equal([]int{time.Now().Year()}, years)
}

func TestPeriodService(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}
