package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type BulkRateServiceTestSuite struct {
	suite.Suite
	mockResolver *MockRateResolver
	mockRepo     *MockRateCacheRepository
	service      portssvc.BulkRateSvcFacade
}

func (suite *BulkRateServiceTestSuite) SetupTest() {
	suite.mockResolver = new(MockRateResolver)
	suite.mockRepo = new(MockRateCacheRepository)
	suite.service = services.NewBulkRateService(suite.mockResolver, suite.mockRepo, 4, testLogger())
}

func day(iso string) time.Time {
	t, _ := time.Parse("2006-01-02", iso)
	return t
}

// --- Test Cases ---

func (suite *BulkRateServiceTestSuite) TestResolveMany_EmptyInput() {
	got := suite.service.ResolveMany(context.Background(), nil)

	suite.Empty(got)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindHistoricalRate")
	suite.mockResolver.AssertNotCalled(suite.T(), "FetchHistorical")
}

func (suite *BulkRateServiceTestSuite) TestResolveMany_FetchesAndWritesThrough() {
	d := day("2024-01-05")
	pair := &domain.RatePair{USD: 29.90, EUR: 32.70}

	suite.mockRepo.On("FindHistoricalRate", mock.Anything, d).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockResolver.On("FetchHistorical", mock.Anything, d).Return(pair, nil).Once()
	suite.mockRepo.On("UpsertHistoricalRate", mock.Anything, domain.HistoricalRate{Date: d, USD: 29.90, EUR: 32.70}).
		Return(nil).Once()

	got := suite.service.ResolveMany(context.Background(), []time.Time{d})

	suite.Require().Len(got, 1)
	suite.Equal(domain.RatePair{USD: 29.90, EUR: 32.70}, got["2024-01-05"])
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockResolver.AssertExpectations(suite.T())
}

func (suite *BulkRateServiceTestSuite) TestResolveMany_DeduplicatesDates() {
	d := day("2024-01-05")
	sameDayLater := d.Add(10 * time.Hour)
	pair := &domain.RatePair{USD: 29.90, EUR: 32.70}

	suite.mockRepo.On("FindHistoricalRate", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockResolver.On("FetchHistorical", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(pair, nil).Once()
	suite.mockRepo.On("UpsertHistoricalRate", mock.Anything, mock.AnythingOfType("domain.HistoricalRate")).
		Return(nil).Once()

	got := suite.service.ResolveMany(context.Background(), []time.Time{d, sameDayLater, d})

	suite.Len(got, 1)
	suite.mockResolver.AssertNumberOfCalls(suite.T(), "FetchHistorical", 1)
}

func (suite *BulkRateServiceTestSuite) TestResolveMany_PersistedHitSkipsFeed() {
	d := day("2024-02-14")
	pair := &domain.RatePair{USD: 30.75, EUR: 33.10}

	suite.mockRepo.On("FindHistoricalRate", mock.Anything, d).Return(pair, nil).Once()

	got := suite.service.ResolveMany(context.Background(), []time.Time{d})

	suite.Require().Len(got, 1)
	suite.Equal(*pair, got["2024-02-14"])
	suite.mockResolver.AssertNotCalled(suite.T(), "FetchHistorical")
}

func (suite *BulkRateServiceTestSuite) TestResolveMany_MemoServesRepeatCalls() {
	d := day("2024-02-14")
	pair := &domain.RatePair{USD: 30.75, EUR: 33.10}

	// Only the first call may touch the persisted table.
	suite.mockRepo.On("FindHistoricalRate", mock.Anything, d).Return(pair, nil).Once()

	first := suite.service.ResolveMany(context.Background(), []time.Time{d})
	second := suite.service.ResolveMany(context.Background(), []time.Time{d})

	suite.Equal(first, second)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindHistoricalRate", 1)
}

func (suite *BulkRateServiceTestSuite) TestResolveMany_UnresolvableDatesAbsent() {
	hit := day("2024-03-01")
	miss := day("2024-03-02")
	pair := &domain.RatePair{USD: 31.00, EUR: 33.60}

	suite.mockRepo.On("FindHistoricalRate", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Twice()
	suite.mockResolver.On("FetchHistorical", mock.Anything, hit).Return(pair, nil).Once()
	suite.mockResolver.On("FetchHistorical", mock.Anything, miss).Return(nil, nil).Once()
	suite.mockRepo.On("UpsertHistoricalRate", mock.Anything, mock.AnythingOfType("domain.HistoricalRate")).
		Return(nil).Once()

	got := suite.service.ResolveMany(context.Background(), []time.Time{hit, miss})

	suite.Len(got, 1)
	suite.Contains(got, "2024-03-01")
	suite.NotContains(got, "2024-03-02")
}

func (suite *BulkRateServiceTestSuite) TestResolveMany_PersistFailureStillReturnsPair() {
	d := day("2024-04-10")
	pair := &domain.RatePair{USD: 32.40, EUR: 34.90}

	suite.mockRepo.On("FindHistoricalRate", mock.Anything, d).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockResolver.On("FetchHistorical", mock.Anything, d).Return(pair, nil).Once()
	suite.mockRepo.On("UpsertHistoricalRate", mock.Anything, mock.AnythingOfType("domain.HistoricalRate")).
		Return(apperrors.ErrDuplicate).Once()

	got := suite.service.ResolveMany(context.Background(), []time.Time{d})

	suite.Require().Len(got, 1)
	suite.Equal(*pair, got["2024-04-10"])
}

func TestBulkRateService(t *testing.T) {
	suite.Run(t, new(BulkRateServiceTestSuite))
}
