package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	"github.com/birikimsoft/defter_backend/internal/core/domain"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchDaily(ctx context.Context, date time.Time) (*domain.RatePair, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatePair), args.Error(1)
}

// --- Mock RateCacheRepository ---
type MockRateCacheRepository struct {
	mock.Mock
}

func (m *MockRateCacheRepository) LoadLatestRates(ctx context.Context) (float64, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}

func (m *MockRateCacheRepository) FindHistoricalRate(ctx context.Context, date time.Time) (*domain.RatePair, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatePair), args.Error(1)
}

func (m *MockRateCacheRepository) SaveCurrentRates(ctx context.Context, usd, eur float64) error {
	args := m.Called(ctx, usd, eur)
	return args.Error(0)
}

func (m *MockRateCacheRepository) UpsertHistoricalRate(ctx context.Context, rate domain.HistoricalRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock RateNotifier ---
type MockRateNotifier struct {
	mock.Mock
}

func (m *MockRateNotifier) Notify(message string, duration time.Duration) {
	m.Called(message, duration)
}

// panicNotifier always panics; the resolver must survive it.
type panicNotifier struct{}

func (panicNotifier) Notify(string, time.Duration) { panic("notifier exploded") }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Test Suite ---
type RateResolverServiceTestSuite struct {
	suite.Suite
	mockSource   *MockRateSource
	mockRepo     *MockRateCacheRepository
	mockNotifier *MockRateNotifier
	service      portssvc.RateResolverSvcFacade
}

func (suite *RateResolverServiceTestSuite) SetupTest() {
	suite.mockSource = new(MockRateSource)
	suite.mockRepo = new(MockRateCacheRepository)
	suite.mockNotifier = new(MockRateNotifier)
	suite.service = services.NewRateResolverService(
		suite.mockSource,
		suite.mockRepo,
		testLogger(),
		services.WithRateNotifier(suite.mockNotifier),
		services.WithRateTimeouts(time.Second, time.Second),
	)
}

// --- Test Cases ---

func (suite *RateResolverServiceTestSuite) TestCurrent_LiveFetchSucceeds() {
	pair := &domain.RatePair{USD: 34.50, EUR: 37.20}

	suite.mockSource.On("FetchDaily", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(pair, nil).Once()
	suite.mockRepo.On("SaveCurrentRates", mock.Anything, 1/34.50, 1/37.20).Return(nil).Once()
	suite.mockNotifier.On("Notify", "Central bank rates updated.", 3*time.Second).Once()

	snap := suite.service.Current(context.Background(), false)

	suite.Equal(domain.TierLive, snap.Tier)
	suite.InDelta(1/34.50, snap.USD, 1e-9)
	suite.InDelta(1/37.20, snap.EUR, 1e-9)
	suite.True(snap.Warm())
	suite.mockSource.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *RateResolverServiceTestSuite) TestCurrent_WarmSnapshotSkipsNetwork() {
	pair := &domain.RatePair{USD: 34.50, EUR: 37.20}

	suite.mockSource.On("FetchDaily", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(pair, nil).Once()
	suite.mockRepo.On("SaveCurrentRates", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockNotifier.On("Notify", mock.Anything, mock.Anything).Once()

	first := suite.service.Current(context.Background(), false)
	second := suite.service.Current(context.Background(), false)

	suite.Equal(first, second)
	suite.mockSource.AssertNumberOfCalls(suite.T(), "FetchDaily", 1)
}

func (suite *RateResolverServiceTestSuite) TestCurrent_ForceBypassesWarmSnapshot() {
	pair := &domain.RatePair{USD: 34.50, EUR: 37.20}

	suite.mockSource.On("FetchDaily", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(pair, nil).Twice()
	suite.mockRepo.On("SaveCurrentRates", mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
	suite.mockNotifier.On("Notify", mock.Anything, mock.Anything).Twice()

	suite.service.Current(context.Background(), false)
	suite.service.Current(context.Background(), true)

	suite.mockSource.AssertNumberOfCalls(suite.T(), "FetchDaily", 2)
}

func (suite *RateResolverServiceTestSuite) TestCurrent_FallsBackToPreviousDay() {
	feedDown := errors.New("connection refused")
	pair := &domain.RatePair{USD: 34.00, EUR: 36.80}

	// Today misses, the first previous day hits.
	suite.mockSource.On("FetchDaily", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, feedDown).Once()
	suite.mockSource.On("FetchDaily", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(pair, nil).Once()
	suite.mockRepo.On("SaveCurrentRates", mock.Anything, 1/34.00, 1/36.80).Return(nil).Once()
	suite.mockNotifier.On("Notify", "Using previous business day rates.", 4*time.Second).Once()

	snap := suite.service.Current(context.Background(), false)

	suite.Equal(domain.TierPreviousDay, snap.Tier)
	suite.InDelta(1/34.00, snap.USD, 1e-9)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *RateResolverServiceTestSuite) TestCurrent_FallsBackToPersistedCache() {
	feedDown := errors.New("timeout")

	// Today plus seven previous days all miss.
	suite.mockSource.On("FetchDaily", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, feedDown).Times(8)
	suite.mockRepo.On("LoadLatestRates", mock.Anything).Return(0.03, 0.028, nil).Once()
	suite.mockNotifier.On("Notify", "Using last saved exchange rates.", 4*time.Second).Once()

	snap := suite.service.Current(context.Background(), false)

	suite.Equal(domain.TierCache, snap.Tier)
	suite.InDelta(0.03, snap.USD, 1e-9)
	suite.InDelta(0.028, snap.EUR, 1e-9)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrentRates")
}

func (suite *RateResolverServiceTestSuite) TestCurrent_AllTiersFailUsesDefaults() {
	feedDown := errors.New("no route to host")

	suite.mockSource.On("FetchDaily", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, feedDown).Times(8)
	suite.mockRepo.On("LoadLatestRates", mock.Anything).
		Return(0.0, 0.0, apperrors.ErrNotFound).Once()
	suite.mockNotifier.On("Notify", "No connection! Using default exchange rates.", 5*time.Second).Once()

	snap := suite.service.Current(context.Background(), false)

	suite.Equal(domain.TierDefault, snap.Tier)
	suite.Equal(domain.DefaultUSDRate, snap.USD)
	suite.Equal(domain.DefaultEURRate, snap.EUR)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *RateResolverServiceTestSuite) TestCurrent_PanickingNotifierTolerated() {
	pair := &domain.RatePair{USD: 34.50, EUR: 37.20}

	mockSource := new(MockRateSource)
	mockRepo := new(MockRateCacheRepository)
	mockSource.On("FetchDaily", mock.Anything, mock.AnythingOfType("time.Time")).Return(pair, nil).Once()
	mockRepo.On("SaveCurrentRates", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	svc := services.NewRateResolverService(mockSource, mockRepo, testLogger(),
		services.WithRateNotifier(panicNotifier{}),
		services.WithRateTimeouts(time.Second, time.Second))

	suite.NotPanics(func() {
		snap := svc.Current(context.Background(), false)
		suite.Equal(domain.TierLive, snap.Tier)
	})
}

func (suite *RateResolverServiceTestSuite) TestCurrent_PersistFailureDoesNotAbort() {
	pair := &domain.RatePair{USD: 34.50, EUR: 37.20}

	suite.mockSource.On("FetchDaily", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(pair, nil).Once()
	suite.mockRepo.On("SaveCurrentRates", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("disk full")).Once()
	suite.mockNotifier.On("Notify", mock.Anything, mock.Anything).Once()

	snap := suite.service.Current(context.Background(), false)

	suite.Equal(domain.TierLive, snap.Tier)
	suite.True(snap.Warm())
}

func (suite *RateResolverServiceTestSuite) TestFetchHistorical_WalksBackToBusinessDay() {
	target := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC) // a Sunday
	pair := &domain.RatePair{USD: 30.10, EUR: 32.90}
	feedMiss := errors.New("404")

	// Sunday and Saturday miss, Friday hits.
	suite.mockSource.On("FetchDaily", mock.Anything, target).Return(nil, feedMiss).Once()
	suite.mockSource.On("FetchDaily", mock.Anything, target.AddDate(0, 0, -1)).Return(nil, feedMiss).Once()
	suite.mockSource.On("FetchDaily", mock.Anything, target.AddDate(0, 0, -2)).Return(pair, nil).Once()

	got := suite.service.FetchHistorical(context.Background(), target)

	suite.Require().NotNil(got)
	suite.Equal(30.10, got.USD)
	suite.Equal(32.90, got.EUR)
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateResolverServiceTestSuite) TestFetchHistorical_ExhaustionReturnsNil() {
	target := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
	feedMiss := errors.New("404")

	suite.mockSource.On("FetchDaily", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, feedMiss).Times(10)

	got := suite.service.FetchHistorical(context.Background(), target)

	suite.Nil(got)
	suite.mockSource.AssertNumberOfCalls(suite.T(), "FetchDaily", 10)
}

func (suite *RateResolverServiceTestSuite) TestFetchHistorical_ReturnsRawSellingPrices() {
	target := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	pair := &domain.RatePair{USD: 31.25, EUR: 33.75}

	suite.mockSource.On("FetchDaily", mock.Anything, target).Return(pair, nil).Once()

	got := suite.service.FetchHistorical(context.Background(), target)

	suite.Require().NotNil(got)
	// Historical prices stay as published, unlike the inverted snapshot.
	suite.Equal(31.25, got.USD)
}

func TestRateResolverService(t *testing.T) {
	suite.Run(t, new(RateResolverServiceTestSuite))
}
