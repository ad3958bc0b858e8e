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

type HistoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockHistoryRepository
	service  portssvc.HistorySvcFacade
}

func (suite *HistoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockHistoryRepository)
	suite.service = services.NewHistoryService(suite.mockRepo, testLogger())
}

func (suite *HistoryServiceTestSuite) TestRecentHistory_DefaultLimit() {
	suite.mockRepo.On("RecentHistory", mock.Anything, 100).
		Return([]domain.HistoryRecord{}, nil).Once()

	_, err := suite.service.RecentHistory(context.Background(), 0)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestHistoryByDateRange_InclusiveEnd() {
	suite.mockRepo.On("HistoryByDateRange", mock.Anything,
		mock.MatchedBy(func(from time.Time) bool {
			return from.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		}),
		mock.MatchedBy(func(to time.Time) bool {
			// The end bound covers the whole final day.
			return to.After(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC))
		}),
	).Return([]domain.HistoryRecord{}, nil).Once()

	_, err := suite.service.HistoryByDateRange(context.Background(), "01.01.2024", "31.01.2024")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestHistoryByDateRange_BadDatesRejected() {
	_, err := suite.service.HistoryByDateRange(context.Background(), "32.01.2024", "31.01.2024")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.HistoryByDateRange(context.Background(), "01.01.2024", "nonsense")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.HistoryByDateRange(context.Background(), "02.01.2024", "01.01.2024")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "HistoryByDateRange")
}

func (suite *HistoryServiceTestSuite) TestPurgeHistory() {
	suite.mockRepo.On("PurgeHistoryOlderThan", mock.Anything, 90).Return(int64(12), nil).Once()

	purged, err := suite.service.PurgeHistory(context.Background(), 90)

	suite.Require().NoError(err)
	suite.Equal(int64(12), purged)
}

func (suite *HistoryServiceTestSuite) TestPurgeHistory_NonPositiveDaysRejected() {
	_, err := suite.service.PurgeHistory(context.Background(), 0)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "PurgeHistoryOlderThan")
}

func TestHistoryService(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}
