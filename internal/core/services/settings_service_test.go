package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
	"github.com/birikimsoft/defter_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsRepository) SaveSetting(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetAllSettings(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

// --- Test Suite ---
type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettingsRepository
	service  portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockRepo, testLogger())
}

// --- Test Cases ---

func (suite *SettingsServiceTestSuite) TestCorporateTaxDefault_Configured() {
	suite.mockRepo.On("GetSetting", mock.Anything, "kurumlar_vergisi_yuzdesi").
		Return("25.5", nil).Once()

	pct := suite.service.CorporateTaxDefault(context.Background())

	suite.Equal(25.5, pct)
}

func (suite *SettingsServiceTestSuite) TestCorporateTaxDefault_MissingKeyFallsBack() {
	suite.mockRepo.On("GetSetting", mock.Anything, "kurumlar_vergisi_yuzdesi").
		Return("", apperrors.ErrNotFound).Once()

	pct := suite.service.CorporateTaxDefault(context.Background())

	suite.Equal(22.0, pct)
}

func (suite *SettingsServiceTestSuite) TestCorporateTaxDefault_GarbageValueFallsBack() {
	suite.mockRepo.On("GetSetting", mock.Anything, "kurumlar_vergisi_yuzdesi").
		Return("yirmi iki", nil).Once()

	pct := suite.service.CorporateTaxDefault(context.Background())

	suite.Equal(22.0, pct)
}

func (suite *SettingsServiceTestSuite) TestCorporateTaxDefault_RepositoryErrorFallsBack() {
	suite.mockRepo.On("GetSetting", mock.Anything, "kurumlar_vergisi_yuzdesi").
		Return("", errors.New("connection reset")).Once()

	pct := suite.service.CorporateTaxDefault(context.Background())

	suite.Equal(22.0, pct)
}

func (suite *SettingsServiceTestSuite) TestSaveSetting_EmptyKeyRejected() {
	err := suite.service.SaveSetting(context.Background(), "", "value")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSetting")
}

func (suite *SettingsServiceTestSuite) TestSaveSetting_Delegates() {
	suite.mockRepo.On("SaveSetting", mock.Anything, "tema", "koyu").Return(nil).Once()

	err := suite.service.SaveSetting(context.Background(), "tema", "koyu")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestAllSettings() {
	want := map[string]string{"kurumlar_vergisi_yuzdesi": "22"}
	suite.mockRepo.On("GetAllSettings", mock.Anything).Return(want, nil).Once()

	got, err := suite.service.AllSettings(context.Background())

	suite.Require().NoError(err)
	suite.Equal(want, got)
}

func TestSettingsService(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
