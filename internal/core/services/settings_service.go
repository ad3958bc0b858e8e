package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/birikimsoft/defter_backend/internal/apperrors"
	portsrepo "github.com/birikimsoft/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
)

const (
	// corporateTaxKey holds the default corporate tax percentage applied to
	// years without an explicit per-year row.
	corporateTaxKey = "kurumlar_vergisi_yuzdesi"

	defaultCorporateTaxPct = 22.0
)

type settingsService struct {
	settingsRepo portsrepo.SettingsRepositoryFacade
	logger       *slog.Logger
}

// NewSettingsService creates a SettingsSvcFacade.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, logger *slog.Logger) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo, logger: logger}
}

func (s *settingsService) AllSettings(ctx context.Context) (map[string]string, error) {
	return s.settingsRepo.GetAllSettings(ctx)
}

func (s *settingsService) SaveSetting(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: setting key must not be empty", apperrors.ErrValidation)
	}
	return s.settingsRepo.SaveSetting(ctx, key, value)
}

func (s *settingsService) CorporateTaxDefault(ctx context.Context) float64 {
	value, err := s.settingsRepo.GetSetting(ctx, corporateTaxKey)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("failed to load corporate tax setting", slog.String("error", err.Error()))
		}
		return defaultCorporateTaxPct
	}
	pct, err := strconv.ParseFloat(value, 64)
	if err != nil {
		s.logger.Warn("corporate tax setting is not numeric", slog.String("value", value))
		return defaultCorporateTaxPct
	}
	return pct
}
