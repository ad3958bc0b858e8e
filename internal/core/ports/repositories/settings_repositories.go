package repositories

import "context"

// SettingsRepositoryFacade is the key-value settings store.
type SettingsRepositoryFacade interface {
	// GetSetting returns the value for key. apperrors.ErrNotFound when absent.
	GetSetting(ctx context.Context, key string) (string, error)
	SaveSetting(ctx context.Context, key, value string) error
	GetAllSettings(ctx context.Context) (map[string]string, error)
}
