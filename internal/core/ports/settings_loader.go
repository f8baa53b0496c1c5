package ports

import "go.trai.ch/dataloader/internal/core/domain"

// SettingsLoader defines the interface for discovering loader settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load discovers the settings file from cwd upwards and applies environment overrides.
	Load(cwd string) (*domain.Settings, error)

	// ReadVaultSecret returns the vault secret named by the settings.
	// It returns nil when no secret is configured.
	ReadVaultSecret(settings *domain.Settings) ([]byte, error)
}
