package driving

import "github.com/custodia-labs/bestpet/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetCatalogPath selects the catalog file. Empty restores the bundled catalog.
	SetCatalogPath(path string) error

	// SetServiceProduct maps a grooming service to a catalog product id.
	SetServiceProduct(service domain.ServiceName, productID int) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ConfigPath returns where settings are stored.
	ConfigPath() string
}
