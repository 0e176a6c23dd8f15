package services

import (
	"fmt"

	"github.com/custodia-labs/bestpet/internal/core/domain"
	"github.com/custodia-labs/bestpet/internal/core/ports/driven"
	"github.com/custodia-labs/bestpet/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCatalogPath    = "catalog.path"
	keyServicesPrefix = "services"
)

func serviceKey(service domain.ServiceName) string {
	return keyServicesPrefix + "." + service.String()
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid service ids fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		CatalogPath: s.configStore.GetString(keyCatalogPath),
		Services:    defaults.Services.Clone(),
	}

	for _, name := range s.configStore.Keys(keyServicesPrefix) {
		service := domain.ServiceName(name)
		if !service.IsValid() {
			continue
		}
		if id := s.configStore.GetInt(serviceKey(service)); id > 0 {
			settings.Services[service] = id
		}
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.SetCatalogPath(settings.CatalogPath); err != nil {
		return err
	}
	for _, service := range domain.ServiceNames() {
		id, ok := settings.Services[service]
		if !ok {
			continue
		}
		if err := s.SetServiceProduct(service, id); err != nil {
			return err
		}
	}
	return nil
}

// SetCatalogPath selects the catalog file. Empty restores the bundled catalog.
func (s *SettingsService) SetCatalogPath(path string) error {
	if err := s.configStore.Set(keyCatalogPath, path); err != nil {
		return fmt.Errorf("save catalog path: %w", err)
	}
	return nil
}

// SetServiceProduct maps a grooming service to a catalog product id.
func (s *SettingsService) SetServiceProduct(service domain.ServiceName, productID int) error {
	if !service.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnknownService, service)
	}
	if productID <= 0 {
		return fmt.Errorf("%w: product id must be positive, got %d", domain.ErrInvalidInput, productID)
	}
	if err := s.configStore.Set(serviceKey(service), productID); err != nil {
		return fmt.Errorf("save service %s: %w", service, err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns where settings are stored.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}
