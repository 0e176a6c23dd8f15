package domain

const unknownDescription = "Unknown"

// AppSettings holds user configuration for bestpet.
type AppSettings struct {
	// CatalogPath is the TOML shop catalog to load.
	// Empty selects the bundled default catalog.
	CatalogPath string

	// Services maps each grooming service to a catalog product id.
	Services ServiceMapping
}

// DefaultAppSettings returns settings for the bundled catalog.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Services: DefaultServiceMapping(),
	}
}

// UsesDefaultCatalog returns true when no catalog file is configured.
func (s AppSettings) UsesDefaultCatalog() bool {
	return s.CatalogPath == ""
}
