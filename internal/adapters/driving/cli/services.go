package cli

import (
	"github.com/custodia-labs/bestpet/internal/core/ports/driving"
)

// Services used by the commands.
var (
	quoteService    driving.QuoteService
	shopService     driving.ShopService
	settingsService driving.SettingsService
)

// Services groups the driving ports the commands need.
type Services struct {
	Quote    driving.QuoteService
	Shops    driving.ShopService
	Settings driving.SettingsService
}

// Options carries the global flag values needed to build Services.
type Options struct {
	// ConfigDir overrides the settings directory. Empty uses the default.
	ConfigDir string

	// CatalogPath overrides the catalog stored in settings.
	CatalogPath string
}

// Bootstrap builds the services once the global flags are parsed.
type Bootstrap func(opts Options) (Services, error)

var bootstrap Bootstrap

// SetBootstrap registers the function that wires services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs the services used by the commands.
func SetServices(s Services) {
	quoteService = s.Quote
	shopService = s.Shops
	settingsService = s.Settings
}

func servicesConfigured() bool {
	return quoteService != nil || shopService != nil || settingsService != nil
}
