package cli

import (
	"context"

	"github.com/custodia-labs/bestpet/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bestpet/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bestpet/internal/core/domain"
	"github.com/custodia-labs/bestpet/internal/core/services"
)

// newTestServices builds services over the bundled catalog and an
// in-memory config store.
func newTestServices() Services {
	store, err := memory.LoadShopStore(context.Background(), file.NewCatalogFile(""))
	if err != nil {
		panic(err)
	}
	return Services{
		Quote:    services.NewShopCatalogManager(store, domain.DefaultServiceMapping()),
		Shops:    services.NewShopService(store),
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	}
}

// setupTestServices installs newTestServices.
// The returned function restores the previous services.
func setupTestServices() func() {
	oldQuote, oldShops, oldSettings := quoteService, shopService, settingsService

	SetServices(newTestServices())

	return func() {
		quoteService, shopService, settingsService = oldQuote, oldShops, oldSettings
	}
}

// setupServicesWithStore wires services over the given shops.
func setupServicesWithStore(shops ...*domain.Shop) func() {
	cleanup := setupTestServices()
	store := memory.NewShopStore(shops...)
	quoteService = services.NewShopCatalogManager(store, nil)
	shopService = services.NewShopService(store)
	return cleanup
}

func resetQuoteFlags() {
	quoteAll = false
	quoteJSON = false
}
