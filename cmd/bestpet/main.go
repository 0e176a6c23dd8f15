// Command bestpet finds the cheapest pet shop for a grooming day.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/bestpet/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bestpet/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bestpet/internal/adapters/driving/cli"
	"github.com/custodia-labs/bestpet/internal/core/services"
	"github.com/custodia-labs/bestpet/internal/logger"
)

// Set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(buildServices)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices wires the driven adapters into the core services.
// The catalog is loaded on first use, so settings commands work even
// when the configured catalog is broken.
func buildServices(opts cli.Options) (cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return cli.Services{}, fmt.Errorf("open config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return cli.Services{}, fmt.Errorf("read settings: %w", err)
	}

	catalogPath := settings.CatalogPath
	if opts.CatalogPath != "" {
		catalogPath = opts.CatalogPath
	}
	source := file.NewCatalogFile(catalogPath)
	logger.Debug("config: %s", configStore.Path())
	logger.Info("catalog: %s", source.Name())

	store := memory.NewLazyShopStore(source)
	return cli.Services{
		Quote:    services.NewShopCatalogManager(store, settings.Services),
		Shops:    services.NewShopService(store),
		Settings: settingsService,
	}, nil
}
