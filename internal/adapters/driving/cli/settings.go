package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bestpet/internal/core/domain"
	"github.com/custodia-labs/bestpet/internal/logger"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the shop catalog and the product ids used for each service.

Use subcommands to change a specific setting.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsCatalogCmd = &cobra.Command{
	Use:   "catalog [path]",
	Short: "Set the shop catalog file",
	Long: `Set the TOML file the shops are loaded from.
Run without a path to go back to the bundled catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsCatalog,
}

var settingsServiceCmd = &cobra.Command{
	Use:   "service <name> <product-id>",
	Short: "Map a service to a catalog product",
	Long: `Set the catalog product id sold for a grooming service.

Available services:
  small-dog-bath - Bath for a small dog
  big-dog-bath   - Bath for a big dog`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsService,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Long: `Point back to the bundled catalog and restore the default product
id for every service.`,
	Args: cobra.NoArgs,
	RunE: runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsCatalogCmd)
	settingsCmd.AddCommand(settingsServiceCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Catalog]")
	if settings.UsesDefaultCatalog() {
		cmd.Println("  Path: (bundled)")
	} else {
		cmd.Printf("  Path: %s\n", settings.CatalogPath)
	}
	cmd.Println()

	cmd.Println("[Services]")
	for _, name := range domain.ServiceNames() {
		cmd.Printf("  %s: product %d\n", name, settings.Services[name])
	}
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsCatalog(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	if err := settingsService.SetCatalogPath(path); err != nil {
		return fmt.Errorf("failed to set catalog: %w", err)
	}

	if path == "" {
		cmd.Println("Catalog reset to the bundled shops.")
	} else {
		cmd.Printf("Catalog set to: %s\n", path)
	}
	return nil
}

func runSettingsService(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	service := domain.ServiceName(args[0])
	productID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[1])
	}

	if err := settingsService.SetServiceProduct(service, productID); err != nil {
		return fmt.Errorf("failed to set service: %w", err)
	}

	cmd.Printf("Service %s set to product %d\n", service, productID)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	logger.Info("settings reset in %s", settingsService.ConfigPath())

	cmd.Println("Settings restored to defaults.")
	return nil
}
