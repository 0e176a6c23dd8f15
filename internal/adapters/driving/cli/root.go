package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/custodia-labs/bestpet/internal/logger"
)

// Build information, set by SetVersion.
var version = "dev"

// Flag and environment keys. Environment variables use the BESTPET_ prefix,
// e.g. BESTPET_CONFIG_DIR.
const (
	keyVerbose   = "verbose"
	keyConfigDir = "config-dir"
	keyCatalog   = "catalog"
)

var rootCmd = &cobra.Command{
	Use:   "bestpet",
	Short: "Find the cheapest pet shop for a grooming day",
	Long: `bestpet compares the bath prices of the pet shops in a catalog and
picks the cheapest one for a given date and number of dogs. Ties on price
go to the closest shop.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolP(keyVerbose, "v", false, "print pricing details to stderr")
	flags.String(keyConfigDir, "", "configuration directory (default ~/.bestpet)")
	flags.String(keyCatalog, "", "shop catalog TOML file (overrides settings)")

	viper.SetEnvPrefix("BESTPET")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, key := range []string{keyVerbose, keyConfigDir, keyCatalog} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(viper.GetBool(keyVerbose))

	if bootstrap == nil || servicesConfigured() {
		return nil
	}
	services, err := bootstrap(Options{
		ConfigDir:   viper.GetString(keyConfigDir),
		CatalogPath: viper.GetString(keyCatalog),
	})
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command against the process streams.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	return rootCmd.Execute()
}
