package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/bestpet/internal/adapters/driving/tui"
	"github.com/custodia-labs/bestpet/internal/logger"
)

// newProgram builds the bubbletea program; tests replace it.
var newProgram = func(model tea.Model, cmd *cobra.Command) interface{ Run() (tea.Model, error) } {
	return tea.NewProgram(model,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive quote form",
	Long: `Launch an interactive form for pricing baths.

Controls:
  Tab/↓       - Next field
  Shift+Tab/↑ - Previous field
  Enter       - Find the best shop
  Ctrl+R      - Toggle the full ranking
  Ctrl+L      - Clear the form
  Esc         - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if quoteService == nil {
		return errors.New("quote service not configured")
	}

	app, err := tui.NewApp(tui.NewPorts(quoteService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	// Log lines on stderr would tear the alternate screen.
	if logger.IsVerbose() {
		logger.SetVerbose(false)
		defer logger.SetVerbose(true)
	}

	if _, err := newProgram(app, cmd).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
