// Package styles provides the colour theme shared by the CLI banners and the TUI.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates a found shop.
	Success lipgloss.Color

	// Error indicates a failed quote.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Label style for form field labels.
	Label lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Success style for the best shop banner.
	Success lipgloss.Style

	// Error style for the error banner.
	Error lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme using the default renderer.
func NewStyles(theme *Theme) *Styles {
	return newStyles(lipgloss.DefaultRenderer(), theme)
}

// ForWriter creates default-theme styles rendered for w.
// Colour is dropped when w is not a terminal.
func ForWriter(w io.Writer) *Styles {
	return newStyles(lipgloss.NewRenderer(w), DefaultTheme())
}

func newStyles(r *lipgloss.Renderer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Label: r.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Success: r.NewStyle().
			Bold(true).
			Foreground(theme.Success),

		Error: r.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		InputField: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Help: r.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
