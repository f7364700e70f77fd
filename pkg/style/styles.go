// Package style maps semantic text styles to terminal rendering via lipgloss.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/clide/pkg/text"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	TextColor = lipgloss.AdaptiveColor{
		Light: "#495057",
		Dark:  "#E9ECEF",
	}

	InfoColor = lipgloss.AdaptiveColor{
		Light: "#17A2B8",
		Dark:  "#4DD0E1",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#FFC107",
		Dark:  "#FFD54F",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545",
		Dark:  "#FF6B7D",
	}
)

// AlertColor is the high-alert foreground used for critical log records.
// Exported as a plain color value so producers can build a custom style
// from it without importing lipgloss.
const AlertColor = "#FF2E63"

var (
	PlainStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// For returns the lipgloss style for a semantic text style. Custom styles are
// built on demand from the carried color value.
func For(s text.Style) lipgloss.Style {
	switch s.Kind {
	case text.KindInfo:
		return InfoStyle
	case text.KindWarning:
		return WarningStyle
	case text.KindError:
		return ErrorStyle
	case text.KindCustom:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Bold(true)
	default:
		return PlainStyle
	}
}

// Theme overrides the default foreground colors. Empty fields keep the
// built-in adaptive color.
type Theme struct {
	Text    string
	Info    string
	Warning string
	Error   string
}

// ApplyTheme replaces the package styles with themed variants. Meant to be
// called once during startup, before any rendering.
func ApplyTheme(t Theme) {
	if t.Text != "" {
		PlainStyle = PlainStyle.Foreground(lipgloss.Color(t.Text))
	}
	if t.Info != "" {
		InfoStyle = InfoStyle.Foreground(lipgloss.Color(t.Info))
	}
	if t.Warning != "" {
		WarningStyle = WarningStyle.Foreground(lipgloss.Color(t.Warning))
	}
	if t.Error != "" {
		ErrorStyle = ErrorStyle.Foreground(lipgloss.Color(t.Error))
	}
}
