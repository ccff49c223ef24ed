// Package styles provides lipgloss-based rendering for the tilepane CLI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tilepane/internal/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.ColorPalette)
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style

	// Pane tree styles
	Container  lipgloss.Style
	Leaf       lipgloss.Style
	PaneID     lipgloss.Style
	Enumerator lipgloss.Style

	// Event trace styles
	EventKind lipgloss.Style
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() config.ColorPalette {
	return config.DefaultConfig().Appearance.Palette
}

// NewTheme creates a Theme from config, falling back to the default palette.
func NewTheme(cfg *config.Config) *Theme {
	p := DefaultPalette()
	if cfg != nil && cfg.Appearance.Palette.Text != "" {
		p = cfg.Appearance.Palette
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette creates a Theme from a ColorPalette.
func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Text:    lipgloss.Color(p.Text),
		Muted:   lipgloss.Color(p.Muted),
		Accent:  lipgloss.Color(p.Accent),
		Error:   lipgloss.Color(p.Error),
		Success: lipgloss.Color(p.Success),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.Container = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.Leaf = lipgloss.NewStyle().
		Foreground(t.Text)

	t.PaneID = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.Enumerator = lipgloss.NewStyle().
		Foreground(t.Muted).
		PaddingRight(1)

	t.EventKind = lipgloss.NewStyle().
		Foreground(t.Accent).
		Width(8)
}
