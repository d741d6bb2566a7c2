// Package theme centralizes Lip Gloss styles for the planner UI. Styles
// are rebuilt whenever the user flips the light/dark flag.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/melon/pkg/planner"
)

// palette holds the watermelon color tokens for one mode.
type palette struct {
	header lipgloss.Color // rind pink
	accent lipgloss.Color // flesh green
	soft   lipgloss.Color // soft green
	text   lipgloss.Color
	muted  lipgloss.Color
}

var (
	lightPalette = palette{
		header: lipgloss.Color("#E65C67"),
		accent: lipgloss.Color("#4B7F52"),
		soft:   lipgloss.Color("#B5D6B2"),
		text:   lipgloss.Color("#1B261B"),
		muted:  lipgloss.Color("#5C6B5C"),
	}
	darkPalette = palette{
		header: lipgloss.Color("#FECDD3"),
		accent: lipgloss.Color("#B5D6B2"),
		soft:   lipgloss.Color("#2D3D2D"),
		text:   lipgloss.Color("#F4F9F4"),
		muted:  lipgloss.Color("#8FA58F"),
	}
)

// Styles groups every style the planner tabs draw with.
type Styles struct {
	Mode planner.Theme

	Title       lipgloss.Style
	Tagline     lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Item     lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Clock    lipgloss.Style
	Badge    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style

	Panel lipgloss.Style
	Card  lipgloss.Style
	Today lipgloss.Style
	Stat  lipgloss.Style
	Help  lipgloss.Style
}

// New builds the style set for the given mode.
func New(mode planner.Theme) Styles {
	p := lightPalette
	if mode == planner.ThemeDark {
		p = darkPalette
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.soft).
		Padding(0, 1)

	return Styles{
		Mode: mode,

		Title:       lipgloss.NewStyle().Bold(true).Foreground(p.header),
		Tagline:     lipgloss.NewStyle().Italic(true).Foreground(p.muted),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(p.header).Underline(true).Padding(0, 2),
		TabInactive: lipgloss.NewStyle().Foreground(p.muted).Padding(0, 2),

		Item:     lipgloss.NewStyle().Foreground(p.text).PaddingLeft(2),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.header).PaddingLeft(1).SetString("▎"),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true).Foreground(p.muted).PaddingLeft(2),
		Clock:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Badge:    lipgloss.NewStyle().Faint(true).Foreground(p.muted),
		Muted:    lipgloss.NewStyle().Foreground(p.muted),
		Accent:   lipgloss.NewStyle().Foreground(p.accent),

		Panel: panel,
		Card:  panel.BorderForeground(p.header),
		Today: lipgloss.NewStyle().Bold(true).Foreground(p.header),
		Stat:  lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Help:  lipgloss.NewStyle().Faint(true).Foreground(p.muted),
	}
}

// Swatch renders a color token as a small colored block.
func Swatch(token string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(token)).Render("●")
}
