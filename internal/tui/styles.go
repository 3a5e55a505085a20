package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/folio/internal/hero"
	"github.com/verte-zerg/folio/internal/model"
)

type palette struct {
	fg     lipgloss.Color
	muted  lipgloss.Color
	accent lipgloss.Color
	border lipgloss.Color
	err    lipgloss.Color
}

var (
	darkPalette = palette{
		fg:     lipgloss.Color("#F0F0F0"),
		muted:  lipgloss.Color("#8C8C8C"),
		accent: lipgloss.Color("#8FBF6A"),
		border: lipgloss.Color("#4A4A4A"),
		err:    lipgloss.Color("#FF4D4F"),
	}
	lightPalette = palette{
		fg:     lipgloss.Color("#1F2A1C"),
		muted:  lipgloss.Color("#6E6E6E"),
		accent: lipgloss.Color("#3F7A2A"),
		border: lipgloss.Color("#B8B8B8"),
		err:    lipgloss.Color("#C62828"),
	}
)

type styles struct {
	text      lipgloss.Style
	muted     lipgloss.Style
	title     lipgloss.Style
	accent    lipgloss.Style
	errText   lipgloss.Style
	navItem   lipgloss.Style
	navActive lipgloss.Style
	navBar    lipgloss.Style
	card      lipgloss.Style
	tag       lipgloss.Style
	modal     lipgloss.Style
	hero      hero.Styles
	gradient  [2]string
}

func newStyles(theme string) styles {
	p := darkPalette
	if theme == model.ThemeLight {
		p = lightPalette
	}
	return styles{
		text:      lipgloss.NewStyle().Foreground(p.fg),
		muted:     lipgloss.NewStyle().Foreground(p.muted),
		title:     lipgloss.NewStyle().Foreground(p.fg).Bold(true),
		accent:    lipgloss.NewStyle().Foreground(p.accent),
		errText:   lipgloss.NewStyle().Foreground(p.err),
		navItem:   lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		navActive: lipgloss.NewStyle().Foreground(p.accent).Bold(true).Underline(true).Padding(0, 1),
		navBar:    lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(p.border),
		card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.border),
		tag: lipgloss.NewStyle().Foreground(p.accent),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.accent).
			Padding(1, 2),
		hero:     hero.DefaultStyles(theme != model.ThemeLight),
		gradient: [2]string{string(p.border), string(p.accent)},
	}
}
