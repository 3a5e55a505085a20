package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/folio/internal/content"
)

// Render draws the whole portfolio without animation: the greeting is shown
// fully typed and every project is listed.
func Render(c *content.Content, lang, theme string, width int) string {
	st := newStyles(theme)
	strs := c.Lang(lang)
	greeting := st.hero.Text.Render(strs.Hero.Greeting)
	if strs.Hero.Followup != "" {
		greeting = lipgloss.JoinVertical(lipgloss.Left, greeting, "", st.hero.Text.Render(strs.Hero.Followup))
	}
	p := buildPage(pageInput{
		width:   width,
		hero:    lipgloss.JoinVertical(lipgloss.Left, "", greeting, ""),
		strings: strs,
		content: c,
		showAll: true,
		styles:  st,
	})
	return p.body
}
