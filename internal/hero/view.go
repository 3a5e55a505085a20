package hero

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/folio/internal/typing"
)

// Styles colors the hero.
type Styles struct {
	Text      lipgloss.Style
	Selected  lipgloss.Style
	Cursor    lipgloss.Style
	Hint      lipgloss.Style
	Portrait  lipgloss.Style
	Key       lipgloss.Style
	KeyActive lipgloss.Style
}

// DefaultStyles returns the hero palette for a dark or light background.
func DefaultStyles(dark bool) Styles {
	fg, accent, muted, keyBg := lipgloss.Color("252"), lipgloss.Color("114"), lipgloss.Color("244"), lipgloss.Color("236")
	if !dark {
		fg, accent, muted, keyBg = lipgloss.Color("235"), lipgloss.Color("28"), lipgloss.Color("242"), lipgloss.Color("254")
	}
	return Styles{
		Text:      lipgloss.NewStyle().Foreground(fg).Bold(true),
		Selected:  lipgloss.NewStyle().Foreground(keyBg).Background(accent).Bold(true),
		Cursor:    lipgloss.NewStyle().Foreground(accent),
		Hint:      lipgloss.NewStyle().Foreground(muted).Italic(true),
		Portrait:  lipgloss.NewStyle().Foreground(accent),
		Key:       lipgloss.NewStyle().Foreground(muted).Background(keyBg).Padding(0, 1),
		KeyActive: lipgloss.NewStyle().Foreground(keyBg).Background(accent).Bold(true).Padding(0, 1),
	}
}

var keyboardRows = [][]string{
	{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "="},
	{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "[", "]"},
	{"a", "s", "d", "f", "g", "h", "j", "k", "l", "{", "}", "'", "enter"},
	{"z", "x", "c", "v", "b", "n", "m", ",", ".", "/", "?"},
}

const spaceBarWidth = 24

var portrait = []string{
	"  .---.  ",
	" / o o \\ ",
	"|   ^   |",
	" \\ '-' / ",
	"  '---'  ",
}

const cursorGlyph = "▌"

// Keyboard renders the visual keyboard with active highlighted.
func Keyboard(active string, styles Styles) string {
	rows := make([]string, 0, len(keyboardRows)+1)
	for _, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, k := range row {
			style := styles.Key
			if k == active {
				style = styles.KeyActive
			}
			keys = append(keys, style.Render(k))
		}
		rows = append(rows, strings.Join(keys, " "))
	}
	space := styles.Key
	if active == "space" {
		space = styles.KeyActive
	}
	rows = append(rows, space.Width(spaceBarWidth).Align(lipgloss.Center).Render("space"))
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// View renders the hero for the given width.
func (m *Model) View(width int, styles Styles) string {
	text := m.typedLines(styles)

	art := make([]string, 0, len(portrait)+1)
	if m.PortraitVisible() {
		if m.FloatOffset() == 0 {
			art = append(art, "")
		}
		for _, line := range portrait {
			art = append(art, styles.Portrait.Render(line))
		}
		if m.FloatOffset() == 1 {
			art = append(art, "")
		}
	}

	top := text
	if len(art) > 0 {
		top = lipgloss.JoinHorizontal(lipgloss.Top, text, "    ", strings.Join(art, "\n"))
	}

	hint := ""
	if m.HintVisible() && m.text.Hint != "" {
		hint = styles.Hint.Render(m.text.Hint + " ↵")
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		top,
		"",
		hint,
		"",
		Keyboard(m.seq.ActiveSymbol(), styles),
	)
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func (m *Model) typedLines(styles Styles) string {
	cursor := " "
	if m.CursorVisible() {
		cursor = styles.Cursor.Render(cursorGlyph)
	}
	if m.stage == StageBlink {
		return cursor
	}
	lines := m.seq.Lines()
	cursorLine := m.seq.CursorLine()
	selecting := m.seq.Phase() == typing.PhaseSelecting
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case selecting:
			out[i] = styles.Selected.Render(line)
		default:
			out[i] = styles.Text.Render(line)
		}
		if i == cursorLine {
			out[i] += cursor
		}
	}
	return strings.Join(out, "\n")
}
