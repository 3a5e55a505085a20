package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

func buildStyledRunes(text []rune, style lipgloss.Style, highlight []wordRange, highlightStyle lipgloss.Style) []styledRune {
	out := make([]styledRune, 0, len(text))
	for i, r := range text {
		st := style
		if inRanges(highlight, i) {
			st = highlightStyle
		}
		out = append(out, styledRune{
			s:       st.Render(string(r)),
			width:   runewidth.RuneWidth(r),
			isSpace: r == ' ',
		})
	}
	return out
}

type wordRange struct {
	start int
	end   int
}

func findWords(text []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range text {
		if r == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(text)})
	}
	return words
}

// findTerms returns the ranges of every occurrence of the given terms as whole words.
func findTerms(text []rune, terms []string) []wordRange {
	if len(terms) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		set[strings.ToLower(term)] = struct{}{}
	}
	var out []wordRange
	for _, w := range findWords(text) {
		word := strings.ToLower(strings.TrimRight(string(text[w.start:w.end]), ".,!?:;"))
		if _, ok := set[word]; ok {
			out = append(out, w)
		}
	}
	return out
}

func inRanges(ranges []wordRange, i int) bool {
	for _, r := range ranges {
		if i >= r.start && i < r.end {
			return true
		}
	}
	return false
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

// wrapText word-wraps text to width display columns. Existing newlines are kept.
func wrapText(text string, width int, style lipgloss.Style) string {
	return wrapHighlighted(text, width, style, nil, style)
}

// wrapHighlighted wraps text and renders the given terms with highlight.
func wrapHighlighted(text string, width int, style lipgloss.Style, terms []string, highlight lipgloss.Style) string {
	paragraphs := strings.Split(text, "\n")
	out := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		runes := []rune(p)
		out[i] = wrapStyledRunes(buildStyledRunes(runes, style, findTerms(runes, terms), highlight), width)
	}
	return strings.Join(out, "\n")
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
