package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

func modalWidth(width int) int {
	return max(40, min(width-4, 72))
}

func modalInnerWidth(width int) int {
	w := modalWidth(width) - 6 // 2 border + 4 padding
	if w < 10 {
		return 10
	}
	return w
}

func contentWidth(width int) int {
	w := min(width-4, 96)
	if w < 20 {
		return max(width, 1)
	}
	return w
}
