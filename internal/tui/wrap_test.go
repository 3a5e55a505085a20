package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var plain = lipgloss.NewStyle()

func TestWrapTextBreaksOnSpaces(t *testing.T) {
	out := wrapText("one two three four", 9, plain)
	want := "one two\nthree\nfour"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestWrapTextKeepsNewlines(t *testing.T) {
	out := wrapText("ab\ncd", 10, plain)
	if out != "ab\ncd" {
		t.Fatalf("expected newline kept, got %q", out)
	}
}

func TestWrapTextHardBreaksLongWord(t *testing.T) {
	out := wrapText("abcdefgh", 3, plain)
	if out != "abc\ndef\ngh" {
		t.Fatalf("unexpected hard break %q", out)
	}
}

func TestWrapTextWideRunes(t *testing.T) {
	out := wrapText("日本語 です", 6, plain)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 || lines[0] != "日本語" {
		t.Fatalf("expected display-width wrap, got %q", out)
	}
}

func TestWrapTextNoWidth(t *testing.T) {
	if out := wrapText("a b c", 0, plain); out != "a b c" {
		t.Fatalf("expected unwrapped text, got %q", out)
	}
}

func TestFindTerms(t *testing.T) {
	text := []rune("Built with React, and Go.")
	ranges := findTerms(text, []string{"react", "go"})
	if len(ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %v", ranges)
	}
	if string(text[ranges[0].start:ranges[0].end]) != "React," {
		t.Fatalf("unexpected first range %q", string(text[ranges[0].start:ranges[0].end]))
	}
}

func TestFindWords(t *testing.T) {
	words := findWords([]rune("  one  two "))
	if len(words) != 2 || words[0] != (wordRange{2, 5}) || words[1] != (wordRange{7, 10}) {
		t.Fatalf("unexpected words %v", words)
	}
}
