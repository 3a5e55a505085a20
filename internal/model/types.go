// Package model defines shared data structures.
package model

import "time"

// Preference keys.
const (
	PrefLang  = "lang"
	PrefTheme = "theme"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Section ids in page order.
const (
	SectionHero        = "hero"
	SectionWork        = "work"
	SectionAllProjects = "projects"
	SectionSkills      = "skills"
	SectionAbout       = "about"
	SectionContact     = "contact"
)

// PageSections lists every section id in document order.
var PageSections = []string{
	SectionHero,
	SectionWork,
	SectionAllProjects,
	SectionSkills,
	SectionAbout,
	SectionContact,
}

// Config defines portfolio runtime settings.
type Config struct {
	Lang        string
	Theme       string
	ContentPath string
	LogLevel    string
	Navigation  NavigationConfig
	Typing      TypingConfig
}

// NavigationConfig tunes the section cursor.
type NavigationConfig struct {
	Tolerance     int
	SettleMs      int
	ScrollPadding *int
	ExtraOffset   map[string]int
}

// TypingConfig tunes the hero typing cadence.
type TypingConfig struct {
	FastMs          int
	StandardMs      int
	FastCount       int
	PulseMs         int
	CompleteDelayMs int
}

// Message is a contact form submission.
type Message struct {
	ID        int64
	CreatedAt time.Time
	Name      string
	Email     string
	Body      string
	Lang      string
}
