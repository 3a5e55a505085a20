// Package appstate holds the application-wide UI context: language, theme and
// the focus flags that decide whether the advance key is swallowed.
package appstate

import (
	"context"
	"log/slog"

	"github.com/verte-zerg/folio/internal/model"
)

// DefaultLang is used when no language preference has been stored.
const DefaultLang = "sv"

// PrefStore persists preference strings.
type PrefStore interface {
	GetPref(ctx context.Context, key string) (string, bool, error)
	SetPref(ctx context.Context, key, value string) error
}

// State is the shared context object. It is mutated only on the event loop.
type State struct {
	store  PrefStore
	logger *slog.Logger

	defaultTheme string
	lang         string
	theme        string
	modalOpen    bool
	inputFocused bool
}

// New reads the stored preferences once. A nil store keeps everything in
// memory. defaultTheme applies when no theme has been stored.
func New(ctx context.Context, store PrefStore, defaultLang, defaultTheme string, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if defaultLang == "" {
		defaultLang = DefaultLang
	}
	if !validTheme(defaultTheme) {
		defaultTheme = model.ThemeDark
	}
	s := &State{
		store:        store,
		logger:       logger,
		defaultTheme: defaultTheme,
		lang:         defaultLang,
		theme:        defaultTheme,
	}
	if store == nil {
		return s
	}
	if v, ok := s.read(ctx, model.PrefLang); ok && v != "" {
		s.lang = v
	}
	if v, ok := s.read(ctx, model.PrefTheme); ok && validTheme(v) {
		s.theme = v
	}
	return s
}

func (s *State) read(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.store.GetPref(ctx, key)
	if err != nil {
		s.logger.Warn("failed to read preference", "key", key, "err", err)
		return "", false
	}
	return v, ok
}

func (s *State) write(ctx context.Context, key, value string) {
	if s.store == nil {
		return
	}
	if err := s.store.SetPref(ctx, key, value); err != nil {
		s.logger.Warn("failed to write preference", "key", key, "err", err)
	}
}

// Lang returns the active language code.
func (s *State) Lang() string {
	return s.lang
}

// SetLang changes the language and persists it. It reports whether the value
// changed.
func (s *State) SetLang(ctx context.Context, lang string) bool {
	if lang == "" || lang == s.lang {
		return false
	}
	s.lang = lang
	s.write(ctx, model.PrefLang, lang)
	return true
}

// Theme returns the active theme, model.ThemeDark or model.ThemeLight.
func (s *State) Theme() string {
	return s.theme
}

// SetTheme changes the theme and persists it. Unknown themes are ignored.
func (s *State) SetTheme(ctx context.Context, theme string) bool {
	if !validTheme(theme) || theme == s.theme {
		return false
	}
	s.theme = theme
	s.write(ctx, model.PrefTheme, theme)
	return true
}

// ToggleTheme flips between dark and light.
func (s *State) ToggleTheme(ctx context.Context) string {
	next := model.ThemeDark
	if s.theme == model.ThemeDark {
		next = model.ThemeLight
	}
	s.SetTheme(ctx, next)
	return s.theme
}

// ModalOpen reports whether a modal dialog is showing.
func (s *State) ModalOpen() bool {
	return s.modalOpen
}

// SetModalOpen records modal visibility.
func (s *State) SetModalOpen(open bool) {
	s.modalOpen = open
}

// InputFocused reports whether a text input owns the keyboard.
func (s *State) InputFocused() bool {
	return s.inputFocused
}

// SetInputFocused records input focus.
func (s *State) SetInputFocused(focused bool) {
	s.inputFocused = focused
}

// Close resets the transient flags and the theme default. Stored preferences
// are left alone.
func (s *State) Close() {
	s.modalOpen = false
	s.inputFocused = false
	s.theme = s.defaultTheme
	s.lang = DefaultLang
}

func validTheme(theme string) bool {
	return theme == model.ThemeDark || theme == model.ThemeLight
}
