package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/folio/internal/appstate"
	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/hero"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/sections"
	"github.com/verte-zerg/folio/internal/timer"
)

type memMessages struct {
	saved []model.Message
}

func (s *memMessages) InsertMessage(_ context.Context, msg model.Message) (int64, error) {
	s.saved = append(s.saved, msg)
	return int64(len(s.saved)), nil
}

type harness struct {
	t        *testing.T
	clock    *timer.FakeClock
	state    *appstate.State
	messages *memMessages
	m        *Model
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	c, err := content.Default()
	if err != nil {
		t.Fatalf("default content: %v", err)
	}
	clock := timer.NewFakeClock()
	state := appstate.New(context.Background(), nil, "en", model.ThemeDark, nil)
	messages := &memMessages{}
	m := NewModel(Options{
		Config:   DefaultConfig(),
		Content:  c,
		State:    state,
		Messages: messages,
		Clock:    clock,
		Now: func() time.Time {
			return time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
		},
	})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	t.Cleanup(m.Close)
	return &harness{t: t, clock: clock, state: state, messages: messages, m: m}
}

func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d, func(msg tea.Msg) {
		h.m.Update(msg)
	})
}

func (h *harness) key(k tea.KeyMsg) tea.Cmd {
	_, cmd := h.m.Update(k)
	return cmd
}

func (h *harness) runes(s string) {
	for _, r := range s {
		h.key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestInitialSectionIsHero(t *testing.T) {
	h := newHarness(t)
	if h.m.Section() != model.SectionHero {
		t.Fatalf("expected hero, got %q", h.m.Section())
	}
	if _, ok := h.m.page.Offset(model.SectionAllProjects); ok {
		t.Fatalf("all projects should not be rendered by default")
	}
}

func TestEnterAdvancesToWork(t *testing.T) {
	h := newHarness(t)
	h.key(enter)
	if h.m.nav.Index() != 1 || !h.m.nav.Suppressed() {
		t.Fatalf("expected suppressed advance to index 1, got %d", h.m.nav.Index())
	}
	if h.m.hero.Sequencer().ActiveSymbol() != "enter" {
		t.Fatalf("expected hero to pulse enter, got %q", h.m.hero.Sequencer().ActiveSymbol())
	}

	h.advance(time.Second)
	top, _ := h.m.page.Offset(model.SectionWork)
	if h.m.Offset() != top-navHeight {
		t.Fatalf("expected offset %d, got %d", top-navHeight, h.m.Offset())
	}
	if h.m.Section() != model.SectionWork || h.m.nav.Suppressed() {
		t.Fatalf("expected settled on work, got %q", h.m.Section())
	}
}

func TestEnterReachesLastSection(t *testing.T) {
	h := newHarness(t)
	want := []string{model.SectionWork, model.SectionSkills, model.SectionAbout, model.SectionContact}
	for _, id := range want {
		h.key(enter)
		h.advance(time.Second)
		if h.m.Section() != id {
			t.Fatalf("expected %q, got %q at offset %d", id, h.m.Section(), h.m.Offset())
		}
	}
	top, _ := h.m.page.Offset(model.SectionContact)
	if h.m.Offset() != top-navHeight {
		t.Fatalf("expected contact under the nav bar at %d, got %d", top-navHeight, h.m.Offset())
	}

	h.key(enter)
	if h.m.nav.Suppressed() || h.m.Section() != model.SectionContact {
		t.Fatalf("enter on the last section should do nothing")
	}
}

func TestPageLeavesRoomBelowLastSection(t *testing.T) {
	h := newHarness(t)
	top, _ := h.m.page.Offset(model.SectionContact)
	if got := lineCount(h.m.page.body); got < top+h.m.vp.Height {
		t.Fatalf("expected at least %d rows, got %d", top+h.m.vp.Height, got)
	}
}

func TestUserScrollInterruptsAdvance(t *testing.T) {
	h := newHarness(t)
	h.key(enter)
	h.advance(50 * time.Millisecond)
	h.key(tea.KeyMsg{Type: tea.KeyUp})
	h.key(tea.KeyMsg{Type: tea.KeyHome})
	h.advance(time.Second)
	if h.m.Offset() != 0 {
		t.Fatalf("expected user scroll to win, offset %d", h.m.Offset())
	}
	if h.m.Section() != model.SectionHero {
		t.Fatalf("settle should restore hero, got %q", h.m.Section())
	}
}

func TestScrollKeysRecompute(t *testing.T) {
	h := newHarness(t)
	top, _ := h.m.page.Offset(model.SectionWork)
	for i := 0; i < top; i++ {
		h.key(tea.KeyMsg{Type: tea.KeyDown})
	}
	if h.m.Section() != model.SectionWork {
		t.Fatalf("expected work after scrolling to %d, got %q", h.m.Offset(), h.m.Section())
	}
}

func TestEnterIgnoredWhileContactFormFocused(t *testing.T) {
	h := newHarness(t)
	h.runes("c")
	if !h.state.InputFocused() || !h.state.ModalOpen() {
		t.Fatalf("expected contact form to take focus")
	}
	h.key(enter)
	if h.m.nav.Index() != 0 {
		t.Fatalf("enter in a form must not advance, index %d", h.m.nav.Index())
	}
	if h.m.contact.index != fieldEmail {
		t.Fatalf("expected enter to move to the email field, got %d", h.m.contact.index)
	}
}

func TestContactSubmitStoresMessage(t *testing.T) {
	h := newHarness(t)
	h.runes("c")
	h.runes("Ada")
	h.key(enter)
	h.runes("ada@example.com")
	h.key(enter)
	h.runes("Hello")
	h.key(enter)

	if len(h.messages.saved) != 1 {
		t.Fatalf("expected one saved message, got %d", len(h.messages.saved))
	}
	got := h.messages.saved[0]
	if got.Name != "Ada" || got.Email != "ada@example.com" || got.Body != "Hello" || got.Lang != "en" {
		t.Fatalf("unexpected message %+v", got)
	}
	if h.m.contact != nil || h.state.InputFocused() || h.state.ModalOpen() {
		t.Fatalf("expected form closed")
	}
	if !strings.Contains(h.m.page.body, "Thanks!") {
		t.Fatalf("expected sent notice on the page")
	}
}

func TestContactValidation(t *testing.T) {
	h := newHarness(t)
	h.runes("c")
	h.runes("Ada")
	h.key(enter)
	h.runes("not-an-email")
	h.key(enter)
	h.runes("Hi")
	h.key(enter)
	if len(h.messages.saved) != 0 || h.m.contact == nil || h.m.contact.err == "" {
		t.Fatalf("expected validation error, saved %d", len(h.messages.saved))
	}
	h.key(tea.KeyMsg{Type: tea.KeyEsc})
	if h.m.contact != nil || h.state.InputFocused() {
		t.Fatalf("expected esc to close the form")
	}
}

func TestProjectModalBlocksAdvance(t *testing.T) {
	h := newHarness(t)
	h.runes("2")
	if h.m.project != 1 || !h.state.ModalOpen() {
		t.Fatalf("expected project modal for index 1")
	}
	h.key(enter)
	if h.m.nav.Index() != 0 {
		t.Fatalf("enter with a modal open must not advance")
	}
	if !strings.Contains(h.m.View(), "Network Monitoring Dashboard") {
		t.Fatalf("expected modal view to show the project")
	}
	h.key(tea.KeyMsg{Type: tea.KeyEsc})
	if h.m.project != noModal || h.state.ModalOpen() {
		t.Fatalf("expected modal closed")
	}
	h.runes("9")
	if h.m.project != noModal {
		t.Fatalf("out of range project must not open")
	}
}

func TestToggleAllProjectsSection(t *testing.T) {
	h := newHarness(t)
	skillsBefore, _ := h.m.page.Offset(model.SectionSkills)
	h.runes("a")
	top, ok := h.m.page.Offset(model.SectionAllProjects)
	if !ok {
		t.Fatalf("expected all projects section")
	}
	skillsAfter, _ := h.m.page.Offset(model.SectionSkills)
	if skillsAfter <= skillsBefore || top >= skillsAfter {
		t.Fatalf("unexpected tops: projects %d skills %d -> %d", top, skillsBefore, skillsAfter)
	}
	h.runes("a")
	if _, ok := h.m.page.Offset(model.SectionAllProjects); ok {
		t.Fatalf("expected section removed")
	}
}

func TestAdvanceSkipsHiddenSection(t *testing.T) {
	h := newHarness(t)
	h.key(enter)
	h.advance(time.Second)
	h.key(enter)
	if h.m.nav.Current() != model.SectionSkills {
		t.Fatalf("expected skills after work, got %q", h.m.nav.Current())
	}
}

func TestLanguageToggleRestartsHero(t *testing.T) {
	h := newHarness(t)
	h.advance(3 * time.Second)
	if h.m.hero.Stage() == hero.StageBlink {
		t.Fatalf("expected hero to have progressed")
	}
	h.runes("L")
	if h.state.Lang() != "sv" {
		t.Fatalf("expected sv, got %q", h.state.Lang())
	}
	if h.m.hero.Stage() != hero.StageBlink || h.m.hero.Text().Greeting != "Hej,\nJag heter\nJonathan." {
		t.Fatalf("expected hero restarted with swedish text")
	}
	if !strings.Contains(h.m.View(), "Hem") {
		t.Fatalf("expected swedish nav labels")
	}
}

func TestThemeToggle(t *testing.T) {
	h := newHarness(t)
	h.runes("T")
	if h.state.Theme() != model.ThemeLight {
		t.Fatalf("expected light theme, got %q", h.state.Theme())
	}
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	cmd := h.key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestMouseWheelScrolls(t *testing.T) {
	h := newHarness(t)
	h.m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if h.m.Offset() != wheelStep {
		t.Fatalf("expected offset %d, got %d", wheelStep, h.m.Offset())
	}
}

func TestViewOverlaysNav(t *testing.T) {
	h := newHarness(t)
	lines := strings.Split(h.m.View(), "\n")
	if len(lines) != 40 {
		t.Fatalf("expected 40 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Home") || !strings.Contains(lines[0], "Contact") {
		t.Fatalf("expected nav bar on the first row, got %q", lines[0])
	}
}

func TestNavigationConfigOverrides(t *testing.T) {
	padding := 0
	cfg := navigationConfig(model.NavigationConfig{Tolerance: 2, SettleMs: 300, ScrollPadding: &padding})
	if cfg.Tolerance != 2 || cfg.SettleDelay != 300*time.Millisecond || *cfg.ScrollPadding != 0 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.NavHeight() != navHeight {
		t.Fatalf("unexpected nav height")
	}
	if sections.DefaultConfig().AdvanceKey.Help().Key != "enter" {
		t.Fatalf("expected enter as advance key")
	}
}

func TestTypingCadenceAllowsZeroCompletionDelay(t *testing.T) {
	cfg := DefaultConfig().Typing
	cfg.CompleteDelayMs = 0
	c := typingCadence(cfg)
	if c.CompleteDelay != 0 {
		t.Fatalf("expected no completion delay, got %v", c.CompleteDelay)
	}
	if c.Fast != time.Duration(cfg.FastMs)*time.Millisecond || c.Pulse != time.Duration(cfg.PulseMs)*time.Millisecond {
		t.Fatalf("unexpected cadence %+v", c)
	}
}

func TestRenderStatic(t *testing.T) {
	c, err := content.Default()
	if err != nil {
		t.Fatalf("default content: %v", err)
	}
	out := Render(c, "en", model.ThemeLight, 80)
	for _, want := range []string{"Jonathan.", "Featured Projects", "All Projects", "Skills & Expertise", "About Me", "github.com/jonathanaberg"} {
		if !strings.Contains(out, want) {
			t.Fatalf("static render missing %q", want)
		}
	}
}
