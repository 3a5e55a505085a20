// Package tui provides the Bubble Tea portfolio interface.
package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/folio/internal/appstate"
	"github.com/verte-zerg/folio/internal/bus"
	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/hero"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/scroll"
	"github.com/verte-zerg/folio/internal/sections"
	"github.com/verte-zerg/folio/internal/timer"
	"github.com/verte-zerg/folio/internal/typing"
)

const (
	navHeight = 1
	wheelStep = 3
	noModal   = -1
)

// MessageStore persists contact form submissions.
type MessageStore interface {
	InsertMessage(ctx context.Context, msg model.Message) (int64, error)
}

// Options wires a Model.
type Options struct {
	Config   model.Config
	Content  *content.Content
	State    *appstate.State
	Messages MessageStore
	Logger   *slog.Logger
	// Clock drives every animation. Nil means real time.
	Clock timer.Clock
	Now   func() time.Time
}

// Model implements the Bubble Tea portfolio UI.
type Model struct {
	content  *content.Content
	state    *appstate.State
	messages MessageStore
	logger   *slog.Logger
	now      func() time.Time

	events *bus.Bus
	vp     viewport.Model
	smooth *scroll.Smooth
	nav    *sections.Controller
	hero   *hero.Model
	page   *page

	keys     keyMap
	help     help.Model
	progress progress.Model
	styles   styles

	width  int
	height int

	showAll bool
	project int
	contact *contactForm
	notice  string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() model.Config {
	c := typing.DefaultCadence()
	return model.Config{
		Lang:     appstate.DefaultLang,
		Theme:    model.ThemeDark,
		LogLevel: "info",
		Navigation: model.NavigationConfig{
			Tolerance: sections.DefaultTolerance,
			SettleMs:  int(sections.DefaultSettleDelay / time.Millisecond),
		},
		Typing: model.TypingConfig{
			FastMs:          int(c.Fast / time.Millisecond),
			StandardMs:      int(c.Standard / time.Millisecond),
			FastCount:       c.FastCount,
			PulseMs:         int(c.Pulse / time.Millisecond),
			CompleteDelayMs: int(c.CompleteDelay / time.Millisecond),
		},
	}
}

// NewModel constructs the portfolio model.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	clock := opts.Clock
	if clock == nil {
		clock = timer.RealClock()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	m := &Model{
		content:  opts.Content,
		state:    opts.State,
		messages: opts.Messages,
		logger:   logger,
		now:      now,
		events:   bus.New(logger),
		vp:       viewport.New(0, 0),
		page:     &page{tops: map[string]int{}},
		help:     help.New(),
		project:  noModal,
	}
	m.smooth = scroll.New(&m.vp, timer.New(clock))
	m.nav = sections.NewController(navigationConfig(opts.Config.Navigation), m.page, m.smooth, m.events, timer.New(clock), logger)
	m.hero = hero.New(hero.DefaultTiming(), typingCadence(opts.Config.Typing), heroText(m.strings()), clock, m.events)
	m.keys = newKeyMap(m.nav.AdvanceKey())
	m.applyTheme()
	return m
}

func navigationConfig(n model.NavigationConfig) sections.Config {
	cfg := sections.DefaultConfig()
	cfg.Tolerance = n.Tolerance
	cfg.SettleDelay = time.Duration(n.SettleMs) * time.Millisecond
	cfg.ScrollPadding = n.ScrollPadding
	cfg.ExtraOffset = n.ExtraOffset
	cfg.NavHeight = func() int { return navHeight }
	return cfg
}

func typingCadence(t model.TypingConfig) typing.Cadence {
	c := typing.DefaultCadence()
	if t.FastMs > 0 {
		c.Fast = time.Duration(t.FastMs) * time.Millisecond
	}
	if t.StandardMs > 0 {
		c.Standard = time.Duration(t.StandardMs) * time.Millisecond
	}
	if t.FastCount >= 0 {
		c.FastCount = t.FastCount
	}
	if t.PulseMs > 0 {
		c.Pulse = time.Duration(t.PulseMs) * time.Millisecond
	}
	if t.CompleteDelayMs >= 0 {
		c.CompleteDelay = time.Duration(t.CompleteDelayMs) * time.Millisecond
	}
	return c
}

func heroText(s content.Strings) hero.Text {
	return hero.Text{Greeting: s.Hero.Greeting, Followup: s.Hero.Followup, Hint: s.Hero.Hint}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.hero.Start()
}

// Close stops every animation and drops bus subscriptions.
func (m *Model) Close() {
	m.smooth.Interrupt()
	m.nav.Close()
	m.hero.Close()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case timer.FiredMsg:
		return m, m.handleTimer(msg)
	default:
		if m.contact != nil {
			return m, m.contact.update(msg)
		}
		return m, nil
	}
}

func (m *Model) handleTimer(msg timer.FiredMsg) tea.Cmd {
	changed, scrollCmd := m.smooth.Update(msg)
	if changed {
		m.nav.RecomputeFromScroll()
	}
	navCmd := m.nav.Update(msg)
	heroCmd := m.hero.Update(msg)
	m.refresh()
	return tea.Batch(scrollCmd, navCmd, heroCmd)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	// The controller sees every key; it ignores Enter while a form or modal has focus.
	advance := m.nav.Trigger(msg, m.state)
	if m.contact != nil {
		return m.updateContact(msg)
	}
	if m.project != noModal {
		return m.updateProjectModal(msg)
	}

	ctx := context.Background()
	switch {
	case key.Matches(msg, m.keys.Advance):
		m.refresh()
		return advance
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.vp.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.vp.Height)
	case key.Matches(msg, m.keys.Top):
		m.scrollBy(-m.vp.YOffset)
	case key.Matches(msg, m.keys.Bottom):
		m.scrollBy(m.vp.TotalLineCount())
	case key.Matches(msg, m.keys.AllWork):
		m.showAll = !m.showAll
		m.refresh()
		m.nav.RecomputeFromScroll()
	case key.Matches(msg, m.keys.Project):
		idx := int(msg.Runes[0] - '1')
		if idx >= 0 && idx < len(m.content.Projects) {
			m.project = idx
			m.state.SetModalOpen(true)
		}
	case key.Matches(msg, m.keys.Contact):
		form, cmd := newContactForm(m.strings().Contact, m.width)
		m.contact = form
		m.state.SetModalOpen(true)
		m.state.SetInputFocused(true)
		return cmd
	case key.Matches(msg, m.keys.Lang):
		next := m.content.NextLang(m.state.Lang())
		if m.state.SetLang(ctx, next) {
			m.logger.Info("language changed", "lang", next)
		}
		cmd := m.hero.Restart(heroText(m.strings()))
		m.refresh()
		return cmd
	case key.Matches(msg, m.keys.Theme):
		theme := m.state.ToggleTheme(ctx)
		m.logger.Info("theme changed", "theme", theme)
		m.applyTheme()
		m.refresh()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.contact != nil || m.project != noModal || msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelStep)
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelStep)
	}
	return nil
}

// scrollBy is a user scroll: it wins over any programmatic scroll in flight.
func (m *Model) scrollBy(delta int) {
	m.smooth.Interrupt()
	m.vp.SetYOffset(m.vp.YOffset + delta)
	m.nav.RecomputeFromScroll()
}

func (m *Model) updateContact(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeContact()
		return nil
	case tea.KeyTab, tea.KeyDown:
		return m.contact.setIndex(m.contact.index + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.contact.setIndex(m.contact.index - 1)
	case tea.KeyEnter:
		if m.contact.index < fieldMessage {
			return m.contact.setIndex(m.contact.index + 1)
		}
		m.submitContact()
		return nil
	}
	return m.contact.update(msg)
}

func (m *Model) submitContact() {
	msg, err := m.contact.message(m.state.Lang())
	if err != nil {
		m.contact.err = err.Error()
		return
	}
	msg.CreatedAt = m.now()
	if m.messages != nil {
		id, err := m.messages.InsertMessage(context.Background(), msg)
		if err != nil {
			m.logger.Error("failed to save message", "err", err)
			m.contact.err = "failed to save message"
			return
		}
		m.logger.Info("saved contact message", "id", id)
	}
	m.closeContact()
	m.notice = m.strings().Contact.Sent
	m.refresh()
}

func (m *Model) closeContact() {
	m.contact = nil
	m.state.SetInputFocused(false)
	m.state.SetModalOpen(false)
}

func (m *Model) updateProjectModal(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Quit):
		m.project = noModal
		m.state.SetModalOpen(false)
	case msg.Type == tea.KeyLeft:
		m.project = (m.project - 1 + len(m.content.Projects)) % len(m.content.Projects)
	case msg.Type == tea.KeyRight:
		m.project = (m.project + 1) % len(m.content.Projects)
	}
	return nil
}

func (m *Model) strings() content.Strings {
	return m.content.Lang(m.state.Lang())
}

func (m *Model) applyTheme() {
	m.styles = newStyles(m.state.Theme())
	m.progress = progress.New(
		progress.WithGradient(m.styles.gradient[0], m.styles.gradient[1]),
		progress.WithoutPercentage(),
		progress.WithWidth(max(m.width, 1)),
	)
}

func (m *Model) footerHeight() int {
	return 1 + lineCount(m.help.View(m.keys))
}

func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.help.Width = m.width
	m.progress.Width = m.width
	m.vp.Width = m.width
	m.vp.Height = max(m.height-m.footerHeight(), navHeight+1)
	m.refresh()
	m.nav.RecomputeFromScroll()
}

// refresh re-renders the page. Section tops are re-measured on every render.
func (m *Model) refresh() {
	if m.width <= 0 {
		return
	}
	*m.page = *buildPage(pageInput{
		width:      m.width,
		heroHeight: m.vp.Height,
		viewHeight: m.vp.Height,
		hero:       m.hero.View(m.width, m.styles.hero),
		strings:    m.strings(),
		content:    m.content,
		showAll:    m.showAll,
		notice:     m.notice,
		styles:     m.styles,
	})
	m.vp.SetContent(m.page.body)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.contact != nil {
		box := m.contact.view(m.strings().Contact, m.styles, m.width)
		return fitLines(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box), m.width, m.height)
	}
	if m.project != noModal {
		return fitLines(m.renderProjectModal(), m.width, m.height)
	}
	lines := strings.Split(m.vp.View(), "\n")
	lines[0] = m.renderNav()
	return strings.Join(lines, "\n") + "\n" + m.renderFooter()
}

func (m *Model) renderNav() string {
	nav := m.strings().Nav
	labels := map[string]string{
		model.SectionHero:        nav.Home,
		model.SectionWork:        nav.Work,
		model.SectionAllProjects: nav.All,
		model.SectionSkills:      nav.Skills,
		model.SectionAbout:       nav.About,
		model.SectionContact:     nav.Contact,
	}
	current := m.nav.Current()
	items := make([]string, 0, len(model.PageSections))
	for _, id := range model.PageSections {
		if _, ok := m.page.Offset(id); !ok {
			continue
		}
		style := m.styles.navItem
		if id == current {
			style = m.styles.navActive
		}
		items = append(items, style.Render(labels[id]))
	}
	left := strings.Join(items, "")
	right := m.styles.muted.Render(strings.ToUpper(m.state.Lang()) + " · " + m.state.Theme() + " ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap > 0 {
		line = left + strings.Repeat(" ", gap) + right
	}
	return padLine(lipgloss.NewStyle().MaxWidth(m.width).Render(line), m.width)
}

func (m *Model) renderFooter() string {
	bar := m.progress.ViewAs(m.vp.ScrollPercent())
	return bar + "\n" + m.help.View(m.keys)
}

func (m *Model) renderProjectModal() string {
	p := m.content.Projects[m.project]
	inner := modalInnerWidth(m.width)
	body := []string{
		m.styles.title.Render(p.Title),
		m.styles.muted.Render(p.Date),
		"",
		wrapHighlighted(p.Description, inner, m.styles.text, p.Tech, m.styles.accent),
		"",
	}
	if len(p.Tech) > 0 {
		body = append(body, m.styles.muted.Render(m.strings().Work.Tech+": ")+m.styles.tag.Render(strings.Join(p.Tech, ", ")))
	}
	if p.Link != "" {
		body = append(body, m.styles.accent.Render(truncateLine(p.Link, inner)))
	}
	body = append(body, "", m.styles.muted.Render("←/→ browse / Esc close"))
	box := m.styles.modal.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Section returns the id of the section under the cursor.
func (m *Model) Section() string {
	return m.nav.Current()
}

// Offset returns the page scroll offset in rows.
func (m *Model) Offset() int {
	return m.vp.YOffset
}
