// Package sections tracks the page section under the scroll position and
// advances through sections with a smooth programmatic scroll.
package sections

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/folio/internal/bus"
	"github.com/verte-zerg/folio/internal/timer"
)

// Undetermined is the cursor value before the first measurement, or when the
// scroll position is above every section.
const Undetermined = -1

// TopicAdvance is published whenever an advance actually moves the cursor.
const TopicAdvance bus.Topic = "sections.advance"

const (
	DefaultTolerance   = 1
	DefaultSettleDelay = 650 * time.Millisecond
)

// Registry exposes the ordered sections of the page.
type Registry interface {
	Sections() []string
	// Offset returns the top row of the section within the page and whether
	// the section is currently rendered.
	Offset(id string) (int, bool)
}

// Scroller performs programmatic scrolling of the page.
type Scroller interface {
	Offset() int
	ScrollTo(offset int) tea.Cmd
}

// Focus reports the UI conditions that swallow the advance key.
type Focus interface {
	InputFocused() bool
	ModalOpen() bool
}

// Config holds the tunable navigation parameters.
type Config struct {
	Tolerance   int
	SettleDelay time.Duration
	// ScrollPadding, when set, replaces the nav bar height as base offset.
	ScrollPadding *int
	NavHeight     func() int
	ExtraOffset   map[string]int
	AdvanceKey    key.Binding
}

// DefaultConfig returns the navigation defaults.
func DefaultConfig() Config {
	return Config{
		Tolerance:   DefaultTolerance,
		SettleDelay: DefaultSettleDelay,
		AdvanceKey:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next section")),
	}
}

type settleTick struct{}

// Controller owns the section cursor.
type Controller struct {
	cfg      Config
	registry Registry
	scroller Scroller
	events   *bus.Bus
	sched    *timer.Scheduler
	logger   *slog.Logger

	index      int
	suppressed bool
	settleID   timer.ID
}

// NewController wires a controller. The scheduler should be owned by the
// controller alone so its timers can be cancelled wholesale on Close.
func NewController(cfg Config, registry Registry, scroller Scroller, events *bus.Bus, sched *timer.Scheduler, logger *slog.Logger) *Controller {
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	if cfg.Tolerance < 0 {
		cfg.Tolerance = 0
	}
	if len(cfg.AdvanceKey.Keys()) == 0 {
		cfg.AdvanceKey = DefaultConfig().AdvanceKey
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		cfg:      cfg,
		registry: registry,
		scroller: scroller,
		events:   events,
		sched:    sched,
		logger:   logger,
		index:    Undetermined,
	}
}

// Index returns the current cursor.
func (c *Controller) Index() int {
	return c.index
}

// Current returns the id of the current section, or "" when undetermined.
func (c *Controller) Current() string {
	ids := c.registry.Sections()
	if c.index < 0 || c.index >= len(ids) {
		return ""
	}
	return ids[c.index]
}

// Suppressed reports whether scroll-driven recomputation is paused.
func (c *Controller) Suppressed() bool {
	return c.suppressed
}

// AdvanceKey returns the key binding that triggers Advance.
func (c *Controller) AdvanceKey() key.Binding {
	return c.cfg.AdvanceKey
}

// RecomputeFromScroll aligns the cursor with the current scroll offset.
// It is a no-op while a programmatic scroll is in flight.
func (c *Controller) RecomputeFromScroll() {
	if c.suppressed {
		return
	}
	c.index = IndexAt(c.scroller.Offset(), c.positions(), c.cfg.Tolerance)
}

// Trigger handles a key press. Only the advance key counts, and only while no
// input has focus and no modal is open.
func (c *Controller) Trigger(msg tea.KeyMsg, focus Focus) tea.Cmd {
	if !key.Matches(msg, c.cfg.AdvanceKey) {
		return nil
	}
	if focus != nil && (focus.InputFocused() || focus.ModalOpen()) {
		return nil
	}
	return c.Advance()
}

// Advance moves the cursor to the next rendered section and scrolls to it.
func (c *Controller) Advance() tea.Cmd {
	ids := c.registry.Sections()
	if len(ids) == 0 {
		return nil
	}
	if c.index == Undetermined {
		c.RecomputeFromScroll()
	}
	if c.index >= len(ids)-1 {
		return nil
	}
	next, top, ok := c.nextPresent(ids)
	if !ok {
		return nil
	}

	var cmds []tea.Cmd
	if c.events != nil {
		cmds = append(cmds, c.events.Publish(TopicAdvance))
	}
	c.suppressed = true
	target := max(c.landing(ids[next], top), 0)
	cmds = append(cmds, c.scroller.ScrollTo(target))
	c.logger.Debug("advance section", "from", c.index, "to", next, "id", ids[next], "target", target)
	c.index = next

	c.sched.Cancel(c.settleID)
	id, cmd := c.sched.Schedule(c.cfg.SettleDelay, settleTick{})
	c.settleID = id
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// Update handles the settle timer.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	payload, ok := c.sched.Claim(msg)
	if !ok {
		return nil
	}
	if _, ok := payload.(settleTick); ok {
		c.suppressed = false
		c.settleID = 0
		before := c.index
		c.RecomputeFromScroll()
		if before != c.index {
			c.logger.Debug("settle corrected cursor", "from", before, "to", c.index)
		}
	}
	return nil
}

// Close cancels pending timers and lifts suppression.
func (c *Controller) Close() {
	c.sched.CancelAll()
	c.settleID = 0
	c.suppressed = false
}

func (c *Controller) nextPresent(ids []string) (int, int, bool) {
	for i := c.index + 1; i < len(ids); i++ {
		if top, ok := c.registry.Offset(ids[i]); ok {
			return i, top, true
		}
	}
	return 0, 0, false
}

// positions reports every section at the offset Advance scrolls to for it,
// so a scroll that lands on target matches that section.
func (c *Controller) positions() []Position {
	ids := c.registry.Sections()
	out := make([]Position, len(ids))
	for i, id := range ids {
		top, ok := c.registry.Offset(id)
		out[i] = Position{Top: c.landing(id, top), Present: ok}
	}
	return out
}

func (c *Controller) landing(id string, top int) int {
	return top - c.baseOffset() + c.cfg.ExtraOffset[id]
}

func (c *Controller) baseOffset() int {
	if c.cfg.ScrollPadding != nil {
		return *c.cfg.ScrollPadding
	}
	if c.cfg.NavHeight != nil {
		return c.cfg.NavHeight()
	}
	return 0
}
