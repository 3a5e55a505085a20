// Package typing reveals text one rune at a time to simulate typing.
package typing

import (
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/folio/internal/timer"
)

// Phase is the sequencer's lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTyping
	PhaseComplete
	PhaseSelecting
)

func (p Phase) String() string {
	switch p {
	case PhaseTyping:
		return "typing"
	case PhaseComplete:
		return "complete"
	case PhaseSelecting:
		return "selecting"
	default:
		return "idle"
	}
}

// Cadence controls reveal timing.
type Cadence struct {
	Fast          time.Duration
	Standard      time.Duration
	FastCount     int
	Pulse         time.Duration
	CompleteDelay time.Duration
}

// DefaultCadence returns the stock typing rhythm.
func DefaultCadence() Cadence {
	return Cadence{
		Fast:          45 * time.Millisecond,
		Standard:      90 * time.Millisecond,
		FastCount:     6,
		Pulse:         100 * time.Millisecond,
		CompleteDelay: 800 * time.Millisecond,
	}
}

// Interval returns the delay before revealing the rune at position.
func (c Cadence) Interval(position int) time.Duration {
	if position < c.FastCount {
		return c.Fast
	}
	return c.Standard
}

type (
	revealTick   struct{}
	clearTick    struct{}
	completeTick struct{}
)

// Sequencer is the typing state machine. It is driven entirely by messages
// from its own scheduler.
type Sequencer struct {
	cadence    Cadence
	sched      *timer.Scheduler
	onComplete func() tea.Cmd

	source   []rune
	position int
	symbol   string
	phase    Phase

	revealID   timer.ID
	clearID    timer.ID
	completeID timer.ID
}

// New returns an idle sequencer.
func New(cadence Cadence, sched *timer.Scheduler) *Sequencer {
	return &Sequencer{cadence: cadence, sched: sched}
}

// OnComplete sets the callback invoked once per fully revealed activation.
func (s *Sequencer) OnComplete(fn func() tea.Cmd) {
	s.onComplete = fn
}

// Activate starts revealing text from the beginning, abandoning any previous
// activation and its timers. Empty text completes immediately.
func (s *Sequencer) Activate(text string) tea.Cmd {
	s.Stop()
	s.source = []rune(text)
	s.position = 0
	s.symbol = ""
	if len(s.source) == 0 {
		s.phase = PhaseComplete
		return s.complete()
	}
	s.phase = PhaseTyping
	return s.scheduleReveal()
}

// Stop cancels every pending timer and leaves the revealed text in place.
func (s *Sequencer) Stop() {
	s.sched.Cancel(s.revealID)
	s.sched.Cancel(s.clearID)
	s.sched.Cancel(s.completeID)
	s.revealID, s.clearID, s.completeID = 0, 0, 0
	s.symbol = ""
}

// Select switches to the selecting sub-phase: the revealed text is shown as
// a selection and the cursor is hidden. Pending reveals are cancelled.
func (s *Sequencer) Select() {
	s.Stop()
	s.phase = PhaseSelecting
}

// Pulse flashes a key symbol without revealing text.
func (s *Sequencer) Pulse(symbol string) tea.Cmd {
	s.sched.Cancel(s.clearID)
	s.symbol = symbol
	id, cmd := s.sched.Schedule(s.cadence.Pulse, clearTick{})
	s.clearID = id
	return cmd
}

// Update handles the sequencer's timers.
func (s *Sequencer) Update(msg tea.Msg) tea.Cmd {
	payload, ok := s.sched.Claim(msg)
	if !ok {
		return nil
	}
	switch payload.(type) {
	case revealTick:
		s.revealID = 0
		return s.reveal()
	case clearTick:
		s.clearID = 0
		s.symbol = ""
	case completeTick:
		s.completeID = 0
		s.phase = PhaseComplete
		return s.complete()
	}
	return nil
}

func (s *Sequencer) reveal() tea.Cmd {
	if s.phase != PhaseTyping || s.position >= len(s.source) {
		return nil
	}
	r := s.source[s.position]
	s.position++
	cmds := []tea.Cmd{s.Pulse(KeySymbol(r))}
	if s.position < len(s.source) {
		cmds = append(cmds, s.scheduleReveal())
	} else {
		id, cmd := s.sched.Schedule(s.cadence.CompleteDelay, completeTick{})
		s.completeID = id
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (s *Sequencer) scheduleReveal() tea.Cmd {
	id, cmd := s.sched.Schedule(s.cadence.Interval(s.position), revealTick{})
	s.revealID = id
	return cmd
}

func (s *Sequencer) complete() tea.Cmd {
	if s.onComplete == nil {
		return nil
	}
	return s.onComplete()
}

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Source returns the text of the current activation.
func (s *Sequencer) Source() string {
	return string(s.source)
}

// Position returns the number of revealed runes.
func (s *Sequencer) Position() int {
	return s.position
}

// Revealed returns the revealed prefix of the source.
func (s *Sequencer) Revealed() string {
	return string(s.source[:s.position])
}

// Done reports whether every rune has been revealed.
func (s *Sequencer) Done() bool {
	return s.position >= len(s.source)
}

// ActiveSymbol returns the key symbol currently pulsed, or "".
func (s *Sequencer) ActiveSymbol() string {
	return s.symbol
}

// Lines splits the revealed text on newlines.
func (s *Sequencer) Lines() []string {
	return strings.Split(s.Revealed(), "\n")
}

// CursorLine returns the line index that shows the typing cursor, or -1 when
// no cursor is shown.
func (s *Sequencer) CursorLine() int {
	if s.phase == PhaseSelecting || s.phase == PhaseIdle || s.Done() {
		return -1
	}
	return len(s.Lines()) - 1
}

// KeySymbol maps a rune to the keyboard key that types it.
func KeySymbol(r rune) string {
	switch r {
	case ' ':
		return "space"
	case '\n':
		return "enter"
	default:
		return string(unicode.ToLower(r))
	}
}
