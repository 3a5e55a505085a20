// Package hero runs the staged greeting sequence at the top of the page.
package hero

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/folio/internal/bus"
	"github.com/verte-zerg/folio/internal/sections"
	"github.com/verte-zerg/folio/internal/timer"
	"github.com/verte-zerg/folio/internal/typing"
)

// Stage is a step of the hero sequence.
type Stage int

const (
	StageBlink Stage = iota
	StageTyping
	StageReveal
	StageFloat
	StageHint
	StageSelecting
	StageSecond
	StageDone
)

var stageNames = [...]string{"blink", "typing", "reveal", "float", "hint", "selecting", "second", "done"}

func (s Stage) String() string {
	if int(s) < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Timing holds the delays between stages.
type Timing struct {
	Blink          time.Duration
	CursorBlink    time.Duration
	Reveal         time.Duration
	FloatPeriod    time.Duration
	Hint           time.Duration
	Second         time.Duration
	SelectDuration time.Duration
}

// DefaultTiming returns the stock stage delays.
func DefaultTiming() Timing {
	return Timing{
		Blink:          1200 * time.Millisecond,
		CursorBlink:    530 * time.Millisecond,
		Reveal:         900 * time.Millisecond,
		FloatPeriod:    600 * time.Millisecond,
		Hint:           1500 * time.Millisecond,
		Second:         2500 * time.Millisecond,
		SelectDuration: 700 * time.Millisecond,
	}
}

// Text is the copy typed by the sequence.
type Text struct {
	Greeting string
	Followup string
	Hint     string
}

type (
	blinkDone   struct{}
	cursorTick  struct{}
	floatStart  struct{}
	floatTick   struct{}
	hintTick    struct{}
	selectTick  struct{}
	secondStart struct{}
)

// Model is the hero state machine.
type Model struct {
	timing Timing
	text   Text
	sched  *timer.Scheduler
	seq    *typing.Sequencer

	stage    Stage
	cursorOn bool
	floatUp  bool

	unsubscribe func()
}

// New builds a hero driven by clock. When events is non-nil the hero pulses
// its enter key on every section advance.
func New(timing Timing, cadence typing.Cadence, text Text, clock timer.Clock, events *bus.Bus) *Model {
	m := &Model{
		timing: timing,
		text:   text,
		sched:  timer.New(clock),
		seq:    typing.New(cadence, timer.New(clock)),
	}
	m.seq.OnComplete(m.sequenceComplete)
	if events != nil {
		m.unsubscribe = events.Subscribe(sections.TopicAdvance, func() tea.Cmd {
			return m.seq.Pulse("enter")
		})
	}
	return m
}

// Start runs the sequence from the blinking cursor.
func (m *Model) Start() tea.Cmd {
	m.Stop()
	m.stage = StageBlink
	m.cursorOn = true
	m.floatUp = false
	_, blink := m.sched.Schedule(m.timing.Blink, blinkDone{})
	_, cursor := m.sched.Schedule(m.timing.CursorBlink, cursorTick{})
	return tea.Batch(blink, cursor)
}

// Restart replaces the text and runs the sequence again.
func (m *Model) Restart(text Text) tea.Cmd {
	m.text = text
	return m.Start()
}

// Stop cancels every pending stage and typing timer.
func (m *Model) Stop() {
	m.sched.CancelAll()
	m.seq.Stop()
}

// Close stops the sequence and drops the advance subscription.
func (m *Model) Close() {
	m.Stop()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Update handles hero and typing timers.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if cmd := m.seq.Update(msg); cmd != nil {
		return cmd
	}
	payload, ok := m.sched.Claim(msg)
	if !ok {
		return nil
	}
	switch payload.(type) {
	case blinkDone:
		m.stage = StageTyping
		return m.seq.Activate(m.text.Greeting)
	case cursorTick:
		if m.stage == StageDone {
			m.cursorOn = false
			return nil
		}
		m.cursorOn = !m.cursorOn
		_, cmd := m.sched.Schedule(m.timing.CursorBlink, cursorTick{})
		return cmd
	case floatStart:
		m.stage = StageFloat
		_, bob := m.sched.Schedule(m.timing.FloatPeriod, floatTick{})
		_, hint := m.sched.Schedule(m.timing.Hint, hintTick{})
		return tea.Batch(bob, hint)
	case floatTick:
		m.floatUp = !m.floatUp
		_, cmd := m.sched.Schedule(m.timing.FloatPeriod, floatTick{})
		return cmd
	case hintTick:
		m.stage = StageHint
		_, cmd := m.sched.Schedule(m.timing.Second, selectTick{})
		return cmd
	case selectTick:
		m.stage = StageSelecting
		m.seq.Select()
		_, cmd := m.sched.Schedule(m.timing.SelectDuration, secondStart{})
		return cmd
	case secondStart:
		m.stage = StageSecond
		return m.seq.Activate(m.text.Followup)
	}
	return nil
}

func (m *Model) sequenceComplete() tea.Cmd {
	switch m.stage {
	case StageTyping:
		m.stage = StageReveal
		_, cmd := m.sched.Schedule(m.timing.Reveal, floatStart{})
		return cmd
	case StageSecond:
		m.stage = StageDone
	}
	return nil
}

// Stage returns the current stage.
func (m *Model) Stage() Stage {
	return m.stage
}

// Sequencer exposes the typing machine for rendering.
func (m *Model) Sequencer() *typing.Sequencer {
	return m.seq
}

// PortraitVisible reports whether the greeting has finished typing.
func (m *Model) PortraitVisible() bool {
	return m.stage >= StageReveal
}

// FloatOffset returns the portrait's vertical bob in rows.
func (m *Model) FloatOffset() int {
	if m.stage >= StageFloat && m.floatUp {
		return 1
	}
	return 0
}

// HintVisible reports whether the press-enter affordance is shown.
func (m *Model) HintVisible() bool {
	return m.stage >= StageHint
}

// CursorVisible reports whether the blinking cursor is drawn this frame.
func (m *Model) CursorVisible() bool {
	if m.stage == StageBlink {
		return m.cursorOn
	}
	return m.cursorOn && m.seq.CursorLine() >= 0
}

// Text returns the copy in use.
func (m *Model) Text() Text {
	return m.text
}
