package hero

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/folio/internal/bus"
	"github.com/verte-zerg/folio/internal/sections"
	"github.com/verte-zerg/folio/internal/timer"
	"github.com/verte-zerg/folio/internal/typing"
)

type rig struct {
	clock  *timer.FakeClock
	events *bus.Bus
	hero   *Model
}

func newRig(text Text) *rig {
	clock := timer.NewFakeClock()
	events := bus.New(nil)
	return &rig{
		clock:  clock,
		events: events,
		hero:   New(DefaultTiming(), typing.DefaultCadence(), text, clock, events),
	}
}

func (r *rig) advance(d time.Duration) {
	r.clock.Advance(d, func(msg tea.Msg) {
		r.hero.Update(msg)
	})
}

func TestStageTimeline(t *testing.T) {
	r := newRig(Text{Greeting: "Hi", Followup: "Yo", Hint: "Press Enter"})
	r.hero.Start()
	require.Equal(t, StageBlink, r.hero.Stage())

	r.advance(1199 * time.Millisecond)
	require.Equal(t, StageBlink, r.hero.Stage())
	r.advance(time.Millisecond)
	require.Equal(t, StageTyping, r.hero.Stage())

	// Two fast reveals then the completion delay.
	r.advance(90 * time.Millisecond)
	require.Equal(t, "Hi", r.hero.Sequencer().Revealed())
	require.Equal(t, StageTyping, r.hero.Stage())
	require.False(t, r.hero.HintVisible())
	r.advance(800 * time.Millisecond)
	require.Equal(t, StageReveal, r.hero.Stage())
	require.True(t, r.hero.PortraitVisible())
	require.False(t, r.hero.HintVisible())

	r.advance(900 * time.Millisecond)
	require.Equal(t, StageFloat, r.hero.Stage())
	r.advance(1500 * time.Millisecond)
	require.Equal(t, StageHint, r.hero.Stage())
	require.True(t, r.hero.HintVisible())

	r.advance(2500 * time.Millisecond)
	require.Equal(t, StageSelecting, r.hero.Stage())
	require.Equal(t, typing.PhaseSelecting, r.hero.Sequencer().Phase())
	require.Equal(t, -1, r.hero.Sequencer().CursorLine())

	r.advance(700 * time.Millisecond)
	require.Equal(t, StageSecond, r.hero.Stage())
	r.advance(90*time.Millisecond + 800*time.Millisecond)
	require.Equal(t, "Yo", r.hero.Sequencer().Revealed())
	require.Equal(t, StageDone, r.hero.Stage())
}

func TestHintNeverBeforeTypingFinished(t *testing.T) {
	r := newRig(Text{Greeting: "Hello there", Followup: "x", Hint: "h"})
	r.hero.Start()
	for r.hero.Stage() < StageReveal {
		require.False(t, r.hero.HintVisible())
		require.False(t, r.hero.PortraitVisible())
		r.advance(10 * time.Millisecond)
	}
}

func TestFloatBobs(t *testing.T) {
	r := newRig(Text{Greeting: "", Followup: "x"})
	r.hero.Start()
	r.advance(1200 * time.Millisecond)
	require.Equal(t, StageReveal, r.hero.Stage())
	r.advance(900 * time.Millisecond)
	require.Equal(t, StageFloat, r.hero.Stage())
	require.Equal(t, 0, r.hero.FloatOffset())
	r.advance(600 * time.Millisecond)
	require.Equal(t, 1, r.hero.FloatOffset())
	r.advance(600 * time.Millisecond)
	require.Equal(t, 0, r.hero.FloatOffset())
}

func TestRestartAbandonsOldText(t *testing.T) {
	r := newRig(Text{Greeting: "abcdefghij"})
	r.hero.Start()
	r.advance(1200*time.Millisecond + 90*time.Millisecond)
	require.Equal(t, "ab", r.hero.Sequencer().Revealed())

	r.hero.Restart(Text{Greeting: "XY"})
	require.Equal(t, StageBlink, r.hero.Stage())
	r.advance(1200 * time.Millisecond)
	require.Equal(t, StageTyping, r.hero.Stage())
	r.advance(2 * time.Second)
	require.Equal(t, "XY", r.hero.Sequencer().Revealed())
	require.Equal(t, StageReveal, r.hero.Stage())
}

func TestAdvancePulsesEnter(t *testing.T) {
	r := newRig(Text{Greeting: "Hi"})
	r.hero.Start()
	r.events.Publish(sections.TopicAdvance)
	require.Equal(t, "enter", r.hero.Sequencer().ActiveSymbol())
	r.advance(100 * time.Millisecond)
	require.Empty(t, r.hero.Sequencer().ActiveSymbol())

	r.hero.Close()
	require.Equal(t, 0, r.events.Subscribers(sections.TopicAdvance))
	r.events.Publish(sections.TopicAdvance)
	require.Empty(t, r.hero.Sequencer().ActiveSymbol())
}

func TestStopCancelsEverything(t *testing.T) {
	r := newRig(Text{Greeting: "Hi"})
	r.hero.Start()
	r.hero.Stop()
	r.advance(10 * time.Second)
	require.Equal(t, StageBlink, r.hero.Stage())
	require.Equal(t, 0, r.hero.Sequencer().Position())
}

func TestKeyboardLayout(t *testing.T) {
	out := Keyboard("enter", DefaultStyles(true))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	require.Contains(t, lines[2], "enter")
	require.Contains(t, lines[4], "space")
}

func TestViewShowsTypedText(t *testing.T) {
	r := newRig(Text{Greeting: "Hi,\nme", Hint: "Press Enter"})
	r.hero.Start()
	r.advance(1200*time.Millisecond + 6*45*time.Millisecond)
	view := r.hero.View(80, DefaultStyles(false))
	require.Contains(t, view, "Hi,")
	require.Contains(t, view, "me")
	require.NotContains(t, view, "Press Enter")
}
