// Package scroll animates programmatic viewport scrolling.
package scroll

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/verte-zerg/folio/internal/timer"
)

const (
	fps       = 60
	frequency = 12.0
	damping   = 1.0
)

type frameTick struct{}

// Smooth drives a viewport's offset toward a target with a spring. The
// animation is fire-and-forget: callers only observe the resulting offsets.
type Smooth struct {
	vp     *viewport.Model
	sched  *timer.Scheduler
	spring harmonica.Spring
	frame  time.Duration

	pos       float64
	vel       float64
	target    int
	frameID   timer.ID
	animating bool
}

// New returns a scroller for vp. Its timers live on sched.
func New(vp *viewport.Model, sched *timer.Scheduler) *Smooth {
	return &Smooth{
		vp:     vp,
		sched:  sched,
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		frame:  time.Second / fps,
	}
}

// Offset returns the viewport's current top row.
func (s *Smooth) Offset() int {
	return s.vp.YOffset
}

// Target returns the destination of the current animation.
func (s *Smooth) Target() int {
	return s.target
}

// Animating reports whether a programmatic scroll is in flight.
func (s *Smooth) Animating() bool {
	return s.animating
}

// ScrollTo starts animating toward offset, replacing any animation in flight.
func (s *Smooth) ScrollTo(offset int) tea.Cmd {
	if offset < 0 {
		offset = 0
	}
	s.sched.Cancel(s.frameID)
	if !s.animating {
		s.pos = float64(s.vp.YOffset)
		s.vel = 0
	}
	s.target = offset
	s.animating = true
	return s.scheduleFrame()
}

// Interrupt stops the animation where it is, as when the user scrolls.
func (s *Smooth) Interrupt() {
	s.sched.Cancel(s.frameID)
	s.frameID = 0
	s.animating = false
	s.vel = 0
}

// Update advances the animation on frame ticks. It reports whether the
// viewport offset changed.
func (s *Smooth) Update(msg tea.Msg) (bool, tea.Cmd) {
	payload, ok := s.sched.Claim(msg)
	if !ok {
		return false, nil
	}
	if _, ok := payload.(frameTick); !ok || !s.animating {
		return false, nil
	}
	s.frameID = 0
	before := s.vp.YOffset
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, float64(s.target))

	done := math.Abs(s.pos-float64(s.target)) < 0.5 && math.Abs(s.vel) < 0.5
	if done {
		s.pos = float64(s.target)
		s.vel = 0
	}
	s.vp.SetYOffset(int(math.Round(s.pos)))

	// The viewport clamps offsets past the end of the content; stop chasing
	// a target it can never reach.
	if s.vp.YOffset != int(math.Round(s.pos)) && s.vel >= 0 && s.vp.AtBottom() {
		done = true
	}
	if done {
		s.animating = false
		return s.vp.YOffset != before, nil
	}
	return s.vp.YOffset != before, s.scheduleFrame()
}

func (s *Smooth) scheduleFrame() tea.Cmd {
	id, cmd := s.sched.Schedule(s.frame, frameTick{})
	s.frameID = id
	return cmd
}
