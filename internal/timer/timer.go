// Package timer provides cancellable delayed messages for Bubble Tea models.
package timer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ID identifies a scheduled timer. The zero ID is never issued.
type ID uint64

// FiredMsg is delivered to the program when a scheduled timer elapses.
type FiredMsg struct {
	owner   *Scheduler
	id      ID
	payload any
}

// Clock converts a delay and a message into a command.
type Clock interface {
	After(d time.Duration, msg tea.Msg) tea.Cmd
}

type teaClock struct{}

func (teaClock) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// RealClock returns a clock backed by tea.Tick.
func RealClock() Clock {
	return teaClock{}
}

// Scheduler issues timers and drops the ones that were cancelled before they fired.
type Scheduler struct {
	clock Clock
	next  ID
	live  map[ID]struct{}
}

// New returns a Scheduler using clock. A nil clock means RealClock.
func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock()
	}
	return &Scheduler{
		clock: clock,
		live:  map[ID]struct{}{},
	}
}

// Schedule arranges for payload to be claimable after d.
func (s *Scheduler) Schedule(d time.Duration, payload any) (ID, tea.Cmd) {
	if d < 0 {
		d = 0
	}
	s.next++
	id := s.next
	s.live[id] = struct{}{}
	return id, s.clock.After(d, FiredMsg{owner: s, id: id, payload: payload})
}

// Cancel drops a pending timer. Unknown and zero IDs are ignored.
func (s *Scheduler) Cancel(id ID) {
	delete(s.live, id)
}

// CancelAll drops every pending timer.
func (s *Scheduler) CancelAll() {
	s.live = map[ID]struct{}{}
}

// Pending reports whether id is scheduled and not yet claimed or cancelled.
func (s *Scheduler) Pending(id ID) bool {
	_, ok := s.live[id]
	return ok
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return len(s.live)
}

// Claim returns the payload of a fired timer owned by s that is still live.
// A claimed timer is no longer pending.
func (s *Scheduler) Claim(msg tea.Msg) (any, bool) {
	fired, ok := msg.(FiredMsg)
	if !ok || fired.owner != s {
		return nil, false
	}
	if _, ok := s.live[fired.id]; !ok {
		return nil, false
	}
	delete(s.live, fired.id)
	return fired.payload, true
}
