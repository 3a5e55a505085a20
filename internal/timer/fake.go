package timer

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeTimer struct {
	at  time.Duration
	seq int
	msg tea.Msg
}

// FakeClock is a manual clock for tests. Timers fire only when Advance moves
// time past their deadline.
type FakeClock struct {
	now     time.Duration
	seq     int
	pending []fakeTimer
}

// NewFakeClock returns a FakeClock at time zero.
func NewFakeClock() *FakeClock {
	return &FakeClock{}
}

// After records the timer and returns a command that yields nothing.
func (c *FakeClock) After(d time.Duration, msg tea.Msg) tea.Cmd {
	c.seq++
	c.pending = append(c.pending, fakeTimer{at: c.now + d, seq: c.seq, msg: msg})
	return nil
}

// Now returns the elapsed fake time.
func (c *FakeClock) Now() time.Duration {
	return c.now
}

// Advance moves time forward by d, delivering due messages in deadline order.
// Timers scheduled by deliver are honoured if they fall inside the window.
func (c *FakeClock) Advance(d time.Duration, deliver func(tea.Msg)) {
	target := c.now + d
	for {
		idx := c.nextDue(target)
		if idx < 0 {
			break
		}
		t := c.pending[idx]
		c.pending = append(c.pending[:idx], c.pending[idx+1:]...)
		c.now = t.at
		if deliver != nil {
			deliver(t.msg)
		}
	}
	c.now = target
}

// Waiting returns the number of recorded timers that have not fired yet,
// including ones their scheduler has since cancelled.
func (c *FakeClock) Waiting() int {
	return len(c.pending)
}

func (c *FakeClock) nextDue(target time.Duration) int {
	if len(c.pending) == 0 {
		return -1
	}
	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].at == c.pending[j].at {
			return c.pending[i].seq < c.pending[j].seq
		}
		return c.pending[i].at < c.pending[j].at
	})
	if c.pending[0].at > target {
		return -1
	}
	return 0
}
