// Package bus is a synchronous publish/subscribe bridge between UI components.
package bus

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Topic names an event. Events carry no payload.
type Topic string

// Handler reacts to an event and may return a command for the program.
type Handler func() tea.Cmd

type subscription struct {
	id      uint64
	handler Handler
}

// Bus delivers events on the caller's goroutine, in subscription order.
type Bus struct {
	next   uint64
	topics map[Topic][]subscription
	logger *slog.Logger
}

// New creates an empty bus. A nil logger disables debug logging.
func New(logger *slog.Logger) *Bus {
	return &Bus{
		topics: make(map[Topic][]subscription),
		logger: logger,
	}
}

// Subscribe registers handler for topic and returns an unsubscribe function.
// Calling the unsubscribe function more than once is harmless.
func (b *Bus) Subscribe(topic Topic, handler Handler) func() {
	b.next++
	id := b.next
	b.topics[topic] = append(b.topics[topic], subscription{id: id, handler: handler})
	return func() {
		subs := b.topics[topic]
		for i, sub := range subs {
			if sub.id == id {
				out := make([]subscription, 0, len(subs)-1)
				out = append(out, subs[:i]...)
				out = append(out, subs[i+1:]...)
				b.topics[topic] = out
				return
			}
		}
	}
}

// Publish invokes every handler subscribed to topic at the time of the call,
// once each, and batches their commands.
func (b *Bus) Publish(topic Topic) tea.Cmd {
	subs := b.topics[topic]
	if b.logger != nil {
		b.logger.Debug("publish event", "topic", string(topic), "subscribers", len(subs))
	}
	if len(subs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(subs))
	for _, sub := range subs {
		if cmd := sub.handler(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Subscribers returns the number of handlers registered for topic.
func (b *Bus) Subscribers(topic Topic) int {
	return len(b.topics[topic])
}
