package orchestration

import (
	"sync"

	"github.com/mira-assistant/mira-core/core/events"
)

// Mailbox is the only channel shared between turn workers and the
// presentation surface: an unbounded FIFO queue safe for concurrent
// producers and a single consumer. Events are delivered in post order,
// never dropped or duplicated.
type Mailbox struct {
	mu    sync.Mutex
	items []events.Event
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Post appends an event. It never blocks the producer.
func (m *Mailbox) Post(event events.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, event)
}

// TryTake removes and returns the oldest event without blocking; ok is
// false when the mailbox is empty.
func (m *Mailbox) TryTake() (event events.Event, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.items) == 0 {
		return nil, false
	}

	event = m.items[0]
	m.items = m.items[1:]
	return event, true
}

// DrainPending removes and returns every queued event in FIFO order. The
// surface's polling loop uses it to apply a whole batch per tick.
func (m *Mailbox) DrainPending() []events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	drained := m.items
	m.items = nil
	return drained
}

func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
