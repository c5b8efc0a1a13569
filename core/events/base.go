package events

import "time"

type Kind string

type Event interface {
	Kind() Kind
	Timestamp() time.Time
	TurnID() string
}

type Base struct {
	kind      Kind
	timestamp time.Time
	turnID    string
}

type BaseOption func(*Base)

// ForTurn attributes the event to the turn that produced it.
func ForTurn(id string) BaseOption {
	return func(b *Base) { b.turnID = id }
}

func NewBase(kind Kind, opts ...BaseOption) Base {
	base := Base{kind: kind, timestamp: time.Now()}
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

func (b Base) Kind() Kind {
	return b.kind
}

func (b Base) Timestamp() time.Time {
	return b.timestamp
}

func (b Base) TurnID() string {
	return b.turnID
}
