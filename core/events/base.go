package events

import "time"

// Kind is the wire name of a session event.
type Kind string

type Event interface {
	Kind() Kind
	Timestamp() time.Time
}

type Base struct {
	kind      Kind
	timestamp time.Time
}

func NewBase(kind Kind) Base {
	return NewBaseAt(kind, time.Now())
}

// NewBaseAt creates a base stamped with the given receive time.
func NewBaseAt(kind Kind, timestamp time.Time) Base {
	return Base{kind: kind, timestamp: timestamp}
}

func (b Base) Kind() Kind {
	return b.kind
}

func (b Base) Timestamp() time.Time {
	return b.timestamp
}

// Kinds lists every event kind a session can emit, in subscription order.
func Kinds() []Kind {
	return []Kind{
		KindCallStart,
		KindCallEnd,
		KindSpeechStart,
		KindSpeechEnd,
		KindMessage,
		KindVolumeLevel,
		KindError,
	}
}
