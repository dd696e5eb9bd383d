package events

const (
	// KindCallStart identifies a connected call.
	KindCallStart Kind = "call-start"
	// KindCallEnd identifies the end of a call.
	KindCallEnd Kind = "call-end"
	// KindError identifies a session failure.
	KindError Kind = "error"
)

// CallStarted marks that the call is connected.
type CallStarted struct{ Base }

// NewCallStarted creates a call started event.
func NewCallStarted() CallStarted {
	return CallStarted{Base: NewBase(KindCallStart)}
}

// CallEnded marks that the call ended.
type CallEnded struct{ Base }

// NewCallEnded creates a call ended event.
func NewCallEnded() CallEnded {
	return CallEnded{Base: NewBase(KindCallEnd)}
}

// Error carries a session failure. Message is empty when the session did not
// provide a human readable reason.
type Error struct {
	Base
	Message string
}

// NewError creates an error event.
func NewError(message string) Error {
	return Error{Base: NewBase(KindError), Message: message}
}

// HasMessage reports whether the failure came with a displayable message.
func (e Error) HasMessage() bool { return e.Message != "" }
