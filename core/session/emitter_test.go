package session

import (
	"testing"

	"github.com/koscakluka/ema-callui/core/events"
)

func TestEmitterDispatchesByKindInRegistrationOrder(t *testing.T) {
	var emitter Emitter
	var calls []string

	emitter.On(events.KindCallStart, func(events.Event) { calls = append(calls, "first") })
	emitter.On(events.KindCallStart, func(events.Event) { calls = append(calls, "second") })
	emitter.On(events.KindCallEnd, func(events.Event) { calls = append(calls, "end") })
	emitter.On(events.KindCallEnd, nil)

	emitter.Emit(events.NewCallStarted())

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("expected call-start handlers in order, got %v", calls)
	}

	emitter.Emit(events.NewCallEnded())
	if len(calls) != 3 || calls[2] != "end" {
		t.Fatalf("expected call-end handler once, got %v", calls)
	}
}

func TestEmitterWithoutHandlersIsNoop(t *testing.T) {
	var emitter Emitter
	emitter.Emit(events.NewSpeechStarted())
}
