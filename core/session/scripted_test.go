package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/koscakluka/ema-callui/core/assistant"
	"github.com/koscakluka/ema-callui/core/events"
)

type kindRecorder struct {
	mu    sync.Mutex
	kinds []events.Kind
}

func recordKinds(s *Scripted) *kindRecorder {
	recorder := &kindRecorder{}
	for _, kind := range events.Kinds() {
		s.On(kind, func(event events.Event) {
			recorder.mu.Lock()
			recorder.kinds = append(recorder.kinds, event.Kind())
			recorder.mu.Unlock()
		})
	}
	return recorder
}

func (r *kindRecorder) snapshot() []events.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Kind(nil), r.kinds...)
}

func TestScriptedPlaysCallUntilStopped(t *testing.T) {
	s := NewScripted(WithScriptStep(time.Millisecond))
	recorder := recordKinds(s)

	if err := s.Start(context.Background(), assistant.Default()); err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		kinds := recorder.snapshot()
		if len(kinds) >= len(script(assistant.Default())) {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for the script, got %d events", len(kinds))
		case <-time.After(5 * time.Millisecond):
		}
	}

	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}

	kinds := recorder.snapshot()
	if kinds[0] != events.KindCallStart {
		t.Fatalf("expected script to start with call-start, got %q", kinds[0])
	}
	if kinds[len(kinds)-1] != events.KindCallEnd {
		t.Fatalf("expected script to end with call-end, got %q", kinds[len(kinds)-1])
	}

	callEnds := 0
	messages := 0
	for _, kind := range kinds {
		switch kind {
		case events.KindCallEnd:
			callEnds++
		case events.KindMessage:
			messages++
		}
	}
	if callEnds != 1 {
		t.Fatalf("expected exactly one call-end, got %d", callEnds)
	}
	if messages == 0 {
		t.Fatalf("expected scripted messages")
	}
}

func TestScriptedStopEndsCallEarly(t *testing.T) {
	s := NewScripted(WithScriptStep(time.Hour))
	recorder := recordKinds(s)

	if err := s.Start(context.Background(), assistant.Default()); err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}
	if err := s.Start(context.Background(), assistant.Default()); !errors.Is(err, ErrCallInProgress) {
		t.Fatalf("expected call in progress error, got %v", err)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}

	kinds := recorder.snapshot()
	if len(kinds) != 2 || kinds[0] != events.KindError || kinds[1] != events.KindCallEnd {
		t.Fatalf("expected error then call-end, got %v", kinds)
	}

	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("expected second stop to be a no-op, got %v", err)
	}
	if len(recorder.snapshot()) != 2 {
		t.Fatalf("expected no events from second stop")
	}
}

func TestScriptedCallIDPerCall(t *testing.T) {
	s := NewScripted(WithScriptStep(time.Hour))

	if id := s.CallID(); id != "" {
		t.Fatalf("expected no call id while idle, got %q", id)
	}

	ids := make([]string, 0, 2)
	for range 2 {
		if err := s.Start(context.Background(), assistant.Default()); err != nil {
			t.Fatalf("unexpected start error: %v", err)
		}
		id := s.CallID()
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected a uuid call id, got %q: %v", id, err)
		}
		ids = append(ids, id)

		if err := s.Stop(context.Background()); err != nil {
			t.Fatalf("unexpected stop error: %v", err)
		}
		if id := s.CallID(); id != "" {
			t.Fatalf("expected the call id to be cleared after stop, got %q", id)
		}
	}

	if ids[0] == ids[1] {
		t.Fatalf("expected a new call id per call, got %q twice", ids[0])
	}
}

func TestVolumeSwellStaysInRange(t *testing.T) {
	for _, event := range volumeSwell(8) {
		level := event.(events.VolumeLevel).Level
		if level < 0 || level > 1 {
			t.Fatalf("expected level in [0,1], got %v", level)
		}
	}
}
