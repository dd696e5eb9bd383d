package session

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/koscakluka/ema-callui/core/assistant"
	"github.com/koscakluka/ema-callui/core/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const defaultScriptStep = 150 * time.Millisecond

// Scripted is an offline session that plays a short recorded-like call. It
// needs no network and is meant for demos and manual testing of surfaces.
type Scripted struct {
	Emitter

	step time.Duration

	mu     sync.Mutex
	callID string
	cancel context.CancelFunc
	done   chan struct{}
}

type ScriptedOption func(*Scripted)

// WithScriptStep sets the delay between two scripted events.
func WithScriptStep(step time.Duration) ScriptedOption {
	return func(s *Scripted) { s.step = step }
}

// NewScripted returns an idle scripted session.
func NewScripted(opts ...ScriptedOption) *Scripted {
	s := &Scripted{step: defaultScriptStep}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start plays the script in the background until it runs out or Stop is
// called. A second start while playing emits an error event.
func (s *Scripted) Start(ctx context.Context, options assistant.Options) error {
	ctx, span := tracer.Start(ctx, "start scripted call")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		span.RecordError(ErrCallInProgress)
		span.SetStatus(codes.Error, ErrCallInProgress.Error())
		s.Emit(events.NewError(ErrCallInProgress.Error()))
		return ErrCallInProgress
	}

	playCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	s.callID = uuid.NewString()
	span.SetAttributes(attribute.String("call.id", s.callID))

	logger.InfoContext(ctx, "scripted call started", "call_id", s.callID, "assistant", options.Name)
	go s.play(playCtx, done, s.callID, script(options))
	return nil
}

// CallID returns the id of the call being played, or "" when idle.
func (s *Scripted) CallID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callID
}

// Stop ends the scripted call and waits for its call-end event.
func (s *Scripted) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}

	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scripted) play(ctx context.Context, done chan struct{}, callID string, steps []events.Event) {
	defer close(done)
	defer func() {
		s.mu.Lock()
		s.callID = ""
		s.cancel = nil
		s.done = nil
		s.mu.Unlock()
		s.Emit(events.NewCallEnded())
		logger.InfoContext(ctx, "scripted call ended", "call_id", callID)
	}()

	ticker := time.NewTicker(s.step)
	defer ticker.Stop()

	for _, event := range steps {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Emit(event)
		}
	}
	<-ctx.Done()
}

func script(options assistant.Options) []events.Event {
	greeting := options.FirstMessage
	steps := []events.Event{
		events.NewCallStarted(),
		events.NewSpeechStarted(),
	}
	steps = append(steps, volumeSwell(8)...)
	steps = append(steps,
		events.NewConversationUpdateMessage(
			events.Turn{Role: events.RoleAssistant, Content: greeting},
		),
		events.NewVolumeLevel(0),
		events.NewSpeechEnded(),
		events.NewConversationUpdateMessage(
			events.Turn{Role: events.RoleAssistant, Content: greeting},
			events.Turn{Role: events.RoleUser, Content: "Can you make the button red and write our tagline?"},
		),
		events.NewConversationUpdateMessage(
			events.Turn{Role: events.RoleAssistant, Content: greeting},
			events.Turn{Role: events.RoleUser, Content: "Can you make the button red and write our tagline?"},
			events.Turn{Role: events.RoleAssistant, ToolCalls: []events.ToolCall{
				{ID: "call_1", Type: "function", Function: events.ToolCallFunction{Name: assistant.FunctionChangeColor}},
			}},
		),
		events.NewFunctionCallMessage(assistant.FunctionChangeColor, map[string]any{
			assistant.ParameterColorCode: "#ff0000",
		}),
		events.NewFunctionCallMessage(assistant.FunctionWriteText, map[string]any{
			assistant.ParameterText: "Luxury, one story at a time.",
		}),
		events.NewSpeechStarted(),
	)
	steps = append(steps, volumeSwell(6)...)
	steps = append(steps,
		events.NewConversationUpdateMessage(
			events.Turn{Role: events.RoleAssistant, Content: greeting},
			events.Turn{Role: events.RoleUser, Content: "Can you make the button red and write our tagline?"},
			events.Turn{Role: events.RoleAssistant, Content: "Done! The button is red and the tagline is on the page."},
		),
		events.NewVolumeLevel(0),
		events.NewSpeechEnded(),
	)
	return steps
}

// volumeSwell rises and falls like a spoken sentence.
func volumeSwell(samples int) []events.Event {
	swell := make([]events.Event, 0, samples)
	for i := range samples {
		level := math.Sin(math.Pi * float64(i+1) / float64(samples+1))
		swell = append(swell, events.NewVolumeLevel(math.Round(level*0.8*1000)/1000))
	}
	return swell
}
