// Package callui reflects an assistant session into a set of UI targets.
//
// The adapter owns the session state, applies each session event exactly once
// as a state change followed by a render, and toggles the call on user
// request.
package callui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/koscakluka/ema-callui/core/assistant"
	"github.com/koscakluka/ema-callui/core/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrMalformedMessage wraps function calls whose parameters are missing or
// not strings.
var ErrMalformedMessage = errors.New("malformed message")

// Session is the assistant session capability the adapter drives.
type Session interface {
	Start(ctx context.Context, options assistant.Options) error
	Stop(ctx context.Context) error
	On(kind events.Kind, handler func(events.Event))
}

// Targets are the presentation elements the adapter writes into. They are
// bound once and live as long as the adapter.
type Targets interface {
	SetStatus(text string)
	SetSpeaker(text string)
	SetVolume(text string)
	SetTypedText(text string)
	SetStatusMessage(text string)
	SetTriggerBackground(color string)
	SetTriggerGlow(glow Glow)
	ReplaceTranscript(entries []TranscriptEntry)
	ScrollTranscriptToBottom()
}

// Adapter connects a session to its targets. Create it with [NewAdapter].
type Adapter struct {
	session   Session
	targets   Targets
	assistant assistant.Options
	sanitizer Sanitizer
	clone     func(assistant.Options) (assistant.Options, error)

	mu    sync.Mutex
	state State
}

// AdapterOption configures an [Adapter].
type AdapterOption func(*Adapter)

// WithAssistant sets the options calls are started with. Defaults to
// [assistant.Default].
func WithAssistant(options assistant.Options) AdapterOption {
	return func(a *Adapter) { a.assistant = options }
}

// WithSanitizer puts a sanitizer between function call parameters and the
// targets. Defaults to [Passthrough].
func WithSanitizer(sanitizer Sanitizer) AdapterOption {
	return func(a *Adapter) {
		if sanitizer == nil {
			sanitizer = Passthrough{}
		}
		a.sanitizer = sanitizer
	}
}

// NewAdapter subscribes to every session event. Nothing is rendered until
// [Adapter.Mount].
func NewAdapter(session Session, targets Targets, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		session:   session,
		targets:   targets,
		assistant: assistant.Default(),
		sanitizer: Passthrough{},
		clone:     assistant.Options.Clone,
	}
	for _, opt := range opts {
		opt(a)
	}

	for _, kind := range events.Kinds() {
		session.On(kind, a.handle)
	}
	return a
}

// Mount paints the idle trigger and the initial state.
func (a *Adapter) Mount() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.targets.SetTriggerBackground(IdleTriggerColor)
	a.render()
}

// State returns a copy of the current state.
func (a *Adapter) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// ToggleCall starts a call when none is active and stops it otherwise.
//
// The state flips before the session is asked, and is not rolled back when
// the session fails: sessions report failures as error events, which is where
// the surface learns about them. The session error is returned as is.
// Nothing prevents a fast double toggle from starting and stopping a call
// back to back.
func (a *Adapter) ToggleCall(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "toggle call")
	defer span.End()

	a.mu.Lock()
	active := !a.state.CallActive
	var options assistant.Options
	if active {
		// Nothing changes unless a start is actually issued.
		var err error
		if options, err = a.clone(a.assistant); err != nil {
			a.mu.Unlock()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	a.state.CallActive = active
	if active {
		a.targets.SetTriggerBackground(ActiveTriggerColor)
	} else {
		a.targets.SetTriggerBackground(IdleTriggerColor)
	}
	a.mu.Unlock()
	span.SetAttributes(attribute.Bool("call.active", active))

	// The session is called without the lock, it may emit events inline.
	var err error
	if active {
		err = a.session.Start(ctx, options)
	} else {
		err = a.session.Stop(ctx)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (a *Adapter) handle(event events.Event) {
	if err := a.HandleEvent(event); err != nil {
		logger.Warn("failed to apply session event", "kind", string(event.Kind()), "error", err)
	}
}

// HandleEvent applies a single session event to the state and targets.
func (a *Adapter) HandleEvent(event events.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch typed := event.(type) {
	case events.CallStarted:
		a.state.Connected = true
		a.render()
	case events.CallEnded:
		a.state.Connected = false
		a.render()
		a.targets.SetTriggerGlow(Glow{})
	case events.SpeechStarted:
		a.state.Speaking = true
		a.render()
	case events.SpeechEnded:
		a.state.Speaking = false
		a.render()
	case events.VolumeLevel:
		a.state.VolumeLevel = typed.Level
		a.targets.SetVolume(VolumeText(typed.Level))
		a.targets.SetTriggerGlow(GlowFor(typed.Level))
	case events.Message:
		return a.handleMessage(typed)
	case events.Error:
		a.state.Connected = false
		if typed.HasMessage() {
			a.targets.SetStatusMessage(typed.Message)
		}
		a.render()
	default:
		return fmt.Errorf("unsupported event %T", event)
	}
	return nil
}

func (a *Adapter) handleMessage(msg events.Message) error {
	switch msg.Type {
	case events.MessageTypeFunctionCall:
		if msg.FunctionCall == nil {
			return nil
		}
		return a.callFunction(*msg.FunctionCall)
	case events.MessageTypeConversationUpdate:
		a.targets.ReplaceTranscript(RenderTranscript(msg.Conversation))
		a.targets.ScrollTranscriptToBottom()
	}
	return nil
}

func (a *Adapter) callFunction(call events.FunctionCall) error {
	switch call.Name {
	case assistant.FunctionChangeColor:
		colorCode, err := call.StringParameter(assistant.ParameterColorCode)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedMessage, err)
		}
		color, err := a.sanitizer.Color(colorCode)
		if err != nil {
			return err
		}
		a.targets.SetTriggerBackground(color)
	case assistant.FunctionWriteText:
		text, err := call.StringParameter(assistant.ParameterText)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedMessage, err)
		}
		a.targets.SetTypedText(a.sanitizer.Text(text))
	}
	return nil
}

// render must be called with the lock held.
func (a *Adapter) render() {
	view := Render(a.state)
	a.targets.SetStatus(view.Status)
	a.targets.SetSpeaker(view.Speaker)
}
