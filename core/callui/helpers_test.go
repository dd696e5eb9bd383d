package callui

import (
	"context"
	"fmt"

	"github.com/koscakluka/ema-callui/core/assistant"
	"github.com/koscakluka/ema-callui/core/events"
)

type fakeSession struct {
	handlers map[events.Kind][]func(events.Event)

	starts   []assistant.Options
	stops    int
	startErr error
	stopErr  error
}

func newFakeSession() *fakeSession {
	return &fakeSession{handlers: map[events.Kind][]func(events.Event){}}
}

func (s *fakeSession) Start(_ context.Context, options assistant.Options) error {
	s.starts = append(s.starts, options)
	return s.startErr
}

func (s *fakeSession) Stop(context.Context) error {
	s.stops++
	return s.stopErr
}

func (s *fakeSession) On(kind events.Kind, handler func(events.Event)) {
	s.handlers[kind] = append(s.handlers[kind], handler)
}

func (s *fakeSession) emit(event events.Event) {
	for _, handler := range s.handlers[event.Kind()] {
		handler(event)
	}
}

// recordingTargets keeps the latest value of every target and a log of all
// writes.
type recordingTargets struct {
	status            string
	speaker           string
	volume            string
	typedText         string
	statusMessage     string
	triggerBackground string
	glow              Glow
	transcript        []TranscriptEntry
	scrolledToBottom  bool

	writes []string
}

func (r *recordingTargets) SetStatus(text string) {
	r.status = text
	r.writes = append(r.writes, "status="+text)
}

func (r *recordingTargets) SetSpeaker(text string) {
	r.speaker = text
	r.writes = append(r.writes, "speaker="+text)
}

func (r *recordingTargets) SetVolume(text string) {
	r.volume = text
	r.writes = append(r.writes, "volume="+text)
}

func (r *recordingTargets) SetTypedText(text string) {
	r.typedText = text
	r.writes = append(r.writes, "typed="+text)
}

func (r *recordingTargets) SetStatusMessage(text string) {
	r.statusMessage = text
	r.writes = append(r.writes, "statusMessage="+text)
}

func (r *recordingTargets) SetTriggerBackground(color string) {
	r.triggerBackground = color
	r.writes = append(r.writes, "background="+color)
}

func (r *recordingTargets) SetTriggerGlow(glow Glow) {
	r.glow = glow
	r.writes = append(r.writes, fmt.Sprintf("glow=%g/%g", glow.Radius, glow.Spread))
}

func (r *recordingTargets) ReplaceTranscript(entries []TranscriptEntry) {
	r.transcript = entries
	r.scrolledToBottom = false
	r.writes = append(r.writes, fmt.Sprintf("transcript=%d", len(entries)))
}

func (r *recordingTargets) ScrollTranscriptToBottom() {
	r.scrolledToBottom = true
	r.writes = append(r.writes, "scroll")
}

func newTestAdapter(opts ...AdapterOption) (*Adapter, *fakeSession, *recordingTargets) {
	session := newFakeSession()
	targets := &recordingTargets{}
	return NewAdapter(session, targets, opts...), session, targets
}
