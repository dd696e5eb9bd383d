package tui

import (
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/koscakluka/ema-callui/core/callui"
)

// Surface forwards target updates into a running program. Updates sent
// before the surface is bound are dropped.
type Surface struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

func NewSurface() *Surface {
	return &Surface{}
}

// Bind attaches the program updates are sent to.
func (s *Surface) Bind(program *tea.Program) {
	s.bind(program.Send)
}

func (s *Surface) bind(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

func (s *Surface) dispatch(msg tea.Msg) {
	s.mu.RLock()
	send := s.send
	s.mu.RUnlock()

	if send != nil {
		send(msg)
	}
}

func (s *Surface) SetStatus(text string)        { s.dispatch(StatusMsg{Text: text}) }
func (s *Surface) SetSpeaker(text string)       { s.dispatch(SpeakerMsg{Text: text}) }
func (s *Surface) SetVolume(text string)        { s.dispatch(VolumeMsg{Text: text}) }
func (s *Surface) SetTypedText(text string)     { s.dispatch(TypedTextMsg{Text: text}) }
func (s *Surface) SetStatusMessage(text string) { s.dispatch(StatusMessageMsg{Text: text}) }

func (s *Surface) SetTriggerBackground(color string) {
	s.dispatch(TriggerBackgroundMsg{Color: color})
}

func (s *Surface) SetTriggerGlow(glow callui.Glow) {
	s.dispatch(TriggerGlowMsg{Glow: glow})
}

// ReplaceTranscript copies the entries, the program renders them later.
func (s *Surface) ReplaceTranscript(entries []callui.TranscriptEntry) {
	s.dispatch(TranscriptMsg{Entries: slices.Clone(entries)})
}

func (s *Surface) ScrollTranscriptToBottom() { s.dispatch(ScrollToBottomMsg{}) }

// NewProgram builds a program for model and binds the surface to it.
func NewProgram(model Model, surface *Surface, opts ...tea.ProgramOption) *tea.Program {
	program := tea.NewProgram(model, opts...)
	surface.Bind(program)
	return program
}
