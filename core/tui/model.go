package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/koscakluka/ema-callui/core/callui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// chromeHeight is everything above and below the transcript box.
	chromeHeight = 14
)

// Controller is the part of the adapter the model drives.
type Controller interface {
	Mount()
	ToggleCall(ctx context.Context) error
}

// Model renders the call surface. Its fields only change in Update, from
// messages a bound [Surface] sends.
type Model struct {
	ctx        context.Context
	controller Controller
	title      string

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	width    int

	calling           bool
	status            string
	speaker           string
	volume            string
	typedText         string
	statusMessage     string
	triggerBackground string
	glow              callui.Glow
	transcript        []callui.TranscriptEntry
	notice            string
}

type ModelOption func(*Model)

// WithTitle sets the heading, usually the assistant name.
func WithTitle(title string) ModelOption {
	return func(m *Model) { m.title = title }
}

// WithContext sets the context toggles run with.
func WithContext(ctx context.Context) ModelOption {
	return func(m *Model) { m.ctx = ctx }
}

func NewModel(controller Controller, opts ...ModelOption) Model {
	m := Model{
		ctx:               context.Background(),
		controller:        controller,
		title:             "Call",
		keys:              defaultKeyMap(),
		help:              help.New(),
		viewport:          viewport.New(defaultWidth-2, defaultHeight-chromeHeight),
		width:             defaultWidth,
		triggerBackground: callui.IdleTriggerColor,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init mounts the controller. It runs once the program is started, so the
// initial render reaches a bound surface.
func (m Model) Init() tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		controller.Mount()
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.viewport.Width = max(msg.Width-2, 10)
		m.viewport.Height = max(msg.Height-chromeHeight, 3)
		m.viewport.SetContent(renderTranscript(m.transcript, m.viewport.Width))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.calling = !m.calling
			m.notice = ""
			return m, m.toggle()
		case key.Matches(msg, m.keys.Copy):
			return m, copyTranscript(plainTranscript(m.transcript))
		}

	case StatusMsg:
		m.status = msg.Text
		return m, nil
	case SpeakerMsg:
		m.speaker = msg.Text
		return m, nil
	case VolumeMsg:
		m.volume = msg.Text
		return m, nil
	case TypedTextMsg:
		m.typedText = msg.Text
		return m, nil
	case StatusMessageMsg:
		m.statusMessage = msg.Text
		return m, nil
	case TriggerBackgroundMsg:
		m.triggerBackground = msg.Color
		return m, nil
	case TriggerGlowMsg:
		m.glow = msg.Glow
		return m, nil
	case TranscriptMsg:
		m.transcript = msg.Entries
		m.viewport.SetContent(renderTranscript(m.transcript, m.viewport.Width))
		return m, nil
	case ScrollToBottomMsg:
		m.viewport.GotoBottom()
		return m, nil

	case toggleResultMsg:
		if msg.err != nil {
			m.notice = "toggle failed: " + msg.err.Error()
		}
		return m, nil
	case copyResultMsg:
		if msg.err != nil {
			m.notice = "copy failed: " + msg.err.Error()
		} else {
			m.notice = "transcript copied"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// toggle runs off the event loop: the adapter renders while toggling and
// every render is a message back into this program.
func (m Model) toggle() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		return toggleResultMsg{err: controller.ToggleCall(ctx)}
	}
}

func copyTranscript(text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{err: clipboard.WriteAll(text)}
	}
}

func (m Model) View() string {
	label := "Start call"
	if m.calling {
		label = "End call"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(statusLineStyle.Render(strings.Join(nonEmpty(m.status, m.speaker, m.volume), "  ·  ")))
	b.WriteString("\n\n")
	b.WriteString(renderTrigger(label, m.triggerBackground, m.glow))
	b.WriteString("\n")
	if m.typedText != "" {
		b.WriteString(typedTextStyle.Render(m.typedText))
	}
	b.WriteString("\n")
	if m.statusMessage != "" {
		b.WriteString(statusMessageStyle.Render(m.statusMessage))
	}
	b.WriteString("\n")
	b.WriteString(transcriptStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().MaxWidth(max(m.width, 1)).Render(b.String())
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, value := range values {
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
