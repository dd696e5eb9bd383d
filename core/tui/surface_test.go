package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/koscakluka/ema-callui/core/callui"
)

func TestSurfaceDropsUpdatesUntilBound(t *testing.T) {
	surface := NewSurface()
	surface.SetStatus("Status: Connected")

	var sent []tea.Msg
	surface.bind(func(msg tea.Msg) { sent = append(sent, msg) })
	surface.SetStatus("Status: Disconnected")

	if len(sent) != 1 {
		t.Fatalf("expected exactly one message after binding, got %d", len(sent))
	}
	if got, ok := sent[0].(StatusMsg); !ok || got.Text != "Status: Disconnected" {
		t.Fatalf("unexpected message %#v", sent[0])
	}
}

func TestSurfaceSendsOneMessagePerTarget(t *testing.T) {
	var sent []tea.Msg
	surface := NewSurface()
	surface.bind(func(msg tea.Msg) { sent = append(sent, msg) })

	var _ callui.Targets = surface

	surface.SetStatus("status")
	surface.SetSpeaker("speaker")
	surface.SetVolume("volume")
	surface.SetTypedText("typed")
	surface.SetStatusMessage("message")
	surface.SetTriggerBackground("#ff0000")
	surface.SetTriggerGlow(callui.Glow{Radius: 3, Spread: 1.5})
	surface.ReplaceTranscript(nil)
	surface.ScrollTranscriptToBottom()

	want := []tea.Msg{
		StatusMsg{Text: "status"},
		SpeakerMsg{Text: "speaker"},
		VolumeMsg{Text: "volume"},
		TypedTextMsg{Text: "typed"},
		StatusMessageMsg{Text: "message"},
		TriggerBackgroundMsg{Color: "#ff0000"},
		TriggerGlowMsg{Glow: callui.Glow{Radius: 3, Spread: 1.5}},
		TranscriptMsg{},
		ScrollToBottomMsg{},
	}
	if len(sent) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(sent))
	}
	for i := range want {
		if _, ok := want[i].(TranscriptMsg); ok {
			if _, ok := sent[i].(TranscriptMsg); !ok {
				t.Fatalf("message %d: expected TranscriptMsg, got %#v", i, sent[i])
			}
			continue
		}
		if sent[i] != want[i] {
			t.Fatalf("message %d: expected %#v, got %#v", i, want[i], sent[i])
		}
	}
}

func TestSurfaceReplaceTranscriptCopiesEntries(t *testing.T) {
	var sent []tea.Msg
	surface := NewSurface()
	surface.bind(func(msg tea.Msg) { sent = append(sent, msg) })

	entries := []callui.TranscriptEntry{{Classes: []string{"message", "user"}, Text: "hello"}}
	surface.ReplaceTranscript(entries)
	entries[0] = callui.TranscriptEntry{Text: "changed"}

	got := sent[0].(TranscriptMsg).Entries
	if len(got) != 1 || got[0].Text != "hello" {
		t.Fatalf("expected the sent transcript to be a copy, got %#v", got)
	}
}
