package callui

import (
	"fmt"

	"github.com/koscakluka/ema-callui/core/events"
)

const (
	// MaxGlowIntensity is the glow radius at full volume.
	MaxGlowIntensity = 30.0

	// ActiveTriggerColor is the trigger background while a call is active.
	ActiveTriggerColor = "#007aff"
	// IdleTriggerColor is the trigger background while no call is active.
	IdleTriggerColor = "#858585"
	// GlowColor is the colour of the trigger glow.
	GlowColor = "rgba(58,25,250,0.7)"

	// PendingToolCallsText stands in for a turn that only carries tool calls.
	PendingToolCallsText = "Processing request..."

	speakerAssistant = "Assistant"
	speakerUser      = "User"
)

// State is the whole session state of an adapter. The flags are independent,
// any combination can be observed.
type State struct {
	Connected   bool
	Speaking    bool
	VolumeLevel float64
	CallActive  bool
}

// View is the rendered text of the status and speaker targets.
type View struct {
	Status  string
	Speaker string
}

// Render maps state to the status and speaker texts.
func Render(state State) View {
	status := "Disconnected"
	if state.Connected {
		status = "Connected"
	}
	speaker := speakerUser
	if state.Speaking {
		speaker = speakerAssistant
	}

	return View{
		Status:  "Status: " + status,
		Speaker: "Speaker: " + speaker,
	}
}

// Glow is the visual glow around the call trigger.
type Glow struct {
	Radius float64
	Spread float64
}

// GlowFor returns the glow proportional to a volume level.
func GlowFor(level float64) Glow {
	intensity := level * MaxGlowIntensity
	return Glow{Radius: intensity, Spread: intensity / 2}
}

// IsZero reports whether the glow is off.
func (g Glow) IsZero() bool { return g.Radius == 0 && g.Spread == 0 }

// CSS renders the glow as a box-shadow value.
func (g Glow) CSS() string {
	return fmt.Sprintf("0 0 %gpx %gpx %s", g.Radius, g.Spread, GlowColor)
}

// VolumeText renders a volume level with three decimals.
func VolumeText(level float64) string {
	return fmt.Sprintf("Volume: %.3f", level)
}

// TranscriptEntry is one rendered conversation turn.
type TranscriptEntry struct {
	// Classes always contains "message", followed by the role class for
	// assistant, user and tool turns.
	Classes []string
	Text    string
}

// Role returns the role class of the entry, or "" when it has none.
func (e TranscriptEntry) Role() string {
	if len(e.Classes) < 2 {
		return ""
	}
	return e.Classes[1]
}

// RenderTranscript renders every turn, in order.
func RenderTranscript(conversation []events.Turn) []TranscriptEntry {
	entries := make([]TranscriptEntry, 0, len(conversation))
	for _, turn := range conversation {
		entry := TranscriptEntry{Classes: []string{"message"}}

		switch turn.Role {
		case events.RoleAssistant, events.RoleUser, events.RoleTool:
			entry.Classes = append(entry.Classes, string(turn.Role))
		}

		if turn.Content != "" {
			entry.Text = turn.Content
		} else if turn.HasPendingToolCalls() {
			entry.Text = PendingToolCallsText
		}

		entries = append(entries, entry)
	}
	return entries
}
