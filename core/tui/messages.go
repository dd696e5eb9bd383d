package tui

import "github.com/koscakluka/ema-callui/core/callui"

// Messages sent into the program by Surface, one per target.
type (
	StatusMsg            struct{ Text string }
	SpeakerMsg           struct{ Text string }
	VolumeMsg            struct{ Text string }
	TypedTextMsg         struct{ Text string }
	StatusMessageMsg     struct{ Text string }
	TriggerBackgroundMsg struct{ Color string }
	TriggerGlowMsg       struct{ Glow callui.Glow }
	TranscriptMsg        struct{ Entries []callui.TranscriptEntry }
	ScrollToBottomMsg    struct{}
)

type toggleResultMsg struct{ err error }

type copyResultMsg struct{ err error }
