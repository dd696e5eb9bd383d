package events

const (
	// KindSpeechStart identifies the assistant starting to speak.
	KindSpeechStart Kind = "speech-start"
	// KindSpeechEnd identifies the assistant finishing speaking.
	KindSpeechEnd Kind = "speech-end"
	// KindVolumeLevel identifies an output volume sample.
	KindVolumeLevel Kind = "volume-level"
)

// SpeechStarted marks when the assistant starts speaking.
type SpeechStarted struct{ Base }

// NewSpeechStarted creates a speech started event.
func NewSpeechStarted() SpeechStarted {
	return SpeechStarted{Base: NewBase(KindSpeechStart)}
}

// SpeechEnded marks when the assistant stops speaking.
type SpeechEnded struct{ Base }

// NewSpeechEnded creates a speech ended event.
func NewSpeechEnded() SpeechEnded {
	return SpeechEnded{Base: NewBase(KindSpeechEnd)}
}

// VolumeLevel carries the current volume, from 0.0 to 1.0.
type VolumeLevel struct {
	Base
	Level float64
}

// NewVolumeLevel creates a volume level event.
func NewVolumeLevel(level float64) VolumeLevel {
	return VolumeLevel{Base: NewBase(KindVolumeLevel), Level: level}
}
