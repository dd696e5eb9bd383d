package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/koscakluka/ema-callui/core/events"
)

var errUnknownFrame = errors.New("unknown frame type")

// frame is one event as it travels over the events socket.
type frame struct {
	Type    events.Kind     `json:"type"`
	Level   *float64        `json:"level,omitempty"`
	Message json.RawMessage `json:"message,omitempty"`
	Error   *frameError     `json:"error,omitempty"`
}

type frameError struct {
	Message string `json:"message,omitempty"`
}

func decodeFrame(data []byte) (events.Event, error) {
	var parsed frame
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}

	switch parsed.Type {
	case events.KindCallStart:
		return events.NewCallStarted(), nil
	case events.KindCallEnd:
		return events.NewCallEnded(), nil
	case events.KindSpeechStart:
		return events.NewSpeechStarted(), nil
	case events.KindSpeechEnd:
		return events.NewSpeechEnded(), nil
	case events.KindVolumeLevel:
		if parsed.Level == nil {
			return nil, fmt.Errorf("volume-level frame without level")
		}
		return events.NewVolumeLevel(*parsed.Level), nil
	case events.KindMessage:
		if len(parsed.Message) == 0 {
			return nil, fmt.Errorf("message frame without message")
		}
		return events.ParseMessage(parsed.Message)
	case events.KindError:
		if parsed.Error == nil {
			return events.NewError(""), nil
		}
		return events.NewError(parsed.Error.Message), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFrame, parsed.Type)
	}
}

// encodeFrame is the inverse of decodeFrame for the events it understands.
func encodeFrame(event events.Event) ([]byte, error) {
	out := frame{Type: event.Kind()}
	switch typed := event.(type) {
	case events.VolumeLevel:
		level := typed.Level
		out.Level = &level
	case events.Message:
		message, err := json.Marshal(typed)
		if err != nil {
			return nil, fmt.Errorf("failed to encode message: %w", err)
		}
		out.Message = message
	case events.Error:
		out.Error = &frameError{Message: typed.Message}
	}
	return json.Marshal(out)
}
