// Package assistant describes the assistant a call is started with.
//
// Options is opaque to the adapter: it is handed to the session unmodified and
// serializes to the JSON shape the hosted assistant expects.
package assistant

import (
	"fmt"

	"github.com/jinzhu/copier"
)

type Options struct {
	Name                      string      `json:"name" yaml:"name"`
	Voice                     Voice       `json:"voice" yaml:"voice"`
	Model                     Model       `json:"model" yaml:"model"`
	RecordingEnabled          bool        `json:"recordingEnabled" yaml:"recordingEnabled"`
	FirstMessage              string      `json:"firstMessage" yaml:"firstMessage"`
	VoicemailMessage          string      `json:"voicemailMessage" yaml:"voicemailMessage"`
	EndCallFunctionEnabled    bool        `json:"endCallFunctionEnabled" yaml:"endCallFunctionEnabled"`
	EndCallMessage            string      `json:"endCallMessage" yaml:"endCallMessage"`
	Transcriber               Transcriber `json:"transcriber" yaml:"transcriber"`
	ClientMessages            []string    `json:"clientMessages" yaml:"clientMessages"`
	ServerMessages            []string    `json:"serverMessages" yaml:"serverMessages"`
	DialKeypadFunctionEnabled bool        `json:"dialKeypadFunctionEnabled" yaml:"dialKeypadFunctionEnabled"`
	EndCallPhrases            []string    `json:"endCallPhrases" yaml:"endCallPhrases"`
	HipaaEnabled              bool        `json:"hipaaEnabled" yaml:"hipaaEnabled"`
	VoicemailDetectionEnabled bool        `json:"voicemailDetectionEnabled" yaml:"voicemailDetectionEnabled"`
}

type Voice struct {
	VoiceID         string  `json:"voiceId" yaml:"voiceId"`
	Provider        string  `json:"provider" yaml:"provider"`
	Stability       float64 `json:"stability" yaml:"stability"`
	SimilarityBoost float64 `json:"similarityBoost" yaml:"similarityBoost"`
}

type Model struct {
	Model    string    `json:"model" yaml:"model"`
	Messages []Message `json:"messages" yaml:"messages"`
	Provider string    `json:"provider" yaml:"provider"`
	// Functions are the UI functions the assistant may call. They are fixed
	// because the adapter has to know how to execute every one of them.
	Functions                 []Function `json:"functions" yaml:"-"`
	MaxTokens                 int        `json:"maxTokens" yaml:"maxTokens"`
	Temperature               float64    `json:"temperature" yaml:"temperature"`
	EmotionRecognitionEnabled bool       `json:"emotionRecognitionEnabled" yaml:"emotionRecognitionEnabled"`
}

type Message struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

type Transcriber struct {
	Model    string   `json:"model" yaml:"model"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Language string   `json:"language" yaml:"language"`
	Provider string   `json:"provider" yaml:"provider"`
}

// Clone returns a deep copy of the options. Function parameter schemas are
// shared, they are never mutated after construction.
func (o Options) Clone() (Options, error) {
	var clone Options
	if err := copier.CopyWithOption(&clone, &o, copier.Option{DeepCopy: true}); err != nil {
		return Options{}, fmt.Errorf("failed to copy assistant options: %w", err)
	}

	for i := range clone.Model.Functions {
		clone.Model.Functions[i].Parameters = o.Model.Functions[i].Parameters
	}
	// copier leaves nil where the source had an empty list, which would
	// serialize as null instead of [].
	clone.ClientMessages = nonNil(clone.ClientMessages)
	clone.ServerMessages = nonNil(clone.ServerMessages)
	clone.EndCallPhrases = nonNil(clone.EndCallPhrases)
	clone.Transcriber.Keywords = nonNil(clone.Transcriber.Keywords)
	clone.Model.Messages = nonNil(clone.Model.Messages)
	clone.Model.Functions = nonNil(clone.Model.Functions)

	return clone, nil
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
