package events

import (
	"encoding/json"
	"fmt"
)

// KindMessage identifies a client message from the assistant.
const KindMessage Kind = "message"

type MessageType string

const (
	MessageTypeFunctionCall       MessageType = "function-call"
	MessageTypeConversationUpdate MessageType = "conversation-update"
	MessageTypeTranscript         MessageType = "transcript"
	MessageTypeHang               MessageType = "hang"
	MessageTypeSpeechUpdate       MessageType = "speech-update"
	MessageTypeMetadata           MessageType = "metadata"
)

// Message carries a client message. Only the fields relevant to Type are
// populated.
type Message struct {
	Base `json:"-"`

	Type MessageType `json:"type"`
	// FunctionCall is set for function-call messages. It can still be nil
	// when the assistant sent a malformed message.
	FunctionCall *FunctionCall `json:"functionCall,omitempty"`
	// Conversation is the full conversation snapshot of a
	// conversation-update message.
	Conversation []Turn `json:"conversation,omitempty"`
}

// NewMessage creates a message event.
func NewMessage(messageType MessageType) Message {
	return Message{Base: NewBase(KindMessage), Type: messageType}
}

// NewFunctionCallMessage creates a function-call message event.
func NewFunctionCallMessage(name string, parameters map[string]any) Message {
	msg := NewMessage(MessageTypeFunctionCall)
	msg.FunctionCall = &FunctionCall{Name: name, Parameters: parameters}
	return msg
}

// NewConversationUpdateMessage creates a conversation-update message event.
func NewConversationUpdateMessage(conversation ...Turn) Message {
	msg := NewMessage(MessageTypeConversationUpdate)
	msg.Conversation = conversation
	return msg
}

// ParseMessage decodes the body of a message event.
func ParseMessage(data []byte) (Message, error) {
	msg := Message{Base: NewBase(KindMessage)}
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("failed to decode message: %w", err)
	}
	if msg.Type == "" {
		return Message{}, fmt.Errorf("message without type")
	}
	return msg, nil
}

// FunctionCall is an assistant invocation of a declared UI function.
type FunctionCall struct {
	Name string `json:"name"`
	// Parameters is nil when the assistant sent none.
	Parameters map[string]any `json:"parameters"`
}

// StringParameter returns the named parameter when it is present and a
// string.
func (f FunctionCall) StringParameter(name string) (string, error) {
	if f.Parameters == nil {
		return "", fmt.Errorf("function %q called without parameters", f.Name)
	}
	value, ok := f.Parameters[name]
	if !ok {
		return "", fmt.Errorf("function %q called without parameter %q", f.Name, name)
	}
	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("function %q parameter %q is %T, not a string", f.Name, name, value)
	}
	return text, nil
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Turn is one entry of a conversation snapshot.
type Turn struct {
	Role Role `json:"role"`
	// Content is empty while the turn only carries tool calls.
	Content   string     `json:"content,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// HasPendingToolCalls reports whether the turn is waiting on tool calls
// instead of carrying text.
func (t Turn) HasPendingToolCalls() bool {
	return len(t.ToolCalls) > 0
}

type ToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type,omitempty"`
	Function ToolCallFunction `json:"function"`
}

type ToolCallFunction struct {
	Name string `json:"name"`
	// Arguments is kept raw, assistants send both encoded strings and
	// objects here.
	Arguments json.RawMessage `json:"arguments,omitempty"`
}
