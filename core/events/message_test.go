package events

import "testing"

func TestParseMessageFunctionCall(t *testing.T) {
	msg, err := ParseMessage([]byte(`{"type":"function-call","functionCall":{"name":"ChangeColor","parameters":{"ColorCode":"#ff0000"}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Kind() != KindMessage {
		t.Fatalf("expected kind %q, got %q", KindMessage, msg.Kind())
	}
	if msg.Type != MessageTypeFunctionCall {
		t.Fatalf("expected function-call, got %q", msg.Type)
	}
	if msg.FunctionCall == nil || msg.FunctionCall.Name != "ChangeColor" {
		t.Fatalf("expected ChangeColor function call, got %+v", msg.FunctionCall)
	}
	colorCode, err := msg.FunctionCall.StringParameter("ColorCode")
	if err != nil {
		t.Fatalf("unexpected parameter error: %v", err)
	}
	if colorCode != "#ff0000" {
		t.Fatalf("expected #ff0000, got %q", colorCode)
	}
}

func TestParseMessageConversationUpdate(t *testing.T) {
	msg, err := ParseMessage([]byte(`{
		"type": "conversation-update",
		"conversation": [
			{"role": "system", "content": "persona"},
			{"role": "user", "content": "Hi"},
			{"role": "assistant", "content": null, "tool_calls": [{"id": "call_1", "type": "function", "function": {"name": "WriteText", "arguments": "{\"Text\":\"hey\"}"}}]},
			{"role": "tool", "content": "done"}
		]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(msg.Conversation) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(msg.Conversation))
	}
	if msg.Conversation[1].Role != RoleUser || msg.Conversation[1].Content != "Hi" {
		t.Fatalf("unexpected user turn: %+v", msg.Conversation[1])
	}
	pending := msg.Conversation[2]
	if pending.Content != "" || !pending.HasPendingToolCalls() {
		t.Fatalf("expected assistant turn with pending tool calls, got %+v", pending)
	}
	if pending.ToolCalls[0].Function.Name != "WriteText" {
		t.Fatalf("expected WriteText tool call, got %q", pending.ToolCalls[0].Function.Name)
	}
}

func TestParseMessageRejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{`},
		{name: "missing type", data: `{"functionCall":{"name":"WriteText"}}`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := ParseMessage([]byte(testCase.data)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestStringParameter(t *testing.T) {
	testCases := []struct {
		name      string
		call      FunctionCall
		expectErr bool
	}{
		{name: "present", call: FunctionCall{Name: "WriteText", Parameters: map[string]any{"Text": "hello"}}},
		{name: "no parameters", call: FunctionCall{Name: "WriteText"}, expectErr: true},
		{name: "missing", call: FunctionCall{Name: "WriteText", Parameters: map[string]any{}}, expectErr: true},
		{name: "not a string", call: FunctionCall{Name: "WriteText", Parameters: map[string]any{"Text": 3.0}}, expectErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := testCase.call.StringParameter("Text")
			if testCase.expectErr && err == nil {
				t.Fatalf("expected error")
			}
			if !testCase.expectErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
