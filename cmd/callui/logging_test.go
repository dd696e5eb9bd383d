package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/koscakluka/ema-callui/core/assistant"
	"github.com/koscakluka/ema-callui/core/callui"
	"github.com/koscakluka/ema-callui/core/events"
	"github.com/koscakluka/ema-callui/core/session"
	"github.com/koscakluka/ema-callui/core/tui"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// The global provider delegates only once per process, so this is the only
// test that installs it.
func TestSetupLoggingReachesPackageLoggers(t *testing.T) {
	var sink lockedBuffer
	shutdown, err := setupLogging(&sink)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	sess := session.NewScripted()
	callui.NewAdapter(sess, tui.NewSurface())

	// A colour change without its parameter is logged by the adapter.
	sess.Emit(events.NewFunctionCallMessage(assistant.FunctionChangeColor, map[string]any{}))

	logged := sink.String()
	if !strings.Contains(logged, "failed to apply session event") {
		t.Fatalf("expected the adapter log line in the sink, got %q", logged)
	}
	if !strings.Contains(logged, "github.com/koscakluka/ema-callui/core/callui") {
		t.Fatalf("expected the record to carry the adapter scope, got %q", logged)
	}

	logger.Info("cmd line")
	if !strings.Contains(sink.String(), "cmd line") {
		t.Fatalf("expected the command logger to reach the sink")
	}
}
