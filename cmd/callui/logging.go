package main

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

const scopeName = "github.com/koscakluka/ema-callui/cmd/callui"

var logger = otelslog.NewLogger(scopeName)

// setupLogging installs the global log provider every package logger writes
// through. Records are exported synchronously, one JSON object per record.
// The returned function flushes and stops the provider.
func setupLogging(w io.Writer) (func(context.Context) error, error) {
	exporter, err := stdoutlog.New(stdoutlog.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create log exporter: %w", err)
	}

	provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)))
	global.SetLoggerProvider(provider)
	return provider.Shutdown, nil
}
