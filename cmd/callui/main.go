// Command callui is a terminal front-end for a hosted voice assistant call.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/koscakluka/ema-callui/core/assistant"
	"github.com/koscakluka/ema-callui/core/callui"
	"github.com/koscakluka/ema-callui/core/session"
	"github.com/koscakluka/ema-callui/core/tui"
	"github.com/koscakluka/ema-callui/internal/dotenv"
)

func main() {
	os.Exit(runMain(context.Background(), os.Args[1:], os.Stderr))
}

func runMain(ctx context.Context, args []string, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "callui: %v\n", err)
		return 2
	}

	if err := dotenv.LoadFile(cfg.EnvPath); err != nil {
		fmt.Fprintf(stderr, "callui: %v\n", err)
		return 1
	}
	cfg.applyEnv(os.Getenv)

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(stderr, "callui: %v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg config) error {
	// Without a log file package logs stay with the no-op provider, the
	// terminal belongs to the UI.
	if cfg.LogPath != "" {
		f, err := tea.LogToFile(cfg.LogPath, "callui")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()

		shutdown, err := setupLogging(f)
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()
	}

	options, err := loadAssistant(cfg.AssistantPath)
	if err != nil {
		return err
	}

	sess, err := newSession(cfg)
	if err != nil {
		return err
	}

	adapterOpts := []callui.AdapterOption{callui.WithAssistant(options)}
	if cfg.Harden {
		adapterOpts = append(adapterOpts, callui.WithSanitizer(callui.Strict{}))
	}

	surface := tui.NewSurface()
	adapter := callui.NewAdapter(sess, surface, adapterOpts...)
	model := tui.NewModel(adapter, tui.WithTitle(options.Name), tui.WithContext(ctx))
	program := tui.NewProgram(model, surface, tea.WithAltScreen(), tea.WithContext(ctx))

	logger.InfoContext(ctx, "starting", "assistant", options.Name, "demo", cfg.Demo, "harden", cfg.Harden)
	_, runErr := program.Run()

	// Leaving the UI hangs up a call that is still up.
	if adapter.State().CallActive {
		if err := sess.Stop(context.WithoutCancel(ctx)); err != nil {
			logger.WarnContext(ctx, "failed to end call on exit", "error", err)
		}
	}

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", runErr)
	}
	return nil
}

func loadAssistant(path string) (assistant.Options, error) {
	if path == "" {
		return assistant.Default(), nil
	}
	options, err := assistant.LoadFile(path)
	if err != nil {
		return assistant.Options{}, fmt.Errorf("load assistant: %w", err)
	}
	return options, nil
}

func newSession(cfg config) (callui.Session, error) {
	if cfg.Demo {
		return session.NewScripted(), nil
	}

	client, err := session.NewHostedClient(cfg.PublicKey, session.WithBaseURL(cfg.BaseURL))
	if errors.Is(err, session.ErrMissingKey) {
		return nil, fmt.Errorf("%s is not set, use -demo to run without the hosted assistant: %w", envPublicKey, err)
	}
	if errors.Is(err, session.ErrMissingBaseURL) {
		return nil, fmt.Errorf("%s is not set, it must point at a call gateway speaking the callui events protocol "+
			"(POST /call/web, websocket eventsUrl, end-call on controlUrl), use -demo to run without one: %w", envBaseURL, err)
	}
	if err != nil {
		return nil, fmt.Errorf("create hosted session: %w", err)
	}
	return client, nil
}
