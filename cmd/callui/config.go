package main

import (
	"flag"
	"fmt"
	"io"
)

const (
	envPublicKey = "VAPI_PUBLIC_KEY"
	envBaseURL   = "VAPI_API_URL"
)

type config struct {
	AssistantPath string
	EnvPath       string
	Demo          bool
	Harden        bool
	LogPath       string

	PublicKey string
	BaseURL   string
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config

	flags := flag.NewFlagSet("callui", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&cfg.AssistantPath, "assistant", "", "YAML file overriding the default assistant")
	flags.StringVar(&cfg.EnvPath, "env", ".env", "dotenv file read before the environment")
	flags.BoolVar(&cfg.Demo, "demo", false, "Replay a scripted call instead of calling the hosted assistant")
	flags.BoolVar(&cfg.Harden, "harden", false, "Validate colours and strip control sequences from assistant function calls")
	flags.StringVar(&cfg.LogPath, "log", "", "Write logs to this file")
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}
	if flags.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	return cfg, nil
}

// applyEnv fills what flags do not cover from the environment.
func (c *config) applyEnv(getenv func(string) string) {
	c.PublicKey = getenv(envPublicKey)
	c.BaseURL = getenv(envBaseURL)
}
