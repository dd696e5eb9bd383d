package assistant

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML file and overlays it on the default options. Keys
// missing from the file keep their default value. Lists in the file replace
// the default list.
func LoadFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read assistant file %q: %w", path, err)
	}

	options, err := Parse(data)
	if err != nil {
		return Options{}, fmt.Errorf("failed to parse assistant file %q: %w", path, err)
	}
	return options, nil
}

// Parse overlays YAML data on the default options.
func Parse(data []byte) (Options, error) {
	options := Default()
	if err := yaml.Unmarshal(data, &options); err != nil {
		return Options{}, err
	}

	options.Model.Functions = []Function{ChangeColor(), WriteText()}
	options.ClientMessages = nonNil(options.ClientMessages)
	options.ServerMessages = nonNil(options.ServerMessages)
	options.EndCallPhrases = nonNil(options.EndCallPhrases)
	options.Transcriber.Keywords = nonNil(options.Transcriber.Keywords)
	options.Model.Messages = nonNil(options.Model.Messages)
	if options.Name == "" {
		return Options{}, fmt.Errorf("assistant name must not be empty")
	}
	return options, nil
}
