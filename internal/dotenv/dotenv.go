// Package dotenv reads KEY=VALUE files into the process environment.
package dotenv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadFile sets every variable of the file at path that is not already set.
// A missing file is not an error.
func LoadFile(path string) error {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open env file %q: %w", path, err)
	}
	defer file.Close()

	vars, err := Parse(file)
	if err != nil {
		return fmt.Errorf("read env file %q: %w", path, err)
	}

	for _, v := range vars {
		if _, set := os.LookupEnv(v.Key); set {
			continue
		}
		if err := os.Setenv(v.Key, v.Value); err != nil {
			return fmt.Errorf("set %q from %q: %w", v.Key, path, err)
		}
	}
	return nil
}

type Var struct {
	Key   string
	Value string
}

// Parse returns the variables of r in file order. Blank lines, comments and
// lines without a key are skipped; an "export " prefix and one pair of
// matching quotes around the value are removed.
func Parse(r io.Reader) ([]Var, error) {
	var vars []Var

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		key, value, ok := strings.Cut(strings.TrimPrefix(line, "export "), "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}

		vars = append(vars, Var{Key: key, Value: unquote(strings.TrimSpace(value))})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	switch quote := value[0]; quote {
	case '"', '\'':
		if value[len(value)-1] == quote {
			return value[1 : len(value)-1]
		}
	}
	return value
}
