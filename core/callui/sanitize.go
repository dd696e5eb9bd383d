package callui

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

var ErrRejectedColor = errors.New("color rejected")

// Sanitizer is the boundary between values supplied by the assistant and the
// targets they are written into.
type Sanitizer interface {
	// Color returns the colour to apply, or an error when it must not be
	// applied at all.
	Color(value string) (string, error)
	Text(value string) string
}

// Passthrough applies assistant supplied values as they are. This is the
// default and a known risk: a compromised assistant controls what lands on
// the surface.
type Passthrough struct{}

func (Passthrough) Color(value string) (string, error) { return value, nil }

func (Passthrough) Text(value string) string { return value }

// Strict accepts only hex colours and strips escape and control sequences
// from text.
type Strict struct{}

func (Strict) Color(value string) (string, error) {
	color, err := colorful.Hex(strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a hex color", ErrRejectedColor, value)
	}
	return color.Hex(), nil
}

func (Strict) Text(value string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(value))
}
