package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/koscakluka/ema-callui/core/callui"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"
)

var (
	// glowColor is the trigger glow, rgb(58,25,250).
	glowColor = colorful.Color{R: 58.0 / 255, G: 25.0 / 255, B: 250.0 / 255}
	glowOff   = colorful.Color{R: 0.2, G: 0.2, B: 0.2}

	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3a19fa"))
	statusLineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	typedTextStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("255"))
	statusMessageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noticeStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	transcriptStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238"))

	roleStyles = map[string]lipgloss.Style{
		"assistant": lipgloss.NewStyle().Foreground(lipgloss.Color("#7b68ee")),
		"user":      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Align(lipgloss.Right),
		"tool":      lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
	}
)

// renderTrigger draws the call trigger on its background, wrapped in a ring
// that gets brighter with the glow radius and wider with its spread.
func renderTrigger(label string, background string, glow callui.Glow) string {
	button := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(background)).
		Padding(1, 4).
		Render(label)

	intensity := math.Max(0, math.Min(glow.Radius/callui.MaxGlowIntensity, 1))
	ring := glowOff.BlendRgb(glowColor, intensity).Clamped().Hex()
	spread := int(math.Round(math.Max(0, glow.Spread) / 5))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ring)).
		Padding(0, spread).
		Render(button)
}

func renderTranscript(entries []callui.TranscriptEntry, width int) string {
	if width < 10 {
		width = 10
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		text := wordwrap.String(entry.Text, width)
		if style, ok := roleStyles[entry.Role()]; ok {
			text = style.Width(width).Render(text)
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

// plainTranscript is the transcript as copied to the clipboard.
func plainTranscript(entries []callui.TranscriptEntry) string {
	var b strings.Builder
	for _, entry := range entries {
		if role := entry.Role(); role != "" {
			b.WriteString(role)
			b.WriteString(": ")
		}
		b.WriteString(entry.Text)
		b.WriteString("\n")
	}
	return b.String()
}
