package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/brandkit/internal/color"
)

const (
	darkInk  = "#111827"
	lightInk = "#f9fafb"
)

// Swatch renders a block filled with hex and labelled with text in a
// readable foreground.
func Swatch(hex, text string, width int) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(Ink(hex))).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(text)
}

// Ink picks dark text for light backgrounds and light text otherwise.
func Ink(hex string) string {
	if color.Lightness(hex) > 55 {
		return darkInk
	}
	return lightInk
}
