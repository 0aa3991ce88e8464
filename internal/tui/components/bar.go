package components

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var barLabelStyle = lipgloss.NewStyle().Bold(true).Width(8)

// Bar renders a labelled value as a fraction of the largest value in its scale.
type Bar struct {
	bar progress.Model
	max float64
}

// NewBar creates a bar whose full width corresponds to maxValue.
func NewBar(maxValue float64, width int) Bar {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	if width > 0 {
		bar.Width = width
	}
	return Bar{bar: bar, max: maxValue}
}

// View renders label followed by a bar proportional to value.
func (b Bar) View(label string, value float64) string {
	ratio := 0.0
	if b.max > 0 {
		ratio = math.Max(0, math.Min(1.0, value/b.max))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, barLabelStyle.Render(label), " ", b.bar.ViewAs(ratio))
}
