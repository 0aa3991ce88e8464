package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates the headline facts of a generated system.
type SummaryData struct {
	Name        string
	Version     string
	Sector      string
	Style       string
	Personality string
	Ratio       float64
	Radius      string
	Tokens      int
}

// Summary renders a short textual description of a design system.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string
	if s.data.Name != "" {
		line := s.data.Name
		if s.data.Version != "" {
			line = fmt.Sprintf("%s v%s", line, s.data.Version)
		}
		lines = append(lines, line)
	}

	var facets []string
	for _, f := range []struct{ label, value string }{
		{"sector", s.data.Sector},
		{"style", s.data.Style},
		{"personality", s.data.Personality},
	} {
		if f.value != "" {
			facets = append(facets, fmt.Sprintf("%s: %s", f.label, f.value))
		}
	}
	if len(facets) > 0 {
		lines = append(lines, strings.Join(facets, " · "))
	}

	if s.data.Ratio > 0 {
		line := fmt.Sprintf("type ratio %g", s.data.Ratio)
		if s.data.Radius != "" {
			line += " · radius " + s.data.Radius
		}
		lines = append(lines, fmt.Sprintf("%s · %d tokens", line, s.data.Tokens))
	}

	return strings.Join(lines, "\n")
}
