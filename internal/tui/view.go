package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/brandkit/internal/model"
	"github.com/alexisbeaulieu97/brandkit/internal/tui/components"
)

const swatchWidth = 10

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.system == nil {
		return mutedStyle.Render("no design system to preview")
	}

	sections := []string{
		titleStyle.Render(fmt.Sprintf("brandkit • %s", m.title())),
		summaryStyle.Render(m.summary()),
	}

	if m.nonInteractive {
		for tab := TabColors; tab <= TabShadows; tab++ {
			sections = append(sections, sectionStyle.Render(tab.Title()), m.renderTab(tab))
		}
		return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
	}

	sections = append(sections, m.tabBar(), m.renderTab(m.tab))
	sections = append(sections, helpStyle.Render("tab/←→ switch · 1-5 jump · ↑↓ scroll tokens · f filter tokens · q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderPalette renders brand colors, ramps and semantic colors as swatches.
func RenderPalette(ds *model.DesignSystem) string {
	if ds == nil {
		return ""
	}
	return renderColors(ds.Colors)
}

func (m Model) title() string {
	if strings.TrimSpace(m.system.Config.Name) != "" {
		return m.system.Config.Name
	}
	return "Design System"
}

func (m Model) renderTokens() string {
	filter := string(m.TokenFilter())
	if filter == "" {
		filter = "all"
	}
	label := mutedStyle.Render(fmt.Sprintf("showing %s tokens (%d)", filter, len(m.tokens.Rows())))
	return lipgloss.JoinVertical(lipgloss.Left, label, m.tokens.View())
}

func (m Model) summary() string {
	cfg := m.system.Config
	radius, _ := m.system.Radii.Get("base")
	return components.NewSummary(components.SummaryData{
		Version:     cfg.DisplayVersion(),
		Sector:      string(cfg.Sector.Resolve()),
		Style:       string(cfg.Style),
		Personality: string(cfg.BrandPersonality.Resolve()),
		Ratio:       m.system.Typography.Ratio,
		Radius:      radius,
		Tokens:      len(m.system.Tokens),
	}).View()
}

func (m Model) tabBar() string {
	tabs := make([]string, 0, len(tabNames))
	for i := range tabNames {
		tab := Tab(i)
		label := fmt.Sprintf("%d %s", i+1, tab.Title())
		if tab == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.NewStyle().MarginTop(1).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderTab(tab Tab) string {
	switch tab {
	case TabTypography:
		return renderTypography(m.system.Typography)
	case TabSpacing:
		return renderSpacing(m.system.Spacing, m.width)
	case TabShadows:
		return renderShadows(m.system.Shadows)
	case TabTokens:
		return m.renderTokens()
	default:
		return renderColors(m.system.Colors)
	}
}

func renderColors(colors model.ColorPalette) string {
	var rows []string

	var brand []string
	for _, c := range colors.Brand() {
		brand = append(brand, components.Swatch(c.Value, c.Name+" "+c.Value, 0), " ")
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, brand...), "")

	for _, c := range colors.Brand() {
		ramp, _ := colors.ShadesFor(c.Name)
		rows = append(rows, rampRow(c.Name, ramp))
	}
	rows = append(rows, rampRow("neutral", colors.Neutral), "")

	var semantic []string
	for _, c := range colors.Semantic.Named() {
		semantic = append(semantic, components.Swatch(c.Value, c.Name+" "+c.Value, 0), " ")
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, semantic...))

	return strings.Join(rows, "\n")
}

func rampRow(label string, ramp model.Ramp) string {
	cells := []string{labelStyle.Render(label)}
	for _, hex := range ramp {
		cells = append(cells, components.Swatch(hex, hex, swatchWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderTypography(typo model.TypographyScale) string {
	var lines []string
	for _, f := range typo.FontFamilies.Named() {
		lines = append(lines, labelStyle.Render(f.Name)+f.Value)
	}
	lines = append(lines, "")
	for _, s := range typo.FontSizes.Steps() {
		line := fmt.Sprintf("%-6s line-height %-4s", s.Size, strconv.FormatFloat(s.LineHeight, 'f', -1, 64))
		if s.LetterSpacing != "" {
			line += " tracking " + s.LetterSpacing
		}
		lines = append(lines, labelStyle.Render(s.Name)+line)
	}
	lines = append(lines, "")
	var weights []string
	for _, w := range typo.FontWeights.Steps() {
		weights = append(weights, fmt.Sprintf("%s %d", w.Name, w.Weight))
	}
	lines = append(lines, labelStyle.Render("weights")+strings.Join(weights, " · "))
	return strings.Join(lines, "\n")
}

func renderSpacing(spacing model.Scale, width int) string {
	values := make([]float64, len(spacing))
	maxValue := 0.0
	for i, s := range spacing {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s.Value, "px"), 64)
		if err != nil {
			continue
		}
		values[i] = v
		if v > maxValue {
			maxValue = v
		}
	}

	barWidth := 40
	if width > 40 {
		barWidth = min(80, width-30)
	}
	bar := components.NewBar(maxValue, barWidth)

	lines := make([]string, 0, len(spacing))
	for i, s := range spacing {
		lines = append(lines, labelStyle.Render(s.Name)+bar.View(s.Value, values[i]))
	}
	return strings.Join(lines, "\n")
}

func renderShadows(shadows model.Scale) string {
	lines := make([]string, 0, len(shadows))
	for _, s := range shadows {
		lines = append(lines, labelStyle.Render(s.Name)+s.Value)
	}
	return strings.Join(lines, "\n")
}
