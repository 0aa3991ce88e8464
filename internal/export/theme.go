package export

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/brandkit/internal/model"
)

// ThemeConfig builds the Tailwind `theme.extend` object for the scales.
func ThemeConfig(colors model.ColorPalette, typography model.TypographyScale, spacing, shadows, radii model.Scale) model.ThemeConfig {
	palette := make(map[string]map[string]string)
	for _, c := range colors.Brand() {
		ramp, _ := colors.ShadesFor(c.Name)
		entry := rampMap(ramp)
		entry["DEFAULT"] = c.Value
		palette[c.Name] = entry
	}
	palette["neutral"] = rampMap(colors.Neutral)
	for _, c := range colors.Semantic.Named() {
		palette[c.Name] = map[string]string{"DEFAULT": c.Value}
	}

	families := make(map[string][]string)
	for _, f := range typography.FontFamilies.Named() {
		families[f.Name] = splitFamilies(f.Value)
	}

	weights := make(model.Scale, 0, 6)
	for _, w := range typography.FontWeights.Steps() {
		weights = append(weights, model.Step{Name: w.Name, Value: strconv.Itoa(w.Weight)})
	}

	return model.ThemeConfig{
		Theme: model.ThemeSection{
			Extend: model.ThemeExtend{
				Colors:       palette,
				FontFamily:   families,
				FontSize:     model.ThemeFontSizes(typography.FontSizes.Steps()),
				FontWeight:   weights,
				Spacing:      spacing,
				BoxShadow:    shadows,
				BorderRadius: radii,
			},
		},
	}
}

func rampMap(ramp model.Ramp) map[string]string {
	out := make(map[string]string, len(ramp)+1)
	for i, hex := range ramp {
		out[model.RampLabels[i]] = hex
	}
	return out
}

// splitFamilies turns a CSS font stack into Tailwind's array form.
func splitFamilies(stack string) []string {
	parts := strings.Split(stack, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Trim(strings.TrimSpace(part), `'"`)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
