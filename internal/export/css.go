package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/brandkit/internal/model"
)

// CSS renders the :root custom-property block for colors, typography, spacing
// and shadows, followed by the three font utility classes.
func CSS(colors model.ColorPalette, typography model.TypographyScale, spacing, shadows model.Scale) string {
	var b strings.Builder

	b.WriteString(":root {\n")

	b.WriteString("  /* Colors */\n")
	for _, c := range colors.Brand() {
		property(&b, "color-"+c.Name, c.Value)
	}
	for _, c := range colors.Brand() {
		ramp, _ := colors.ShadesFor(c.Name)
		writeRamp(&b, "color-"+c.Name, ramp)
	}
	writeRamp(&b, "color-neutral", colors.Neutral)
	for _, c := range colors.Semantic.Named() {
		property(&b, "color-"+c.Name, c.Value)
	}

	b.WriteString("\n  /* Typography */\n")
	for _, f := range typography.FontFamilies.Named() {
		property(&b, "font-"+f.Name, f.Value)
	}
	for _, s := range typography.FontSizes.Steps() {
		property(&b, "font-size-"+s.Name, s.Size)
		property(&b, "line-height-"+s.Name, strconv.FormatFloat(s.LineHeight, 'f', -1, 64))
		if s.LetterSpacing != "" {
			property(&b, "letter-spacing-"+s.Name, s.LetterSpacing)
		}
	}
	for _, w := range typography.FontWeights.Steps() {
		property(&b, "font-weight-"+w.Name, strconv.Itoa(w.Weight))
	}

	b.WriteString("\n  /* Spacing */\n")
	for _, s := range spacing {
		property(&b, "spacing-"+PropertyName(s.Name), s.Value)
	}

	b.WriteString("\n  /* Shadows */\n")
	for _, s := range shadows {
		property(&b, "shadow-"+s.Name, s.Value)
	}

	b.WriteString("}\n")

	for _, family := range []string{"heading", "body", "mono"} {
		fmt.Fprintf(&b, "\n.font-%s {\n  font-family: var(--font-%s);\n}\n", family, family)
	}

	return b.String()
}

// PropertyName makes a scale step usable inside a custom property name.
func PropertyName(step string) string {
	return strings.ReplaceAll(step, ".", "_")
}

func property(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  --%s: %s;\n", name, value)
}

func writeRamp(b *strings.Builder, prefix string, ramp model.Ramp) {
	for i, hex := range ramp {
		property(b, prefix+"-"+model.RampLabels[i], hex)
	}
}
