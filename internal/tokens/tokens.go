// Package tokens flattens generated scales into a uniform list of design tokens.
package tokens

import (
	"fmt"

	"github.com/alexisbeaulieu97/brandkit/internal/model"
)

// Input groups every scale the aggregator reads.
type Input struct {
	Colors     model.ColorPalette
	Typography model.TypographyScale
	Spacing    model.Scale
	Shadows    model.Scale
	Radii      model.Scale
}

// Build returns a freshly allocated token list. It never reuses or appends to
// a previous result, so successive calls with different inputs cannot leak.
func Build(in Input) []model.DesignToken {
	out := make([]model.DesignToken, 0, Count(in))

	for _, c := range in.Colors.Brand() {
		out = append(out, model.DesignToken{
			Name:        "color-" + c.Name,
			Value:       c.Value,
			Type:        model.TokenColor,
			Category:    "brand",
			Description: fmt.Sprintf("Brand %s color", c.Name),
		})
	}
	for i, hex := range in.Colors.Neutral {
		out = append(out, model.DesignToken{
			Name:     "color-neutral-" + model.RampLabels[i],
			Value:    hex,
			Type:     model.TokenColor,
			Category: "neutral",
		})
	}
	for _, c := range in.Colors.Semantic.Named() {
		out = append(out, model.DesignToken{
			Name:        "color-" + c.Name,
			Value:       c.Value,
			Type:        model.TokenColor,
			Category:    "semantic",
			Description: fmt.Sprintf("Semantic %s color", c.Name),
		})
	}

	for _, f := range in.Typography.FontFamilies.Named() {
		out = append(out, model.DesignToken{
			Name:        "font-" + f.Name,
			Value:       f.Value,
			Type:        model.TokenTypography,
			Category:    "font-family",
			Description: fmt.Sprintf("Font family for %s text", f.Name),
		})
	}
	for _, s := range in.Typography.FontSizes.Steps() {
		out = append(out, model.DesignToken{
			Name:        "font-size-" + s.Name,
			Value:       s.Size,
			Type:        model.TokenTypography,
			Category:    "font-size",
			Description: fmt.Sprintf("Line height %g", s.LineHeight),
		})
	}

	out = appendScale(out, in.Spacing, "spacing-", model.TokenSpacing, "spacing")
	out = appendScale(out, in.Shadows, "shadow-", model.TokenShadow, "elevation")
	out = appendScale(out, in.Radii, "radius-", model.TokenBorder, "radius")

	return out
}

// Count is the number of tokens Build produces for in.
func Count(in Input) int {
	return len(in.Colors.Brand()) +
		len(in.Colors.Neutral) +
		len(in.Colors.Semantic.Named()) +
		len(in.Typography.FontFamilies.Named()) +
		len(in.Typography.FontSizes.Steps()) +
		len(in.Spacing) +
		len(in.Shadows) +
		len(in.Radii)
}

// Filter returns the tokens of one type, preserving order.
func Filter(list []model.DesignToken, tokenType model.TokenType) []model.DesignToken {
	var out []model.DesignToken
	for _, tok := range list {
		if tok.Type == tokenType {
			out = append(out, tok)
		}
	}
	return out
}

func appendScale(out []model.DesignToken, scale model.Scale, prefix string, tokenType model.TokenType, category string) []model.DesignToken {
	for _, step := range scale {
		out = append(out, model.DesignToken{
			Name:     prefix + step.Name,
			Value:    step.Value,
			Type:     tokenType,
			Category: category,
		})
	}
	return out
}
