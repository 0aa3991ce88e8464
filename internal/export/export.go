package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/brandkit/internal/model"
)

// Render serializes ds in format f. Format values outside the declared set are
// rendered as json.
func Render(ds *model.DesignSystem, f Format) (string, error) {
	if ds == nil {
		return "", fmt.Errorf("export %s: design system is nil", f)
	}

	switch f {
	case FormatCSS:
		return ds.CSS, nil
	case FormatSCSS:
		return SCSS(ds.Colors), nil
	case FormatJS:
		return JS(ds)
	case FormatFigmaTokens:
		return FigmaTokens(ds.Colors, ds.Typography)
	case FormatJSON:
		fallthrough
	default:
		return JSON(ds)
	}
}

// JSON renders the entire design system object.
func JSON(ds *model.DesignSystem) (string, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal design system: %w", err)
	}
	return string(data), nil
}

// SCSS renders only the brand and semantic colors as Sass variables.
func SCSS(colors model.ColorPalette) string {
	var b strings.Builder
	for _, c := range colors.Brand() {
		fmt.Fprintf(&b, "$%s: %s;\n", c.Name, c.Value)
	}
	b.WriteString("\n")
	for _, c := range colors.Semantic.Named() {
		fmt.Fprintf(&b, "$%s: %s;\n", c.Name, c.Value)
	}
	return b.String()
}

// JS renders an ES module exporting the full system plus four shortcuts.
func JS(ds *model.DesignSystem) (string, error) {
	body, err := JSON(ds)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// %s v%s\n", commentText(ds.Config.Name), commentText(ds.Config.DisplayVersion()))
	fmt.Fprintf(&b, "export const designSystem = %s;\n\n", body)
	b.WriteString("export const colors = designSystem.colors;\n")
	b.WriteString("export const typography = designSystem.typography;\n")
	b.WriteString("export const spacing = designSystem.spacing;\n")
	b.WriteString("export const shadows = designSystem.shadows;\n")
	return b.String(), nil
}

// commentText collapses every run of whitespace, line breaks included, to a
// single space so the value cannot leave a // comment.
func commentText(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

type figmaToken struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

type figmaColors struct {
	Primary   figmaToken `json:"primary"`
	Secondary figmaToken `json:"secondary"`
	Accent    figmaToken `json:"accent"`
}

type figmaFonts struct {
	Heading figmaToken `json:"heading"`
	Body    figmaToken `json:"body"`
}

type figmaGlobal struct {
	Colors       figmaColors `json:"colors"`
	FontFamilies figmaFonts  `json:"fontFamilies"`
}

type figmaDocument struct {
	Global figmaGlobal `json:"global"`
}

// FigmaTokens renders the brand colors and the heading/body families in the
// Figma Tokens plugin layout. Sizes, spacing and shadows are left out.
func FigmaTokens(colors model.ColorPalette, typography model.TypographyScale) (string, error) {
	doc := figmaDocument{
		Global: figmaGlobal{
			Colors: figmaColors{
				Primary:   figmaToken{Value: colors.Primary, Type: "color"},
				Secondary: figmaToken{Value: colors.Secondary, Type: "color"},
				Accent:    figmaToken{Value: colors.Accent, Type: "color"},
			},
			FontFamilies: figmaFonts{
				Heading: figmaToken{Value: typography.FontFamilies.Heading, Type: "fontFamilies"},
				Body:    figmaToken{Value: typography.FontFamilies.Body, Type: "fontFamilies"},
			},
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal figma tokens: %w", err)
	}
	return string(data), nil
}
