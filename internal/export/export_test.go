package export_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/designsystem"
	"github.com/alexisbeaulieu97/brandkit/internal/export"
	"github.com/alexisbeaulieu97/brandkit/internal/model"
	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

func generate(t *testing.T) *model.DesignSystem {
	t.Helper()

	ds, err := designsystem.Generate(config.DesignSystemConfig{
		Name:             "Acme",
		Version:          "1.2",
		Sector:           config.SectorFinance,
		Style:            config.StyleModerne,
		BaseColor:        "#3b82f6",
		BrandPersonality: config.PersonalityFriendly,
	})
	require.NoError(t, err)
	return ds
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, name := range export.Formats() {
		f, err := export.ParseFormat(name)
		require.NoError(t, err)
		require.Equal(t, name, f.String())
	}

	f, err := export.ParseFormat(" Figma-Tokens ")
	require.NoError(t, err)
	require.Equal(t, export.FormatFigmaTokens, f)

	_, err = export.ParseFormat("yaml")
	require.ErrorIs(t, err, brandkiterrors.ErrUnsupportedFormat)
	var formatErr *brandkiterrors.UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, "yaml", formatErr.Format)
}

func TestRenderUnknownFormatValueFallsBackToJSON(t *testing.T) {
	t.Parallel()

	ds := generate(t)
	want, err := export.Render(ds, export.FormatJSON)
	require.NoError(t, err)
	got, err := export.Render(ds, export.Format(42))
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, "json", export.Format(42).String())
}

func TestRenderNilSystem(t *testing.T) {
	t.Parallel()

	_, err := export.Render(nil, export.FormatCSS)
	require.Error(t, err)
}

func TestJSONCarriesEverything(t *testing.T) {
	t.Parallel()

	out, err := export.Render(generate(t), export.FormatJSON)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	for _, key := range []string{"config", "colors", "typography", "spacing", "shadows", "radii", "tokens", "css", "themeConfig"} {
		require.Contains(t, doc, key)
	}

	cfg := doc["config"].(map[string]any)
	require.Equal(t, "#3b82f6", cfg["baseColor"])

	// Ordered scales keep their declaration order.
	require.True(t, strings.Index(out, `"px": "1px"`) < strings.Index(out, `"0": "0"`))
	require.True(t, strings.Index(out, `"xs": {`) < strings.Index(out, `"4xl": {`))
}

func TestCSSCoverage(t *testing.T) {
	t.Parallel()

	ds := generate(t)
	css, err := export.Render(ds, export.FormatCSS)
	require.NoError(t, err)
	require.Equal(t, ds.CSS, css)

	require.True(t, strings.HasPrefix(css, ":root {\n"))
	for _, want := range []string{
		"--color-primary: #3b82f6;",
		"--color-primary-100:",
		"--color-neutral-900:",
		"--color-success: #059669;",
		"--font-heading: 'Space Grotesk', sans-serif;",
		"--font-size-xl: 36px;",
		"--line-height-base: 1.6;",
		"--font-weight-bold: 700;",
		"--spacing-px: 1px;",
		"--spacing-0_5: 2px;",
		"--shadow-none: none;",
		".font-heading {\n  font-family: var(--font-heading);\n}",
		".font-body {",
		".font-mono {",
	} {
		require.Contains(t, css, want)
	}
	require.NotContains(t, css, "radius")
	require.Equal(t, 3, strings.Count(css, "font-family: var("))
}

func TestSCSSOnlyBrandAndSemantic(t *testing.T) {
	t.Parallel()

	scss, err := export.Render(generate(t), export.FormatSCSS)
	require.NoError(t, err)

	var names []string
	for _, line := range strings.Split(strings.TrimSpace(scss), "\n") {
		if line == "" {
			continue
		}
		names = append(names, strings.SplitN(line, ":", 2)[0])
	}
	require.Equal(t, []string{"$primary", "$secondary", "$accent", "$success", "$warning", "$error", "$info"}, names)
}

func TestJSModule(t *testing.T) {
	t.Parallel()

	js, err := export.Render(generate(t), export.FormatJS)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(js, "// Acme v1.2.0\nexport const designSystem = {"))
	for _, name := range []string{"colors", "typography", "spacing", "shadows"} {
		require.Contains(t, js, "export const "+name+" = designSystem."+name+";")
	}
	require.Equal(t, 5, strings.Count(js, "export const "))
}

func TestJSHeaderStaysInsideComment(t *testing.T) {
	t.Parallel()

	ds, err := designsystem.Generate(config.DesignSystemConfig{
		Name:      "Acme\nalert(1)//",
		Version:   "1.0\r\nfetch('x')\u2028",
		BaseColor: "#3b82f6",
	})
	require.NoError(t, err)

	js, err := export.Render(ds, export.FormatJS)
	require.NoError(t, err)

	header, rest, ok := strings.Cut(js, "\n")
	require.True(t, ok)
	require.Equal(t, "// Acme alert(1)// v1.0 fetch('x')", header)
	require.True(t, strings.HasPrefix(rest, "export const designSystem = {"))
	require.NotContains(t, header, "\r")
}

func TestRampLabelsConsistentAcrossOutputs(t *testing.T) {
	t.Parallel()

	ds := generate(t)
	neutralTokens := 0
	for _, tok := range ds.Tokens {
		if tok.Category == "neutral" {
			neutralTokens++
		}
	}
	require.Equal(t, model.RampSize, neutralTokens)

	for i, label := range model.RampLabels {
		require.Contains(t, ds.CSS, "--color-neutral-"+label+": "+ds.Colors.Neutral[i]+";")
		require.Contains(t, ds.CSS, "--color-primary-"+label+": "+ds.Colors.Shades.Primary[i]+";")
		require.Equal(t, ds.Colors.Neutral[i], ds.ThemeConfig.Theme.Extend.Colors["neutral"][label])

		tok := findToken(t, ds.Tokens, "color-neutral-"+label)
		require.Equal(t, ds.Colors.Neutral[i], tok.Value)
	}
	require.NotContains(t, ds.CSS, "--color-neutral-50:")
}

func findToken(t *testing.T, list []model.DesignToken, name string) model.DesignToken {
	t.Helper()

	for _, tok := range list {
		if tok.Name == name {
			return tok
		}
	}
	require.Failf(t, "token not found", "%s", name)
	return model.DesignToken{}
}

func TestFigmaTokensCoverage(t *testing.T) {
	t.Parallel()

	out, err := export.Render(generate(t), export.FormatFigmaTokens)
	require.NoError(t, err)

	var doc struct {
		Global map[string]map[string]map[string]string `json:"global"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	require.Len(t, doc.Global, 2)
	colors := doc.Global["colors"]
	require.Len(t, colors, 3)
	require.Equal(t, "#3b82f6", colors["primary"]["value"])
	require.Equal(t, "color", colors["accent"]["type"])

	fonts := doc.Global["fontFamilies"]
	require.Len(t, fonts, 2)
	require.Contains(t, fonts, "heading")
	require.Contains(t, fonts, "body")

	for _, absent := range []string{"fontSize", "spacing", "shadow", "px"} {
		require.NotContains(t, out, absent)
	}
}

func TestThemeConfig(t *testing.T) {
	t.Parallel()

	ds := generate(t)
	extend := ds.ThemeConfig.Theme.Extend

	require.Equal(t, "#3b82f6", extend.Colors["primary"]["DEFAULT"])
	require.Len(t, extend.Colors["primary"], 10)
	require.Len(t, extend.Colors["neutral"], 9)
	require.Equal(t, "#059669", extend.Colors["success"]["DEFAULT"])
	require.Equal(t, []string{"Space Grotesk", "sans-serif"}, extend.FontFamily["heading"])
	require.Equal(t, []string{"JetBrains Mono", "Fira Code", "monospace"}, extend.FontFamily["mono"])

	data, err := json.Marshal(ds.ThemeConfig)
	require.NoError(t, err)
	require.Contains(t, string(data), `"xs":["7px",{"lineHeight":"1.4","letterSpacing":"0.025em"}]`)
	require.Contains(t, string(data), `"base":["16px",{"lineHeight":"1.6"}]`)
	require.Contains(t, string(data), `"borderRadius":{"none":"0"`)
}

func TestExtension(t *testing.T) {
	t.Parallel()

	require.Equal(t, "css", export.FormatCSS.Extension())
	require.Equal(t, "tokens.json", export.FormatFigmaTokens.Extension())
	require.Equal(t, "json", export.Format(-1).Extension())
}
