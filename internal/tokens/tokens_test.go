package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/model"
	"github.com/alexisbeaulieu97/brandkit/internal/palette"
	"github.com/alexisbeaulieu97/brandkit/internal/scale"
	"github.com/alexisbeaulieu97/brandkit/internal/typography"
)

func buildInput(t *testing.T, base string, style config.Style) Input {
	t.Helper()

	colors, err := palette.Generate(base, config.SectorTech)
	require.NoError(t, err)
	return Input{
		Colors:     colors,
		Typography: typography.Generate(config.SectorTech, style),
		Spacing:    scale.Spacing(),
		Shadows:    scale.Shadows(style),
		Radii:      scale.Radii(config.PersonalityProfessional),
	}
}

func TestBuildCardinality(t *testing.T) {
	t.Parallel()

	in := buildInput(t, "#3b82f6", config.StyleModerne)
	list := Build(in)

	// 3 brand + 9 neutral + 4 semantic + 3 families + 8 sizes + 23 spacing + 8 shadows + 7 radii
	require.Len(t, list, 65)
	require.Equal(t, Count(in), len(list))
}

func TestBuildNameTemplates(t *testing.T) {
	t.Parallel()

	list := Build(buildInput(t, "#3b82f6", config.StyleModerne))
	byName := make(map[string]model.DesignToken, len(list))
	for _, tok := range list {
		_, dup := byName[tok.Name]
		require.False(t, dup, "duplicate token %s", tok.Name)
		byName[tok.Name] = tok
	}

	require.Equal(t, "#3b82f6", byName["color-primary"].Value)
	require.Equal(t, "brand", byName["color-primary"].Category)
	require.Equal(t, "#10b981", byName["color-success"].Value)
	require.Equal(t, "semantic", byName["color-success"].Category)
	require.Equal(t, model.TokenColor, byName["color-neutral-500"].Type)
	require.Equal(t, model.TokenTypography, byName["font-heading"].Type)
	require.Equal(t, "36px", byName["font-size-xl"].Value)
	require.Equal(t, "1px", byName["spacing-px"].Value)
	require.Equal(t, "0", byName["spacing-0"].Value)
	require.Equal(t, "none", byName["shadow-none"].Value)
	require.Equal(t, model.TokenShadow, byName["shadow-md"].Type)
	require.Equal(t, model.TokenBorder, byName["radius-full"].Type)
}

func TestBuildOrderIsStable(t *testing.T) {
	t.Parallel()

	list := Build(buildInput(t, "#3b82f6", config.StyleModerne))
	require.Equal(t, "color-primary", list[0].Name)
	require.Equal(t, "color-secondary", list[1].Name)
	require.Equal(t, "color-accent", list[2].Name)
	require.Equal(t, "radius-full", list[len(list)-1].Name)
}

func TestBuildDoesNotLeakBetweenCalls(t *testing.T) {
	t.Parallel()

	first := Build(buildInput(t, "#3b82f6", config.StyleModerne))
	smaller := buildInput(t, "#e11d48", config.StyleClassique)
	smaller.Spacing = smaller.Spacing[:5]
	second := Build(smaller)

	require.Len(t, second, Count(smaller))
	require.Less(t, len(second), len(first))
	require.Equal(t, "#e11d48", second[0].Value)
	require.Equal(t, "#3b82f6", first[0].Value)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	list := Build(buildInput(t, "#3b82f6", config.StyleMinimaliste))
	require.Len(t, Filter(list, model.TokenColor), 16)
	require.Len(t, Filter(list, model.TokenTypography), 11)
	require.Len(t, Filter(list, model.TokenSpacing), 23)
	require.Len(t, Filter(list, model.TokenShadow), 8)
	require.Len(t, Filter(list, model.TokenBorder), 7)
}
