package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScaleMarshalKeepsOrder(t *testing.T) {
	t.Parallel()

	s := Scale{{Name: "sm", Value: "2px"}, {Name: "base", Value: "4px"}, {Name: "2xl", Value: "16px"}}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	require.Equal(t, `{"sm":"2px","base":"4px","2xl":"16px"}`, string(data))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)
}

func TestScaleMarshalEmpty(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Scale(nil))
	require.NoError(t, err)
	require.Equal(t, `{}`, string(data))
}

func TestScaleLookup(t *testing.T) {
	t.Parallel()

	s := Scale{{Name: "px", Value: "1px"}, {Name: "0.5", Value: "2px"}}
	value, ok := s.Get("0.5")
	require.True(t, ok)
	require.Equal(t, "2px", value)

	_, ok = s.Get("missing")
	require.False(t, ok)
	require.Equal(t, []string{"px", "0.5"}, s.Names())
}

func TestThemeFontSizesMarshal(t *testing.T) {
	t.Parallel()

	sizes := ThemeFontSizes{
		{Name: "xs", FontSize: FontSize{Size: "10px", LineHeight: 1.4, LetterSpacing: "0.025em"}},
		{Name: "base", FontSize: FontSize{Size: "16px", LineHeight: 1.5}},
	}
	data, err := json.Marshal(sizes)
	require.NoError(t, err)
	require.Equal(t,
		`{"xs":["10px",{"lineHeight":"1.4","letterSpacing":"0.025em"}],"base":["16px",{"lineHeight":"1.5"}]}`,
		string(data))
}

func TestFontSizesSteps(t *testing.T) {
	t.Parallel()

	sizes := FontSizes{XS: FontSize{Size: "10px"}, XL4: FontSize{Size: "81px"}}
	steps := sizes.Steps()
	require.Len(t, steps, 8)
	require.Equal(t, "xs", steps[0].Name)
	require.Equal(t, "4xl", steps[7].Name)

	got, ok := sizes.Get("4xl")
	require.True(t, ok)
	require.Equal(t, "81px", got.Size)

	_, ok = sizes.Get("5xl")
	require.False(t, ok)
}

func TestPaletteAccessors(t *testing.T) {
	t.Parallel()

	p := ColorPalette{Primary: "#3b82f6", Secondary: "#a", Accent: "#b"}
	p.Shades.Secondary[4] = "#middle"

	brand := p.Brand()
	require.Equal(t, []string{"primary", "secondary", "accent"}, Scale(brand).Names())

	ramp, ok := p.ShadesFor("secondary")
	require.True(t, ok)
	require.Equal(t, "#middle", ramp[4])

	_, ok = p.ShadesFor("neutral")
	require.False(t, ok)
	require.Equal(t, [RampSize]string{"100", "200", "300", "400", "500", "600", "700", "800", "900"}, RampLabels)
}

func TestFontWeightsSteps(t *testing.T) {
	t.Parallel()

	w := FontWeights{Light: 300, Extrabold: 800}
	steps := w.Steps()
	require.Len(t, steps, 6)
	require.Equal(t, NamedWeight{Name: "light", Weight: 300}, steps[0])
	require.Equal(t, NamedWeight{Name: "extrabold", Weight: 800}, steps[5])
}
