package model

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
)

// DesignSystem is the result of one full generation. Every field is derived
// from Config; nothing is carried over between generations.
type DesignSystem struct {
	Config      config.DesignSystemConfig `json:"config"`
	Colors      ColorPalette              `json:"colors"`
	Typography  TypographyScale           `json:"typography"`
	Spacing     Scale                     `json:"spacing"`
	Shadows     Scale                     `json:"shadows"`
	Radii       Scale                     `json:"radii"`
	Tokens      []DesignToken             `json:"tokens"`
	CSS         string                    `json:"css"`
	ThemeConfig ThemeConfig               `json:"themeConfig"`
}

// ThemeConfig mirrors the `theme.extend` object of a Tailwind configuration.
type ThemeConfig struct {
	Theme ThemeSection `json:"theme"`
}

// ThemeSection wraps the extend block.
type ThemeSection struct {
	Extend ThemeExtend `json:"extend"`
}

// ThemeExtend carries every scale in the shape Tailwind expects.
type ThemeExtend struct {
	Colors       map[string]map[string]string `json:"colors"`
	FontFamily   map[string][]string          `json:"fontFamily"`
	FontSize     ThemeFontSizes               `json:"fontSize"`
	FontWeight   Scale                        `json:"fontWeight"`
	Spacing      Scale                        `json:"spacing"`
	BoxShadow    Scale                        `json:"boxShadow"`
	BorderRadius Scale                        `json:"borderRadius"`
}

// ThemeFontSizes marshals as an ordered object of `[size, {lineHeight, letterSpacing?}]` tuples.
type ThemeFontSizes []NamedFontSize

type themeFontSizeOptions struct {
	LineHeight    string `json:"lineHeight"`
	LetterSpacing string `json:"letterSpacing,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (t ThemeFontSizes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, step := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		entry, err := json.Marshal([]any{
			step.Size,
			themeFontSizeOptions{
				LineHeight:    strconv.FormatFloat(step.LineHeight, 'f', -1, 64),
				LetterSpacing: step.LetterSpacing,
			},
		})
		if err != nil {
			return nil, err
		}
		key, err := json.Marshal(step.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(entry)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
