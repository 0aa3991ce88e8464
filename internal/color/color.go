// Package color converts between #rrggbb hex strings and HSL triples.
//
// HSL is the pivot space for every derived color in a design system. The
// components stay fractional so a hex -> HSL -> hex round trip reproduces the
// input within one unit per RGB channel; only the hex side rounds. Whole
// numbers are for display.
package color

import (
	"fmt"
	"math"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// HSL is a hue in [0,360) with saturation and lightness in [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Whole rounds every component to the nearest integer, wrapping hue 360 to 0.
func (c HSL) Whole() HSL {
	return HSL{
		H: math.Mod(math.Round(c.H), 360),
		S: math.Round(c.S),
		L: math.Round(c.L),
	}
}

func (c HSL) String() string {
	w := c.Whole()
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", w.H, w.S, w.L)
}

// Hex converts the triple back to #rrggbb.
func (c HSL) Hex() string {
	return FromHSL(c.H, c.S, c.L)
}

// IsHex reports whether value is a well-formed #rrggbb string.
func IsHex(value string) bool {
	return hexPattern.MatchString(value)
}

// HexToHSL parses a #rrggbb string. Malformed input yields an
// InvalidColorFormatError naming the value.
func HexToHSL(hex string) (HSL, error) {
	if !IsHex(hex) {
		return HSL{}, brandkiterrors.NewInvalidColorFormatError(hex)
	}

	parsed, err := colorful.Hex(hex)
	if err != nil {
		return HSL{}, brandkiterrors.NewInvalidColorFormatError(hex)
	}

	// colorful reports h=0, s=0 when max == min.
	h, s, l := parsed.Hsl()
	return HSL{
		H: math.Mod(h, 360),
		S: s * 100,
		L: l * 100,
	}, nil
}

// HSLToHex is the inverse of HexToHSL.
func HSLToHex(c HSL) string {
	return c.Hex()
}

// FromHSL converts fractional HSL components to hex. Saturation and lightness
// are percentages; out-of-range inputs are clamped rather than rejected.
func FromHSL(h, s, l float64) string {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clampPercent(s) / 100
	l = clampPercent(l) / 100

	return colorful.Hsl(h, s, l).Clamped().Hex()
}

// Lightness returns the HSL lightness of a hex color rounded to a whole
// percent, or -1 when hex is malformed.
func Lightness(hex string) int {
	c, err := HexToHSL(hex)
	if err != nil {
		return -1
	}
	return int(math.Round(c.L))
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
