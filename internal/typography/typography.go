// Package typography resolves font pairings and computes the modular type scale.
package typography

import (
	"math"
	"strconv"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/model"
)

// BaseSize is the pixel size of the `base` step. It does not depend on the ratio.
const BaseSize = 16

const (
	RatioMinimaliste = 1.25
	RatioModerne     = 1.5
	RatioDefault     = 1.414
)

type sizeStep struct {
	exponent      int
	lineHeight    float64
	letterSpacing string
}

// Exponents -2..5 map to xs..4xl. Line heights are a fixed table.
var sizeSteps = [8]sizeStep{
	{exponent: -2, lineHeight: 1.4, letterSpacing: "0.025em"},
	{exponent: -1, lineHeight: 1.5},
	{exponent: 0, lineHeight: 1.6},
	{exponent: 1, lineHeight: 1.5},
	{exponent: 2, lineHeight: 1.4},
	{exponent: 3, lineHeight: 1.3},
	{exponent: 4, lineHeight: 1.2, letterSpacing: "-0.025em"},
	{exponent: 5, lineHeight: 1.1, letterSpacing: "-0.025em"},
}

// Generate builds the typography scale for a sector/style pair.
func Generate(sector config.Sector, style config.Style) model.TypographyScale {
	ratio := Ratio(style)
	return model.TypographyScale{
		FontFamilies: Families(sector, style),
		FontSizes:    Sizes(ratio),
		FontWeights:  Weights(),
		Ratio:        ratio,
	}
}

// Ratio returns the modular scale ratio of style.
func Ratio(style config.Style) float64 {
	switch style {
	case config.StyleMinimaliste:
		return RatioMinimaliste
	case config.StyleModerne:
		return RatioModerne
	default:
		return RatioDefault
	}
}

// Sizes computes round(16 * ratio^k) for each step.
func Sizes(ratio float64) model.FontSizes {
	var out [8]model.FontSize
	for i, step := range sizeSteps {
		out[i] = model.FontSize{
			Size:          Px(ratio, step.exponent),
			LineHeight:    step.lineHeight,
			LetterSpacing: step.letterSpacing,
		}
	}
	return model.FontSizes{
		XS:   out[0],
		SM:   out[1],
		Base: out[2],
		LG:   out[3],
		XL:   out[4],
		XL2:  out[5],
		XL3:  out[6],
		XL4:  out[7],
	}
}

// Px renders one step of the scale as a pixel string.
func Px(ratio float64, exponent int) string {
	size := math.Round(BaseSize * math.Pow(ratio, float64(exponent)))
	return strconv.Itoa(int(size)) + "px"
}

// Weights returns the fixed weight table.
func Weights() model.FontWeights {
	return model.FontWeights{
		Light:     300,
		Regular:   400,
		Medium:    500,
		Semibold:  600,
		Bold:      700,
		Extrabold: 800,
	}
}
