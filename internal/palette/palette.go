// Package palette derives a complete color palette from one base color.
package palette

import (
	"math"

	"github.com/alexisbeaulieu97/brandkit/internal/color"
	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/model"
)

// Ramp lightness runs 95, 85, ... 15.
const (
	rampStartLightness = 95
	rampLightnessStep  = 10
)

// Generate derives secondary and accent colors, the neutral ramp, one shade
// ramp per brand color and the sector's semantic colors. The base color is
// kept verbatim as primary.
func Generate(baseColor string, sector config.Sector) (model.ColorPalette, error) {
	base, err := color.HexToHSL(baseColor)
	if err != nil {
		return model.ColorPalette{}, err
	}

	secondary := Secondary(base)
	accent := Accent(base)

	return model.ColorPalette{
		Primary:   baseColor,
		Secondary: secondary.Hex(),
		Accent:    accent.Hex(),
		Neutral:   NeutralRamp(base),
		Semantic:  Semantic(sector),
		Shades: model.BrandShades{
			Primary:   ShadeRamp(base),
			Secondary: ShadeRamp(secondary),
			Accent:    ShadeRamp(accent),
		},
	}, nil
}

// Secondary is the complementary hue, held to a supporting weight: saturation
// never below 40 and lightness never above 60.
func Secondary(base color.HSL) color.HSL {
	return color.HSL{
		H: math.Mod(base.H+180, 360),
		S: math.Max(40, base.S-20),
		L: math.Min(60, base.L+10),
	}
}

// Accent sits 120 degrees around the wheel with saturation at least 50 and
// lightness at most 70.
func Accent(base color.HSL) color.HSL {
	return color.HSL{
		H: math.Mod(base.H+120, 360),
		S: math.Max(50, base.S-10),
		L: math.Min(70, base.L+20),
	}
}

// NeutralRamp keeps the base hue with saturation capped at 15 (or 30% of the
// base saturation when lower) across all nine steps.
func NeutralRamp(base color.HSL) model.Ramp {
	saturation := math.Min(15, base.S*0.3)

	var ramp model.Ramp
	for i := range ramp {
		ramp[i] = color.FromHSL(base.H, saturation, rampLightness(i))
	}
	return ramp
}

// ShadeRamp keeps c's hue and loses 5 saturation points per step, floored at 10.
func ShadeRamp(c color.HSL) model.Ramp {
	var ramp model.Ramp
	for i := range ramp {
		saturation := math.Max(10, c.S-5*float64(i))
		ramp[i] = color.FromHSL(c.H, saturation, rampLightness(i))
	}
	return ramp
}

// RampLightness returns the lightness of ramp entry i.
func RampLightness(i int) int {
	return rampStartLightness - rampLightnessStep*i
}

func rampLightness(i int) float64 {
	return float64(RampLightness(i))
}
