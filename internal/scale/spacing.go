// Package scale builds the fixed-unit spacing ladder, the style-weighted
// shadow ladder and the personality-driven radius ladder.
package scale

import (
	"strconv"

	"github.com/alexisbeaulieu97/brandkit/internal/model"
)

// BaseUnit is the spacing unit in pixels.
const BaseUnit = 4

// spacingMultipliers are applied to BaseUnit, in ladder order after `px` and `0`.
var spacingMultipliers = []float64{
	0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4,
	5, 6, 8, 10, 12,
	16, 20, 24, 32, 40, 48, 56, 64,
}

// Spacing returns the 23-step ladder. It does not depend on configuration.
func Spacing() model.Scale {
	steps := make(model.Scale, 0, len(spacingMultipliers)+2)
	steps = append(steps,
		model.Step{Name: "px", Value: "1px"},
		model.Step{Name: "0", Value: "0"},
	)
	for _, n := range spacingMultipliers {
		steps = append(steps, model.Step{
			Name:  strconv.FormatFloat(n, 'f', -1, 64),
			Value: strconv.FormatFloat(n*BaseUnit, 'f', -1, 64) + "px",
		})
	}
	return steps
}
