package scale

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/model"
)

// ShadowIntensity is the base alpha of every shadow layer for a style.
func ShadowIntensity(style config.Style) float64 {
	switch style {
	case config.StyleMinimaliste:
		return 0.05
	case config.StyleClassique:
		return 0.15
	case config.StyleModerne:
		fallthrough
	default:
		return 0.1
	}
}

// Shadows returns the elevation ladder: sm through 2xl grow in offset and
// blur, inner is inset and none disables the shadow.
func Shadows(style config.Style) model.Scale {
	i := ShadowIntensity(style)
	return model.Scale{
		{Name: "sm", Value: fmt.Sprintf("0 1px 2px 0 %s", black(i))},
		{Name: "base", Value: fmt.Sprintf("0 1px 3px 0 %s, 0 1px 2px 0 %s", black(i), black(i*0.6))},
		{Name: "md", Value: fmt.Sprintf("0 4px 6px -1px %s, 0 2px 4px -1px %s", black(i), black(i*0.6))},
		{Name: "lg", Value: fmt.Sprintf("0 10px 15px -3px %s, 0 4px 6px -2px %s", black(i), black(i*0.5))},
		{Name: "xl", Value: fmt.Sprintf("0 20px 25px -5px %s, 0 10px 10px -5px %s", black(i), black(i*0.4))},
		{Name: "2xl", Value: fmt.Sprintf("0 25px 50px -12px %s", black(i*1.2))},
		{Name: "inner", Value: fmt.Sprintf("inset 0 2px 4px 0 %s", black(i*0.6))},
		{Name: "none", Value: "none"},
	}
}

// black renders rgba(0, 0, 0, alpha) with alpha trimmed to three decimals.
func black(alpha float64) string {
	alpha = math.Round(alpha*1000) / 1000
	return "rgba(0, 0, 0, " + strconv.FormatFloat(alpha, 'f', -1, 64) + ")"
}
