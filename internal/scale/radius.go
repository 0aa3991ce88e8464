package scale

import (
	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/model"
)

var radiusNames = [7]string{"none", "sm", "base", "md", "lg", "xl", "full"}

// Radii returns the border radius ladder for a brand personality. Unknown
// personalities use the professional ladder.
func Radii(personality config.Personality) model.Scale {
	var values [7]string
	switch personality {
	case config.PersonalityFriendly:
		values = [7]string{"0", "4px", "8px", "12px", "16px", "24px", "9999px"}
	case config.PersonalityPlayful:
		values = [7]string{"0", "6px", "12px", "16px", "24px", "32px", "9999px"}
	case config.PersonalityLuxurious:
		values = [7]string{"0", "0", "2px", "2px", "4px", "6px", "9999px"}
	case config.PersonalityBold:
		values = [7]string{"0", "2px", "4px", "4px", "6px", "8px", "9999px"}
	case config.PersonalityProfessional:
		fallthrough
	default:
		values = [7]string{"0", "2px", "4px", "6px", "8px", "12px", "9999px"}
	}

	out := make(model.Scale, len(radiusNames))
	for i, name := range radiusNames {
		out[i] = model.Step{Name: name, Value: values[i]}
	}
	return out
}
