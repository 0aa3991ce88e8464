package config

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Sector selects the semantic color row and the fallback font pairing.
type Sector string

const (
	SectorTech      Sector = "tech"
	SectorFinance   Sector = "finance"
	SectorHealth    Sector = "health"
	SectorEducation Sector = "education"
	SectorRetail    Sector = "retail"
	SectorCreative  Sector = "creative"
)

// Sectors lists every known sector in display order.
var Sectors = []Sector{SectorTech, SectorFinance, SectorHealth, SectorEducation, SectorRetail, SectorCreative}

// Resolve maps unknown or empty sectors to SectorTech.
func (s Sector) Resolve() Sector {
	switch s {
	case SectorTech, SectorFinance, SectorHealth, SectorEducation, SectorRetail, SectorCreative:
		return s
	default:
		return SectorTech
	}
}

// Style drives the typographic ratio, font overrides and shadow intensity.
type Style string

const (
	StyleMinimaliste Style = "minimaliste"
	StyleModerne     Style = "moderne"
	StyleClassique   Style = "classique"
)

// Styles lists every known style in display order.
var Styles = []Style{StyleMinimaliste, StyleModerne, StyleClassique}

// Known reports whether s is one of the declared styles. Unknown styles are
// still usable: every style table has its own default arm.
func (s Style) Known() bool {
	switch s {
	case StyleMinimaliste, StyleModerne, StyleClassique:
		return true
	default:
		return false
	}
}

// Personality selects the border radius scale.
type Personality string

const (
	PersonalityProfessional Personality = "professional"
	PersonalityFriendly     Personality = "friendly"
	PersonalityPlayful      Personality = "playful"
	PersonalityLuxurious    Personality = "luxurious"
	PersonalityBold         Personality = "bold"
)

// Personalities lists every known brand personality in display order.
var Personalities = []Personality{PersonalityProfessional, PersonalityFriendly, PersonalityPlayful, PersonalityLuxurious, PersonalityBold}

// Resolve maps unknown or empty personalities to PersonalityProfessional.
func (p Personality) Resolve() Personality {
	switch p {
	case PersonalityProfessional, PersonalityFriendly, PersonalityPlayful, PersonalityLuxurious, PersonalityBold:
		return p
	default:
		return PersonalityProfessional
	}
}

// DesignSystemConfig is the only input of a generation. Callers own it and
// must not mutate it while a generation is running.
type DesignSystemConfig struct {
	Name             string      `yaml:"name" json:"name" validate:"required,min=1,max=100"`
	Version          string      `yaml:"version" json:"version" validate:"required,max=64"`
	Description      string      `yaml:"description,omitempty" json:"description,omitempty"`
	Sector           Sector      `yaml:"sector,omitempty" json:"sector"`
	Style            Style       `yaml:"style,omitempty" json:"style"`
	BaseColor        string      `yaml:"base_color" json:"baseColor" validate:"required,hexcolor6"`
	BrandPersonality Personality `yaml:"brand_personality,omitempty" json:"brandPersonality"`
}

// Default returns the configuration offered as a starting point by `brandkit init`.
func Default() DesignSystemConfig {
	return DesignSystemConfig{
		Name:             "My Design System",
		Version:          "1.0.0",
		Sector:           SectorTech,
		Style:            StyleModerne,
		BaseColor:        "#3b82f6",
		BrandPersonality: PersonalityProfessional,
	}
}

// DisplayVersion renders Version canonically when it parses as semver
// ("1.2" becomes "1.2.0") and verbatim otherwise.
func (c DesignSystemConfig) DisplayVersion() string {
	raw := strings.TrimSpace(c.Version)
	v, err := semver.NewVersion(raw)
	if err != nil {
		return raw
	}
	return v.String()
}

// Slug is a lowercase, dash-separated form of Name suitable for identifiers.
func (c DesignSystemConfig) Slug() string {
	fields := strings.FieldsFunc(strings.ToLower(c.Name), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	if len(fields) == 0 {
		return "design-system"
	}
	return strings.Join(fields, "-")
}
