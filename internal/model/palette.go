package model

// RampSize is the number of entries in every neutral and shade ramp.
const RampSize = 9

// RampLabels are the conventional weight labels of ramp entries, lightest first.
var RampLabels = [RampSize]string{"100", "200", "300", "400", "500", "600", "700", "800", "900"}

// Ramp is a lightness ladder of one hue, ordered from lightest (index 0) to darkest.
type Ramp [RampSize]string

// SemanticColors binds colors to UI meaning rather than brand identity.
type SemanticColors struct {
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`
}

// Named returns the semantic colors in their canonical order.
func (s SemanticColors) Named() []Step {
	return []Step{
		{Name: "success", Value: s.Success},
		{Name: "warning", Value: s.Warning},
		{Name: "error", Value: s.Error},
		{Name: "info", Value: s.Info},
	}
}

// BrandShades holds one ramp per brand color.
type BrandShades struct {
	Primary   Ramp `json:"primary"`
	Secondary Ramp `json:"secondary"`
	Accent    Ramp `json:"accent"`
}

// ColorPalette is the complete derived color set.
type ColorPalette struct {
	Primary   string         `json:"primary"`
	Secondary string         `json:"secondary"`
	Accent    string         `json:"accent"`
	Neutral   Ramp           `json:"neutral"`
	Semantic  SemanticColors `json:"semantic"`
	Shades    BrandShades    `json:"shades"`
}

// Brand returns primary, secondary and accent in order.
func (p ColorPalette) Brand() []Step {
	return []Step{
		{Name: "primary", Value: p.Primary},
		{Name: "secondary", Value: p.Secondary},
		{Name: "accent", Value: p.Accent},
	}
}

// ShadesFor returns the ramp of a brand color by name.
func (p ColorPalette) ShadesFor(brand string) (Ramp, bool) {
	switch brand {
	case "primary":
		return p.Shades.Primary, true
	case "secondary":
		return p.Shades.Secondary, true
	case "accent":
		return p.Shades.Accent, true
	default:
		return Ramp{}, false
	}
}
