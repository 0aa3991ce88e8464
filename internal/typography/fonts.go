package typography

import (
	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/model"
)

// MonoFamily is used for code regardless of sector or style.
const MonoFamily = "'JetBrains Mono', 'Fira Code', monospace"

type fontPair struct {
	heading string
	body    string
}

// Families resolves heading and body fonts: a style entry wins field by field,
// anything it leaves empty comes from the sector.
func Families(sector config.Sector, style config.Style) model.FontFamilies {
	base := sectorFonts(sector)
	override := styleFonts(style)

	families := model.FontFamilies{
		Heading: base.heading,
		Body:    base.body,
		Mono:    MonoFamily,
	}
	if override.heading != "" {
		families.Heading = override.heading
	}
	if override.body != "" {
		families.Body = override.body
	}
	return families
}

func sectorFonts(sector config.Sector) fontPair {
	switch sector {
	case config.SectorFinance:
		return fontPair{heading: "'IBM Plex Sans', sans-serif", body: "'Source Sans 3', sans-serif"}
	case config.SectorHealth:
		return fontPair{heading: "'Nunito', sans-serif", body: "'Open Sans', sans-serif"}
	case config.SectorEducation:
		return fontPair{heading: "'Merriweather', serif", body: "'Lato', sans-serif"}
	case config.SectorRetail:
		return fontPair{heading: "'Poppins', sans-serif", body: "'Roboto', sans-serif"}
	case config.SectorCreative:
		return fontPair{heading: "'Montserrat', sans-serif", body: "'Raleway', sans-serif"}
	case config.SectorTech:
		fallthrough
	default:
		return fontPair{heading: "'Inter', sans-serif", body: "'Inter', sans-serif"}
	}
}

func styleFonts(style config.Style) fontPair {
	switch style {
	case config.StyleMinimaliste:
		return fontPair{heading: "'Helvetica Neue', Arial, sans-serif", body: "'Helvetica Neue', Arial, sans-serif"}
	case config.StyleModerne:
		return fontPair{heading: "'Space Grotesk', sans-serif"}
	case config.StyleClassique:
		return fontPair{heading: "'Playfair Display', serif", body: "'Lora', serif"}
	default:
		return fontPair{}
	}
}
