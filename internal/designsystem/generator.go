// Package designsystem ties the palette, typography, scale, token and export
// stages together behind a single generator.
package designsystem

import (
	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/export"
	"github.com/alexisbeaulieu97/brandkit/internal/logger"
	"github.com/alexisbeaulieu97/brandkit/internal/model"
	"github.com/alexisbeaulieu97/brandkit/internal/palette"
	"github.com/alexisbeaulieu97/brandkit/internal/scale"
	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
	"github.com/alexisbeaulieu97/brandkit/internal/typography"
)

// Option customises a Generator.
type Option func(*Generator)

// WithLogger attaches a logger for fallback and completion events.
func WithLogger(log *logger.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// Generator computes design systems for one configuration. It holds no
// mutable state: every call derives its result from the config alone, so a
// Generator may be shared between goroutines.
type Generator struct {
	cfg config.DesignSystemConfig
	log *logger.Logger
}

// New returns a generator bound to cfg. cfg is copied.
func New(cfg config.DesignSystemConfig, opts ...Option) *Generator {
	g := &Generator{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.WithFields(map[string]any{"system": cfg.Name})
	return g
}

// Generate is shorthand for New(cfg).Generate().
func Generate(cfg config.DesignSystemConfig) (*model.DesignSystem, error) {
	return New(cfg).Generate()
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() config.DesignSystemConfig {
	return g.cfg
}

// GenerateColorPalette derives the palette from the configured base color.
func (g *Generator) GenerateColorPalette() (model.ColorPalette, error) {
	return palette.Generate(g.cfg.BaseColor, g.cfg.Sector)
}

// GenerateTypography resolves font families and the type scale.
func (g *Generator) GenerateTypography() model.TypographyScale {
	return typography.Generate(g.cfg.Sector, g.cfg.Style)
}

// GenerateSpacing returns the spacing ladder.
func (g *Generator) GenerateSpacing() model.Scale {
	return scale.Spacing()
}

// GenerateShadows returns the elevation ladder for the configured style.
func (g *Generator) GenerateShadows() model.Scale {
	return scale.Shadows(g.cfg.Style)
}

// GenerateRadii returns the radius ladder for the configured personality.
func (g *Generator) GenerateRadii() model.Scale {
	return scale.Radii(g.cfg.BrandPersonality)
}

// Generate computes every scale, the token list and the derived css and theme
// configuration. Each call returns a new value.
func (g *Generator) Generate() (*model.DesignSystem, error) {
	g.logFallbacks()

	colors, err := g.GenerateColorPalette()
	if err != nil {
		g.log.Error(err, "palette generation failed")
		return nil, err
	}

	typo := g.GenerateTypography()
	spacing := g.GenerateSpacing()
	shadows := g.GenerateShadows()
	radii := g.GenerateRadii()

	ds := &model.DesignSystem{
		Config:     g.cfg,
		Colors:     colors,
		Typography: typo,
		Spacing:    spacing,
		Shadows:    shadows,
		Radii:      radii,
		Tokens: tokens.Build(tokens.Input{
			Colors:     colors,
			Typography: typo,
			Spacing:    spacing,
			Shadows:    shadows,
			Radii:      radii,
		}),
		CSS:         export.CSS(colors, typo, spacing, shadows),
		ThemeConfig: export.ThemeConfig(colors, typo, spacing, shadows, radii),
	}

	g.log.WithFields(map[string]any{"tokens": len(ds.Tokens), "ratio": typo.Ratio}).Debug("design system generated")
	return ds, nil
}

// Export generates the system and renders it in format.
func (g *Generator) Export(format export.Format) (string, error) {
	ds, err := g.Generate()
	if err != nil {
		return "", err
	}
	return export.Render(ds, format)
}

// ExportNamed is Export for a format name such as "css" or "figma-tokens".
func (g *Generator) ExportNamed(name string) (string, error) {
	format, err := export.ParseFormat(name)
	if err != nil {
		return "", err
	}
	return g.Export(format)
}

func (g *Generator) logFallbacks() {
	if resolved := g.cfg.Sector.Resolve(); resolved != g.cfg.Sector {
		g.log.Fallback("sector", string(g.cfg.Sector), string(resolved))
	}
	if !g.cfg.Style.Known() {
		g.log.Fallback("style", string(g.cfg.Style), "sector fonts")
	}
	if resolved := g.cfg.BrandPersonality.Resolve(); resolved != g.cfg.BrandPersonality {
		g.log.Fallback("brand_personality", string(g.cfg.BrandPersonality), string(resolved))
	}
}
