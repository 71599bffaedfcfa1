package render

import (
	"image/color"

	"lightscape-compositor/internal/spatial"
)

// GlowConfig holds the static per-fixture-type glow parameters. Radii and
// offset are fractions of image width/height so the tables stay
// resolution-independent.
type GlowConfig struct {
	Color        color.NRGBA
	RadiusXRatio float64
	RadiusYRatio float64
	OffsetYRatio float64 // shifts the glow center relative to the placement
	Intensity    float64
	Pool         bool // draw a ground light-pool below the glow
}

// Tall narrow glows for uplights and wells, wide flat washes for path and
// hardscape, downward washes for soffit and gutter runs.
var glowConfigs = map[spatial.FixtureType]GlowConfig{
	spatial.FixtureUp:        {Color: color.NRGBA{255, 214, 165, 255}, RadiusXRatio: 0.055, RadiusYRatio: 0.18, OffsetYRatio: -0.08, Intensity: 1.0, Pool: true},
	spatial.FixtureSoffit:    {Color: color.NRGBA{255, 226, 188, 255}, RadiusXRatio: 0.05, RadiusYRatio: 0.10, OffsetYRatio: 0.04, Intensity: 0.9, Pool: true},
	spatial.FixturePath:      {Color: color.NRGBA{255, 231, 186, 255}, RadiusXRatio: 0.07, RadiusYRatio: 0.04, OffsetYRatio: 0.015, Intensity: 0.85, Pool: true},
	spatial.FixtureWell:      {Color: color.NRGBA{255, 210, 158, 255}, RadiusXRatio: 0.05, RadiusYRatio: 0.14, OffsetYRatio: -0.06, Intensity: 0.9, Pool: false},
	spatial.FixtureHardscape: {Color: color.NRGBA{255, 202, 150, 255}, RadiusXRatio: 0.08, RadiusYRatio: 0.03, OffsetYRatio: 0.01, Intensity: 0.8, Pool: true},
	spatial.FixtureGutter:    {Color: color.NRGBA{255, 233, 204, 255}, RadiusXRatio: 0.05, RadiusYRatio: 0.08, OffsetYRatio: 0.05, Intensity: 0.85, Pool: false},
	spatial.FixtureCoreDrill: {Color: color.NRGBA{255, 216, 170, 255}, RadiusXRatio: 0.04, RadiusYRatio: 0.10, OffsetYRatio: -0.04, Intensity: 0.8, Pool: false},
	spatial.FixtureHoliday:   {Color: color.NRGBA{255, 182, 96, 255}, RadiusXRatio: 0.03, RadiusYRatio: 0.03, OffsetYRatio: 0, Intensity: 0.7, Pool: false},
}

// defaultGlow is the documented fallback for unknown fixture types.
var defaultGlow = GlowConfig{
	Color:        color.NRGBA{255, 220, 180, 255},
	RadiusXRatio: 0.06,
	RadiusYRatio: 0.10,
	OffsetYRatio: -0.05,
	Intensity:    0.85,
	Pool:         false,
}

// GlowFor returns the glow parameters for a fixture type.
func GlowFor(t spatial.FixtureType) GlowConfig {
	if c, ok := glowConfigs[t]; ok {
		return c
	}
	return defaultGlow
}
