package mask

import (
	"image"

	"lightscape-compositor/internal/spatial"
)

// Shape selects the footprint drawn for one placement. Each variant carries
// its own paint function, resolved once per shape rather than per pixel.
type Shape int

const (
	ShapeEllipse Shape = iota
	ShapeRect
)

func (s Shape) paintFunc() func(m *image.Gray, cx, cy, rx, ry int) {
	if s == ShapeRect {
		return fillRect
	}
	return fillEllipse
}

// ShapeConfig holds the per-fixture-type mask footprint parameters. Ratios
// are fractions of image width/height; Padding dilates the footprint so the
// inpainting region covers glow spill, not just the fixture.
type ShapeConfig struct {
	WidthRatio          float64
	HeightRatio         float64
	Shape               Shape
	VerticalOffsetRatio float64
	Padding             float64
}

var shapeConfigs = map[spatial.FixtureType]ShapeConfig{
	spatial.FixtureUp:        {WidthRatio: 0.08, HeightRatio: 0.28, Shape: ShapeEllipse, VerticalOffsetRatio: -0.10, Padding: 1.25},
	spatial.FixtureSoffit:    {WidthRatio: 0.09, HeightRatio: 0.10, Shape: ShapeEllipse, VerticalOffsetRatio: 0.03, Padding: 1.2},
	spatial.FixturePath:      {WidthRatio: 0.07, HeightRatio: 0.06, Shape: ShapeEllipse, VerticalOffsetRatio: 0.01, Padding: 1.3},
	spatial.FixtureWell:      {WidthRatio: 0.06, HeightRatio: 0.16, Shape: ShapeEllipse, VerticalOffsetRatio: -0.06, Padding: 1.2},
	spatial.FixtureHardscape: {WidthRatio: 0.10, HeightRatio: 0.05, Shape: ShapeRect, VerticalOffsetRatio: 0.01, Padding: 1.2},
	spatial.FixtureGutter:    {WidthRatio: 0.08, HeightRatio: 0.07, Shape: ShapeRect, VerticalOffsetRatio: 0.04, Padding: 1.2},
	spatial.FixtureCoreDrill: {WidthRatio: 0.05, HeightRatio: 0.11, Shape: ShapeEllipse, VerticalOffsetRatio: -0.04, Padding: 1.2},
	spatial.FixtureHoliday:   {WidthRatio: 0.05, HeightRatio: 0.05, Shape: ShapeEllipse, VerticalOffsetRatio: 0, Padding: 1.2},
}

// defaultShape is the documented fallback for fixture types the analyzer
// invents: 7% x 12% ellipse, raised 5%, 1.2x padding.
var defaultShape = ShapeConfig{
	WidthRatio:          0.07,
	HeightRatio:         0.12,
	Shape:               ShapeEllipse,
	VerticalOffsetRatio: -0.05,
	Padding:             1.2,
}

// ShapeFor returns the footprint config for a fixture type.
func ShapeFor(t spatial.FixtureType) ShapeConfig {
	if c, ok := shapeConfigs[t]; ok {
		return c
	}
	return defaultShape
}

func fillEllipse(m *image.Gray, cx, cy, rx, ry int) {
	if rx < 1 {
		rx = 1
	}
	if ry < 1 {
		ry = 1
	}
	b := m.Bounds()
	fx := float64(rx)
	fy := float64(ry)
	for y := cy - ry; y <= cy+ry; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		dy := float64(y-cy) / fy
		for x := cx - rx; x <= cx+rx; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			dx := float64(x-cx) / fx
			if dx*dx+dy*dy <= 1 {
				m.Pix[m.PixOffset(x, y)] = 255
			}
		}
	}
}

func fillRect(m *image.Gray, cx, cy, rx, ry int) {
	if rx < 1 {
		rx = 1
	}
	if ry < 1 {
		ry = 1
	}
	b := m.Bounds()
	for y := cy - ry; y <= cy+ry; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := cx - rx; x <= cx+rx; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			m.Pix[m.PixOffset(x, y)] = 255
		}
	}
}
