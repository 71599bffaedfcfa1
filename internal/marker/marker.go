// Package marker draws numbered, color-coded placement markers onto a
// photo. The overlay is a visual guide for an external generation model and
// for debugging; plain opaque paint, no blend modes.
package marker

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"lightscape-compositor/internal/spatial"
)

var markerColors = map[spatial.FixtureType]color.NRGBA{
	spatial.FixtureUp:        {255, 170, 0, 255},
	spatial.FixtureSoffit:    {64, 156, 255, 255},
	spatial.FixturePath:      {52, 199, 89, 255},
	spatial.FixtureWell:      {175, 82, 222, 255},
	spatial.FixtureHardscape: {255, 105, 97, 255},
	spatial.FixtureGutter:    {90, 200, 250, 255},
	spatial.FixtureCoreDrill: {255, 214, 10, 255},
	spatial.FixtureHoliday:   {255, 59, 48, 255},
}

var markerLabels = map[spatial.FixtureType]string{
	spatial.FixtureUp:        "UP",
	spatial.FixtureSoffit:    "SOFFIT",
	spatial.FixturePath:      "PATH",
	spatial.FixtureWell:      "WELL",
	spatial.FixtureHardscape: "HARDSCAPE",
	spatial.FixtureGutter:    "GUTTER",
	spatial.FixtureCoreDrill: "CORE",
	spatial.FixtureHoliday:   "HOLIDAY",
}

var defaultMarkerColor = color.NRGBA{200, 200, 200, 255}

const (
	crosshairLen = 14
	backingR     = 13
	discR        = 10
)

// Overlay returns a copy of img with one marker per placement: a white
// crosshair, a dark backing disc, a colored disc keyed by fixture type, the
// placement index, and a shadowed type label below.
func Overlay(img *image.NRGBA, m spatial.Map) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	copy(out.Pix, img.Pix)

	w, h := b.Dx(), b.Dy()
	for i, p := range m.Placements {
		cx, cy := p.PixelPosition(w, h)
		drawMarker(out, p, cx, cy, i+1)
	}
	return out
}

func drawMarker(img *image.NRGBA, p spatial.Placement, cx, cy, index int) {
	white := color.NRGBA{255, 255, 255, 255}
	dark := color.NRGBA{20, 20, 28, 255}

	// Crosshair under everything else.
	for d := -crosshairLen; d <= crosshairLen; d++ {
		setPix(img, cx+d, cy, white)
		setPix(img, cx, cy+d, white)
	}

	fillCircle(img, cx, cy, backingR, dark)

	c, ok := markerColors[p.FixtureType]
	if !ok {
		c = defaultMarkerColor
	}
	fillCircle(img, cx, cy, discR, c)

	num := fmt.Sprintf("%d", index)
	drawTextCentered(img, num, cx, cy+4, dark)

	label, ok := markerLabels[p.FixtureType]
	if !ok {
		label = string(p.FixtureType)
	}
	// 1px drop shadow keeps the label legible on any background.
	drawTextCentered(img, label, cx+1, cy+backingR+14+1, dark)
	drawTextCentered(img, label, cx, cy+backingR+14, white)
}

func drawTextCentered(img *image.NRGBA, text string, cx, baseline int, c color.NRGBA) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(cx-width/2, baseline),
	}
	d.DrawString(text)
}

func fillCircle(img *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				setPix(img, x, y, c)
			}
		}
	}
}

func setPix(img *image.NRGBA, x, y int, c color.NRGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	i := img.PixOffset(x, y)
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}
