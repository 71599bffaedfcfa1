// Package overlay pastes a pre-rendered fixture sprite at each placement.
// Used by the preview path when a sprite asset is configured; the glow
// compositor handles the light itself.
package overlay

import (
	"image"

	"github.com/nfnt/resize"

	"lightscape-compositor/internal/imgio"
	"lightscape-compositor/internal/spatial"
)

// Apply returns a copy of base with the sprite alpha-composited at every
// placement. scaleFactor sizes the sprite relative to its source dimensions;
// positions are centered on the placement and clamped inside the image.
func Apply(base *image.NRGBA, sprite image.Image, m spatial.Map, scaleFactor float64) *image.NRGBA {
	b := base.Bounds()
	out := image.NewNRGBA(b)
	copy(out.Pix, base.Pix)

	if sprite == nil || len(m.Placements) == 0 || scaleFactor <= 0 {
		return out
	}

	sb := sprite.Bounds()
	sw := int(float64(sb.Dx()) * scaleFactor)
	sh := int(float64(sb.Dy()) * scaleFactor)
	if sw < 1 {
		sw = 1
	}
	if sh < 1 {
		sh = 1
	}
	scaled := imgio.ToNRGBA(resize.Resize(uint(sw), uint(sh), sprite, resize.Lanczos3))

	w, h := b.Dx(), b.Dy()
	for _, p := range m.Placements {
		cx, cy := p.PixelPosition(w, h)
		x, y := clampTopLeft(cx, cy, sw, sh, w, h)
		paste(out, scaled, x, y)
	}
	return out
}

// clampTopLeft converts a center position to a top-left corner kept inside
// the image bounds.
func clampTopLeft(cx, cy, sw, sh, w, h int) (int, int) {
	x := cx - sw/2
	y := cy - sh/2
	if x > w-sw {
		x = w - sw
	}
	if x < 0 {
		x = 0
	}
	if y > h-sh {
		y = h - sh
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// paste alpha-composites src over dst at (ox, oy).
func paste(dst, src *image.NRGBA, ox, oy int) {
	db := dst.Bounds()
	sb := src.Bounds()
	for y := 0; y < sb.Dy(); y++ {
		ty := oy + y
		if ty < db.Min.Y || ty >= db.Max.Y {
			continue
		}
		for x := 0; x < sb.Dx(); x++ {
			tx := ox + x
			if tx < db.Min.X || tx >= db.Max.X {
				continue
			}
			si := src.PixOffset(sb.Min.X+x, sb.Min.Y+y)
			a := float64(src.Pix[si+3]) / 255
			if a == 0 {
				continue
			}
			di := dst.PixOffset(tx, ty)
			for c := 0; c < 3; c++ {
				dst.Pix[di+c] = uint8(float64(src.Pix[si+c])*a + float64(dst.Pix[di+c])*(1-a) + 0.5)
			}
			if src.Pix[si+3] > dst.Pix[di+3] {
				dst.Pix[di+3] = src.Pix[si+3]
			}
		}
	}
}
