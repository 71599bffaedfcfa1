package render

import (
	"image"
	"image/color"
	"math"

	"lightscape-compositor/internal/spatial"
)

// ApplyGlows returns a copy of the night base with a procedural glow drawn
// at every placement. Layers use screen blending so overlapping fixtures
// brighten each other instead of occluding.
func ApplyGlows(base *image.NRGBA, m spatial.Map) *image.NRGBA {
	b := base.Bounds()
	out := image.NewNRGBA(b)
	copy(out.Pix, base.Pix)

	w, h := b.Dx(), b.Dy()
	for _, p := range m.Placements {
		drawGlow(out, p, w, h)
	}
	return out
}

// Overrides lets callers swap the configured glow color per fixture type
// without touching the static tables.
type Overrides map[spatial.FixtureType]color.NRGBA

// ApplyGlowsWithOverrides is ApplyGlows with per-type color overrides.
func ApplyGlowsWithOverrides(base *image.NRGBA, m spatial.Map, ov Overrides) *image.NRGBA {
	if len(ov) == 0 {
		return ApplyGlows(base, m)
	}
	b := base.Bounds()
	out := image.NewNRGBA(b)
	copy(out.Pix, base.Pix)

	w, h := b.Dx(), b.Dy()
	for _, p := range m.Placements {
		cfg := GlowFor(p.FixtureType)
		if c, ok := ov[p.FixtureType]; ok {
			cfg.Color = c
		}
		drawGlowConfig(out, p, cfg, w, h)
	}
	return out
}

func drawGlow(img *image.NRGBA, p spatial.Placement, w, h int) {
	drawGlowConfig(img, p, GlowFor(p.FixtureType), w, h)
}

// drawGlowConfig renders the four glow layers for one placement:
// ambient halo, directional ellipse, bright core, optional ground pool.
func drawGlowConfig(img *image.NRGBA, p spatial.Placement, cfg GlowConfig, w, h int) {
	cx, cy := p.PixelPosition(w, h)
	cy += int(cfg.OffsetYRatio * float64(h))

	rx := cfg.RadiusXRatio * float64(w)
	ry := cfg.RadiusYRatio * float64(h)
	if rx < 2 {
		rx = 2
	}
	if ry < 2 {
		ry = 2
	}

	// 1. Outer ambient halo: large, soft, quadratic falloff.
	halo := 2.5 * math.Max(rx, ry)
	screenEllipse(img, cx, cy, halo, halo, cfg.Color, 0.25*cfg.Intensity, true)

	// 2. Main directional glow: the rx/ry ratio expresses direction (tall
	// for uplights, wide for ground washes).
	screenEllipse(img, cx, cy, rx, ry, cfg.Color, 0.7*cfg.Intensity, false)

	// 3. Bright core: the visible source, near-white fading into the
	// configured color.
	core := math.Max(0.15*rx, 4)
	coreEllipse(img, cx, cy, core, cfg.Color, cfg.Intensity)

	// 4. Ground light-pool spilled onto the adjacent surface.
	if cfg.Pool {
		poolY := cy + int(0.9*ry)
		screenEllipse(img, cx, poolY, 1.5*rx, 0.3*ry, cfg.Color, 0.3*cfg.Intensity, true)
	}
}

// screenEllipse screen-blends an elliptical radial gradient onto img.
// peak is the center alpha; soft selects quadratic falloff.
func screenEllipse(img *image.NRGBA, cx, cy int, rx, ry float64, col color.NRGBA, peak float64, soft bool) {
	if peak <= 0 {
		return
	}
	b := img.Bounds()
	x0 := maxInt(b.Min.X, cx-int(rx)-1)
	x1 := minInt(b.Max.X-1, cx+int(rx)+1)
	y0 := maxInt(b.Min.Y, cy-int(ry)-1)
	y1 := minInt(b.Max.Y-1, cy+int(ry)+1)

	for y := y0; y <= y1; y++ {
		dy := float64(y-cy) / ry
		for x := x0; x <= x1; x++ {
			dx := float64(x-cx) / rx
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= 1 {
				continue
			}
			f := 1 - d
			if soft {
				f *= f
			}
			a := peak * f
			i := img.PixOffset(x, y)
			img.Pix[i] = screen(img.Pix[i], col.R, a)
			img.Pix[i+1] = screen(img.Pix[i+1], col.G, a)
			img.Pix[i+2] = screen(img.Pix[i+2], col.B, a)
		}
	}
}

// coreEllipse paints the bright source point: white at the center, lerping
// into the fixture color toward the rim.
func coreEllipse(img *image.NRGBA, cx, cy int, r float64, col color.NRGBA, intensity float64) {
	b := img.Bounds()
	ri := int(r) + 1
	x0 := maxInt(b.Min.X, cx-ri)
	x1 := minInt(b.Max.X-1, cx+ri)
	y0 := maxInt(b.Min.Y, cy-ri)
	y1 := minInt(b.Max.Y-1, cy+ri)

	for y := y0; y <= y1; y++ {
		dy := float64(y - cy)
		for x := x0; x <= x1; x++ {
			dx := float64(x - cx)
			d := math.Sqrt(dx*dx+dy*dy) / r
			if d >= 1 {
				continue
			}
			cr := lerp8(255, col.R, d)
			cg := lerp8(250, col.G, d)
			cb := lerp8(240, col.B, d)
			a := intensity * (1 - d)
			i := img.PixOffset(x, y)
			img.Pix[i] = screen(img.Pix[i], cr, a)
			img.Pix[i+1] = screen(img.Pix[i+1], cg, a)
			img.Pix[i+2] = screen(img.Pix[i+2], cb, a)
		}
	}
}

// screen blends src (scaled by alpha) over dst: 255 - (255-d)(255-s)/255.
func screen(dst, src uint8, alpha float64) uint8 {
	s := float64(src) * alpha
	v := 255 - (255-float64(dst))*(255-s)/255
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t + 0.5)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
