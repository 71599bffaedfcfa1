package render

import (
	"image"
	"math"

	"lightscape-compositor/internal/spatial"
)

// Suppressor defaults. The ratios are fractions of image width; the
// multipliers encode tuned visual behavior, not physics.
const (
	DefaultBlockSize       = 8
	DefaultBeamRadiusRatio = 0.08
	DefaultEaveBandRatio   = 0.25
	DefaultEaveClamp       = 0.15
	DefaultEaveReachRatio  = 0.12
	DefaultMidMultiplier   = 0.55
	DefaultFarMultiplier   = 0.35
)

// Per-type beam radius as a fraction of image width. Types absent here use
// the default ratio.
var beamRadiusRatios = map[spatial.FixtureType]float64{
	spatial.FixtureUp:        0.10,
	spatial.FixtureSoffit:    0.09,
	spatial.FixtureGutter:    0.09,
	spatial.FixtureWell:      0.08,
	spatial.FixtureHardscape: 0.07,
	spatial.FixturePath:      0.06,
	spatial.FixtureHoliday:   0.05,
}

// SuppressConfig tunes the unlit-area darkening pass. Zero values take the
// package defaults.
type SuppressConfig struct {
	BlockSize       int
	BeamRadiusRatio float64 // default beam radius for unlisted types
	EaveBandRatio   float64 // top fraction of the image treated as eave band
	EaveClamp       float64 // multiplier cap in the eave band
	EaveReachRatio  float64 // gutter/soffit distance that exempts the band
	MidMultiplier   float64 // beyond 2x beam radius
	FarMultiplier   float64 // beyond 3x beam radius
}

func (c SuppressConfig) withDefaults() SuppressConfig {
	if c.BlockSize <= 0 {
		c.BlockSize = DefaultBlockSize
	}
	if c.BeamRadiusRatio <= 0 {
		c.BeamRadiusRatio = DefaultBeamRadiusRatio
	}
	if c.EaveBandRatio <= 0 {
		c.EaveBandRatio = DefaultEaveBandRatio
	}
	if c.EaveClamp <= 0 {
		c.EaveClamp = DefaultEaveClamp
	}
	if c.EaveReachRatio <= 0 {
		c.EaveReachRatio = DefaultEaveReachRatio
	}
	if c.MidMultiplier <= 0 {
		c.MidMultiplier = DefaultMidMultiplier
	}
	if c.FarMultiplier <= 0 {
		c.FarMultiplier = DefaultFarMultiplier
	}
	return c
}

// Multiplier maps distance-to-nearest-fixture to a darkening factor.
// Inside the beam radius nothing changes; past 3x the beam the block goes
// to the far floor. Monotonically non-increasing in dist.
func (c SuppressConfig) Multiplier(dist, beamRadius float64) float64 {
	switch {
	case dist <= beamRadius:
		return 1.0
	case dist > 3*beamRadius:
		return c.FarMultiplier
	case dist > 2*beamRadius:
		return c.MidMultiplier
	default:
		// Linear 1.0 -> MidMultiplier across (r, 2r].
		t := (dist - beamRadius) / beamRadius
		return 1.0 - t*(1.0-c.MidMultiplier)
	}
}

// Suppress darkens every 8x8 block in proportion to its distance from the
// nearest placement, mutating img in place. Blocks in the eave band are
// clamped near-black unless a gutter or soffit fixture is close enough; a
// generative refinement step is disproportionately prone to inventing light
// up there. Runs after glow compositing; it only attenuates, never adds.
func Suppress(img *image.NRGBA, m spatial.Map, cfg SuppressConfig) {
	cfg = cfg.withDefaults()

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 || len(m.Placements) == 0 {
		// With no fixtures at all there is no beam to measure against;
		// darken everything to the far floor and black out the eave band.
		suppressAll(img, cfg)
		return
	}

	type source struct {
		x, y float64
		beam float64
		eave bool // gutter or soffit
	}
	sources := make([]source, len(m.Placements))
	for i, p := range m.Placements {
		px, py := p.PixelPosition(w, h)
		ratio, ok := beamRadiusRatios[p.FixtureType]
		if !ok {
			ratio = cfg.BeamRadiusRatio
		}
		sources[i] = source{
			x:    float64(px),
			y:    float64(py),
			beam: ratio * float64(w),
			eave: p.FixtureType == spatial.FixtureGutter || p.FixtureType == spatial.FixtureSoffit,
		}
	}

	eaveLimit := int(cfg.EaveBandRatio * float64(h))
	eaveReach := cfg.EaveReachRatio * float64(w)
	bs := cfg.BlockSize

	for by := 0; by < h; by += bs {
		for bx := 0; bx < w; bx += bs {
			cx := float64(bx) + float64(bs)/2
			cy := float64(by) + float64(bs)/2

			best := math.Inf(1)
			beam := cfg.BeamRadiusRatio * float64(w)
			eaveDist := math.Inf(1)
			for _, s := range sources {
				d := math.Hypot(cx-s.x, cy-s.y)
				if d < best {
					best = d
					beam = s.beam
				}
				if s.eave && d < eaveDist {
					eaveDist = d
				}
			}

			mult := cfg.Multiplier(best, beam)
			if by < eaveLimit && eaveDist > eaveReach && mult > cfg.EaveClamp {
				mult = cfg.EaveClamp
			}
			if mult >= 1 {
				continue
			}
			darkenBlock(img, bx, by, bs, w, h, mult)
		}
	}
}

func suppressAll(img *image.NRGBA, cfg SuppressConfig) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	eaveLimit := int(cfg.EaveBandRatio * float64(h))
	for by := 0; by < h; by += cfg.BlockSize {
		mult := cfg.FarMultiplier
		if by < eaveLimit {
			mult = cfg.EaveClamp
		}
		for bx := 0; bx < w; bx += cfg.BlockSize {
			darkenBlock(img, bx, by, cfg.BlockSize, w, h, mult)
		}
	}
}

func darkenBlock(img *image.NRGBA, bx, by, bs, w, h int, mult float64) {
	yEnd := minInt(by+bs, h)
	xEnd := minInt(bx+bs, w)
	for y := by; y < yEnd; y++ {
		i := img.PixOffset(bx, y)
		for x := bx; x < xEnd; x++ {
			img.Pix[i] = uint8(float64(img.Pix[i])*mult + 0.5)
			img.Pix[i+1] = uint8(float64(img.Pix[i+1])*mult + 0.5)
			img.Pix[i+2] = uint8(float64(img.Pix[i+2])*mult + 0.5)
			i += 4
		}
	}
}
