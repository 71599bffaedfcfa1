package render

import (
	"fmt"
	"image"

	"lightscape-compositor/internal/spatial"
)

// Options configures one pre-light run. The zero value gives the standard
// pipeline: night base, glows, suppression.
type Options struct {
	SkipNight bool // caller already darkened the photo
	Glow      Overrides
	Suppress  SuppressConfig
}

// PreLight runs the full compositing pipeline on a daytime photo: night
// base, per-placement glows, then unlit-area suppression. The input buffer
// is not modified.
func PreLight(photo *image.NRGBA, m spatial.Map, opts Options) (*image.NRGBA, error) {
	b := photo.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("render: empty photo %dx%d", b.Dx(), b.Dy())
	}

	base := photo
	if !opts.SkipNight {
		base = NightBase(photo)
	}

	lit := ApplyGlowsWithOverrides(base, m, opts.Glow)
	Suppress(lit, m, opts.Suppress)
	return lit, nil
}
