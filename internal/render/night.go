// Package render turns a daytime photo plus a spatial map into a pre-lit
// nighttime composite: darken, draw a glow per placement, then suppress
// everything far from a real fixture.
package render

import "image"

// Per-channel night scaling. Tuned so the base reads as dusk with a blue
// cast while keeping enough luminance detail for glow compositing and
// downstream inpainting. Apply exactly once per photo; a second application
// compounds the darkening.
const (
	NightScaleR = 0.22
	NightScaleG = 0.25
	NightScaleB = 0.40
)

// NightBase returns a darkened, blue-shifted copy of the photo. Alpha is
// preserved.
func NightBase(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		out.Pix[i] = uint8(float64(img.Pix[i])*NightScaleR + 0.5)
		out.Pix[i+1] = uint8(float64(img.Pix[i+1])*NightScaleG + 0.5)
		out.Pix[i+2] = uint8(float64(img.Pix[i+2])*NightScaleB + 0.5)
		out.Pix[i+3] = img.Pix[i+3]
	}
	return out
}
