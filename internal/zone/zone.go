// Package zone crops a vertical band of an image for focused external
// reprocessing and pastes the processed band back at the correct offset,
// leaving the untouched band pixel-identical.
package zone

import (
	"fmt"
	"image"
)

// Band is the result of a top crop: the remaining rows plus the original
// full dimensions needed to recombine later.
type Band struct {
	Image      *image.NRGBA
	FullWidth  int
	FullHeight int
	TopPercent float64
}

// CropTopPercent removes the top percent of rows and returns the remaining
// band. The crop is lossless: remaining rows are copied byte for byte.
func CropTopPercent(img *image.NRGBA, percent float64) (Band, error) {
	if percent < 0 || percent >= 100 {
		return Band{}, fmt.Errorf("zone: crop percent %v out of range [0,100)", percent)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	top := int(percent / 100 * float64(h))
	if top >= h {
		return Band{}, fmt.Errorf("zone: crop of %v%% leaves no rows in %dx%d image", percent, w, h)
	}

	band := image.NewNRGBA(image.Rect(0, 0, w, h-top))
	for y := 0; y < h-top; y++ {
		src := img.PixOffset(b.Min.X, b.Min.Y+top+y)
		dst := y * band.Stride
		copy(band.Pix[dst:dst+w*4], img.Pix[src:src+w*4])
	}

	return Band{Image: band, FullWidth: w, FullHeight: h, TopPercent: percent}, nil
}

// CompositeOntoFullImage draws the original full image first, then pastes
// the processed band at the crop offset. Draw order matters: the full image
// goes down first so residual top-band content in the processed output
// cannot leak into the preserved band.
func CompositeOntoFullImage(full *image.NRGBA, processed *image.NRGBA, percent float64) (*image.NRGBA, error) {
	if percent < 0 || percent >= 100 {
		return nil, fmt.Errorf("zone: recombine percent %v out of range [0,100)", percent)
	}
	fb := full.Bounds()
	w, h := fb.Dx(), fb.Dy()
	top := int(percent / 100 * float64(h))

	pb := processed.Bounds()
	if pb.Dx() != w || pb.Dy() != h-top {
		return nil, fmt.Errorf("zone: processed band %dx%d does not fit %dx%d with %v%% crop",
			pb.Dx(), pb.Dy(), w, h, percent)
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := full.PixOffset(fb.Min.X, fb.Min.Y+y)
		copy(out.Pix[y*out.Stride:y*out.Stride+w*4], full.Pix[src:src+w*4])
	}
	for y := 0; y < h-top; y++ {
		src := processed.PixOffset(pb.Min.X, pb.Min.Y+y)
		dst := (top + y) * out.Stride
		copy(out.Pix[dst:dst+w*4], processed.Pix[src:src+w*4])
	}
	return out, nil
}
