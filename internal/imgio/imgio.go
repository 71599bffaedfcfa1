// Package imgio is the encode/decode boundary of the pipeline. Everything
// inside works on *image.NRGBA; this package converts to and from the
// formats the external services speak.
package imgio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/webp"
)

// CompositeQuality is the JPEG quality for pre-lit composites and marker
// guides sent to the generation service.
const CompositeQuality = 92

// Decode reads any registered raster format into NRGBA.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imgio: decode: %w", err)
	}
	return ToNRGBA(img), nil
}

// DecodeFile reads and decodes a photo from disk.
func DecodeFile(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imgio: read %s: %w", path, err)
	}
	img, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("imgio: %s: %w", path, err)
	}
	return img, nil
}

// EncodeJPEG writes img as JPEG at the given quality (0 means
// CompositeQuality).
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if quality <= 0 {
		quality = CompositeQuality
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("imgio: jpeg encode: %w", err)
	}
	return nil
}

// EncodeMaskWebP writes a binary mask as lossless WebP. Masks must survive
// the trip to the inpainting service bit-exact; a lossy format would smear
// the region boundary.
func EncodeMaskWebP(w io.Writer, mask *image.Gray) error {
	b := mask.Bounds()
	rgba := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := mask.Pix[mask.PixOffset(x, y)]
			i := rgba.PixOffset(x, y)
			rgba.Pix[i] = v
			rgba.Pix[i+1] = v
			rgba.Pix[i+2] = v
			rgba.Pix[i+3] = 255
		}
	}
	if err := nativewebp.Encode(w, rgba, nil); err != nil {
		return fmt.Errorf("imgio: webp encode: %w", err)
	}
	return nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imgio: png encode: %w", err)
	}
	return nil
}

// WriteFile encodes img to path, choosing the encoder by extension
// (.jpg/.jpeg, .png, .webp).
func WriteFile(path string, img image.Image, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgio: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = EncodePNG(f, img)
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	default:
		err = EncodeJPEG(f, img, quality)
	}
	if err != nil {
		return fmt.Errorf("imgio: write %s: %w", path, err)
	}
	return nil
}

// ToNRGBA converts any decoded image to NRGBA without premultiplying.
func ToNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha channel in the source; draw then force alpha opaque.
		draw.Draw(dst, b, src, b.Min, draw.Src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Pix[dst.PixOffset(x, y)+3] = 255
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
