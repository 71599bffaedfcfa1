package imgio

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func checkered(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			v := uint8(0)
			if (x/8+y/8)%2 == 0 {
				v = 255
			}
			img.Pix[i] = v
			img.Pix[i+1] = v
			img.Pix[i+2] = 200
			img.Pix[i+3] = 255
		}
	}
	return img
}

func TestPNGRoundTrip(t *testing.T) {
	src := checkered(64, 48)
	var buf bytes.Buffer
	if err := EncodePNG(&buf, src); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Error("PNG round trip not lossless")
	}
}

func TestJPEGDecodePreservesDimensions(t *testing.T) {
	src := checkered(100, 80)
	var buf bytes.Buffer
	if err := EncodeJPEG(&buf, src, 0); err != nil {
		t.Fatalf("EncodeJPEG() error = %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if b := got.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("decoded dims = %v", b)
	}
	// JPEG is lossy but opaque alpha must survive the NRGBA conversion.
	if got.Pix[3] != 255 {
		t.Errorf("alpha = %d; want 255", got.Pix[3])
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("garbage accepted")
	}
}

func TestWriteFileByExtension(t *testing.T) {
	dir := t.TempDir()
	src := checkered(32, 32)

	tests := []struct {
		name string
		file string
	}{
		{name: "JPEG", file: "out.jpg"},
		{name: "PNG", file: "out.png"},
		{name: "WebP", file: "out.webp"},
		{name: "Uppercase extension", file: "out.PNG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := WriteFile(path, src, 0); err != nil {
				t.Fatalf("WriteFile(%s) error = %v", tt.file, err)
			}
			got, err := DecodeFile(path)
			if err != nil {
				t.Fatalf("DecodeFile(%s) error = %v", tt.file, err)
			}
			if b := got.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
				t.Errorf("dims = %v", b)
			}
		})
	}
}

func TestToNRGBA(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	gray.SetGray(1, 1, color.Gray{Y: 77})
	got := ToNRGBA(gray)
	i := got.PixOffset(1, 1)
	if got.Pix[i] != 77 || got.Pix[i+3] != 255 {
		t.Errorf("gray conversion = %v", got.Pix[i:i+4])
	}

	// NRGBA passes through without copying.
	n := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if ToNRGBA(n) != n {
		t.Error("NRGBA input should be returned as-is")
	}
}

func TestEncodeMaskWebPRoundTrip(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 40, 40))
	for x := 10; x < 30; x++ {
		m.Pix[20*m.Stride+x] = 255
	}

	var buf bytes.Buffer
	if err := EncodeMaskWebP(&buf, m); err != nil {
		t.Fatalf("EncodeMaskWebP() error = %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Pix[got.PixOffset(15, 20)] != 255 {
		t.Error("white mask row lost")
	}
	if got.Pix[got.PixOffset(5, 5)] != 0 {
		t.Error("black region lost")
	}
}
