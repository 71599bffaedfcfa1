package mask

import "image"

// Feather softens mask edges with a separable box blur. The original
// pipeline blurs masks so the generation model blends glow into its
// surroundings instead of painting a hard seam.
func Feather(m *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		return m
	}
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()

	tmp := image.NewGray(b)
	out := image.NewGray(b)
	win := 2*radius + 1

	// Horizontal pass with a running sum per row.
	for y := 0; y < h; y++ {
		row := y * m.Stride
		sum := 0
		for x := -radius; x <= radius; x++ {
			sum += int(m.Pix[row+clampIdx(x, w)])
		}
		for x := 0; x < w; x++ {
			tmp.Pix[row+x] = uint8(sum / win)
			sum += int(m.Pix[row+clampIdx(x+radius+1, w)])
			sum -= int(m.Pix[row+clampIdx(x-radius, w)])
		}
	}

	// Vertical pass.
	for x := 0; x < w; x++ {
		sum := 0
		for y := -radius; y <= radius; y++ {
			sum += int(tmp.Pix[clampIdx(y, h)*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			out.Pix[y*out.Stride+x] = uint8(sum / win)
			sum += int(tmp.Pix[clampIdx(y+radius+1, h)*tmp.Stride+x])
			sum -= int(tmp.Pix[clampIdx(y-radius, h)*tmp.Stride+x])
		}
	}

	return out
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
