// Package mask rasterizes fixture placements into binary inpainting masks,
// one mask per proximity cluster of same-type placements.
package mask

import (
	"errors"
	"fmt"
	"image"

	"lightscape-compositor/internal/spatial"
)

// maxMaskPixels caps mask allocation. A mask is full image size, and the
// generator must fail one group cleanly instead of taking the process down.
const maxMaskPixels = 1 << 26 // 64M pixels, ~8k x 8k

// Group is one proximity cluster rasterized into an inpainting region.
// White pixels mark the area the generation service may repaint.
type Group struct {
	FixtureType spatial.FixtureType
	SubOption   string
	Placements  []spatial.Placement
	Mask        *image.Gray
}

// Options tunes mask generation. Zero values mean defaults.
type Options struct {
	GapThreshold float64 // percentage points; default DefaultGapThreshold
	Feather      int     // blur radius in pixels; 0 = hard-edged binary mask
}

// Generate partitions every placement in the map into proximity clusters and
// rasterizes one mask per cluster. Every placement lands in exactly one
// group. A group that cannot be rasterized is reported in the returned error
// but does not abort the remaining groups; callers get partial results plus
// a joined error.
func Generate(m spatial.Map, width, height int, opts Options) ([]Group, error) {
	gap := opts.GapThreshold
	if gap <= 0 {
		gap = DefaultGapThreshold
	}

	clusters := cluster(m.Placements, gap)
	groups := make([]Group, 0, len(clusters))
	var errs []error
	for i, ps := range clusters {
		g, err := rasterize(ps, width, height, opts.Feather)
		if err != nil {
			errs = append(errs, fmt.Errorf("mask: group %d (%s/%s): %w", i, ps[0].FixtureType, ps[0].SubOption, err))
			continue
		}
		groups = append(groups, g)
	}
	return groups, errors.Join(errs...)
}

// GenerateSingleMask rasterizes a mask for one placement. Preview/debug path.
func GenerateSingleMask(p spatial.Placement, width, height int) (Group, error) {
	return rasterize([]spatial.Placement{p}, width, height, 0)
}

func rasterize(ps []spatial.Placement, width, height, feather int) (Group, error) {
	if width <= 0 || height <= 0 {
		return Group{}, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if width*height > maxMaskPixels {
		return Group{}, fmt.Errorf("mask %dx%d exceeds allocation cap", width, height)
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for _, p := range ps {
		cfg := ShapeFor(p.FixtureType)
		paint := cfg.Shape.paintFunc()

		cx, cy := p.PixelPosition(width, height)
		cy += int(cfg.VerticalOffsetRatio * float64(height))
		rx := int(cfg.WidthRatio * float64(width) * cfg.Padding / 2)
		ry := int(cfg.HeightRatio * float64(height) * cfg.Padding / 2)
		paint(img, cx, cy, rx, ry)
	}

	if feather > 0 {
		img = Feather(img, feather)
	}

	return Group{
		FixtureType: ps[0].FixtureType,
		SubOption:   ps[0].SubOption,
		Placements:  ps,
		Mask:        img,
	}, nil
}
