package spatial

import "strings"

// Per-type vertical defaults (percent from top) used when a placement has no
// explicit vertical position and its anchor text matches no keyword.
var verticalDefaults = map[FixtureType]float64{
	FixtureGutter:    15,
	FixtureSoffit:    20,
	FixtureUp:        75,
	FixturePath:      88,
	FixtureHardscape: 85,
	FixtureCoreDrill: 85,
	FixtureWell:      80,
	FixtureHoliday:   18,
}

const verticalFallback = 70

// VerticalPercent resolves a placement's vertical position as a percentage
// from the top of the image. Explicit positions win; otherwise the anchor
// text is matched against keyword heuristics in priority order, and finally
// the per-type default applies. Total: every placement resolves to something.
func (p Placement) VerticalPercent() float64 {
	if p.VerticalPosition != nil {
		return ClampPercent(*p.VerticalPosition)
	}

	// Keyword priority matters: ambiguous anchors like "window above the
	// second-floor gutter" must resolve by the first rule that fires.
	anchor := strings.ToLower(p.Anchor)
	switch {
	case containsAny(anchor, "roof", "gutter", "soffit"):
		return 15
	case strings.Contains(anchor, "dormer"):
		return 20
	case containsAny(anchor, "second", "2nd"):
		return 35
	case strings.Contains(anchor, "window") && !containsAny(anchor, "first", "1st"):
		return 50
	case containsAny(anchor, "first", "1st"):
		return 60
	}

	if v, ok := verticalDefaults[p.FixtureType]; ok {
		return v
	}
	return verticalFallback
}

// PixelPosition resolves the placement to pixel coordinates for an image of
// the given dimensions.
func (p Placement) PixelPosition(width, height int) (int, int) {
	x := int(ClampPercent(p.HorizontalPosition) / 100 * float64(width))
	y := int(p.VerticalPercent() / 100 * float64(height))
	if x >= width {
		x = width - 1
	}
	if y >= height {
		y = height - 1
	}
	return x, y
}

// ClampPercent clamps a coordinate into [0,100]. The upstream analyzer is
// probabilistic and occasionally drifts slightly out of range.
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Normalize clamps every out-of-range coordinate in the map in place and
// returns how many values were adjusted, so callers can log drift.
func Normalize(m *Map) int {
	clamped := 0
	for i := range m.Placements {
		p := &m.Placements[i]
		if c := ClampPercent(p.HorizontalPosition); c != p.HorizontalPosition {
			p.HorizontalPosition = c
			clamped++
		}
		if p.VerticalPosition != nil {
			if c := ClampPercent(*p.VerticalPosition); c != *p.VerticalPosition {
				*p.VerticalPosition = c
				clamped++
			}
		}
	}
	for i := range m.Features {
		f := &m.Features[i]
		if c := ClampPercent(f.HorizontalPosition); c != f.HorizontalPosition {
			f.HorizontalPosition = c
			clamped++
		}
	}
	return clamped
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
