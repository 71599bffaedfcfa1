package render

import (
	"testing"

	"lightscape-compositor/internal/spatial"
)

func TestMultiplierMapping(t *testing.T) {
	cfg := SuppressConfig{}.withDefaults()
	const beam = 80.0

	tests := []struct {
		name string
		dist float64
		want float64
	}{
		{name: "Inside beam", dist: 40, want: 1.0},
		{name: "At beam edge", dist: 80, want: 1.0},
		{name: "Midpoint of linear ramp", dist: 120, want: 0.775},
		{name: "At 2x beam", dist: 160, want: 0.55},
		{name: "Between 2x and 3x", dist: 200, want: 0.55},
		{name: "Beyond 3x", dist: 300, want: 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.Multiplier(tt.dist, beam)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Multiplier(%v) = %v; want %v", tt.dist, got, tt.want)
			}
		})
	}
}

func TestMultiplierMonotonicity(t *testing.T) {
	cfg := SuppressConfig{}.withDefaults()
	const beam = 60.0
	prev := 1.0
	for d := 0.0; d <= 400; d += 5 {
		m := cfg.Multiplier(d, beam)
		if m > prev {
			t.Fatalf("Multiplier not monotone: %v at dist %v after %v", m, d, prev)
		}
		prev = m
	}
}

func TestSuppressKeepsLitBlocks(t *testing.T) {
	img := solid(400, 400, 120, 120, 120, 255)
	m := spatial.Map{Placements: []spatial.Placement{
		{ID: "p", FixtureType: spatial.FixtureUp, HorizontalPosition: 50, VerticalPosition: fp(75)},
	}}
	Suppress(img, m, SuppressConfig{})

	// Block at the placement itself is within the beam radius: untouched.
	i := img.PixOffset(200, 300)
	if img.Pix[i] != 120 {
		t.Errorf("lit block darkened: %d", img.Pix[i])
	}

	// Bottom corner is far beyond 3x the beam radius: far floor (0.35).
	i = img.PixOffset(4, 396)
	if want := q(120*0.35 + 0.5); img.Pix[i] != want {
		t.Errorf("far block = %d; want %d", img.Pix[i], want)
	}
}

func TestSuppressEaveBandWithoutRoofFixtures(t *testing.T) {
	img := solid(400, 400, 200, 200, 200, 255)
	// One uplight, zero gutter/soffit: the whole top 25% must clamp to 0.15.
	m := spatial.Map{Placements: []spatial.Placement{
		{ID: "p", FixtureType: spatial.FixtureUp, HorizontalPosition: 50, VerticalPosition: fp(75)},
	}}
	Suppress(img, m, SuppressConfig{})

	max := q(200*DefaultEaveClamp + 0.5)
	for y := 0; y < 100; y += 8 {
		for x := 0; x < 400; x += 8 {
			i := img.PixOffset(x, y)
			if img.Pix[i] > max {
				t.Fatalf("eave block (%d,%d) = %d; want <= %d", x, y, img.Pix[i], max)
			}
		}
	}
}

func TestSuppressEaveBandWithGutterNearby(t *testing.T) {
	img := solid(400, 400, 200, 200, 200, 255)
	m := spatial.Map{Placements: []spatial.Placement{
		{ID: "g", FixtureType: spatial.FixtureGutter, HorizontalPosition: 50},
	}}
	Suppress(img, m, SuppressConfig{})

	// Gutter resolves to (200, 60). A nearby eave block escapes the clamp.
	i := img.PixOffset(200, 60)
	if img.Pix[i] != 200 {
		t.Errorf("block next to gutter fixture = %d; want 200", img.Pix[i])
	}

	// An eave block beyond 12% of width from the gutter is still clamped.
	i = img.PixOffset(4, 4)
	max := q(200*DefaultEaveClamp + 0.5)
	if img.Pix[i] > max {
		t.Errorf("distant eave block = %d; want <= %d", img.Pix[i], max)
	}
}

func TestSuppressNoPlacements(t *testing.T) {
	img := solid(160, 160, 100, 100, 100, 255)
	Suppress(img, spatial.Map{}, SuppressConfig{})

	// Eave band near-black, everything else at the far floor.
	if i := img.PixOffset(80, 8); img.Pix[i] != q(100*DefaultEaveClamp+0.5) {
		t.Errorf("eave block = %d", img.Pix[i])
	}
	if i := img.PixOffset(80, 120); img.Pix[i] != q(100*DefaultFarMultiplier+0.5) {
		t.Errorf("lower block = %d", img.Pix[i])
	}
}

func TestSuppressNeverBrightens(t *testing.T) {
	img := solid(200, 200, 90, 110, 130, 255)
	m := spatial.Map{Placements: []spatial.Placement{
		{ID: "a", FixtureType: spatial.FixturePath, HorizontalPosition: 30},
		{ID: "b", FixtureType: spatial.FixtureGutter, HorizontalPosition: 70},
	}}
	Suppress(img, m, SuppressConfig{})

	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i] > 90 || img.Pix[i+1] > 110 || img.Pix[i+2] > 130 {
			t.Fatalf("suppressor added light at byte %d", i)
		}
	}
}

func fp(v float64) *float64 { return &v }

func q(v float64) uint8 { return uint8(v) }
