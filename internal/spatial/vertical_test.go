package spatial

import "testing"

func fp(v float64) *float64 { return &v }

func TestVerticalPercent(t *testing.T) {
	tests := []struct {
		name string
		p    Placement
		want float64
	}{
		{
			name: "Explicit position wins over anchor",
			p:    Placement{FixtureType: FixtureUp, VerticalPosition: fp(42), Anchor: "under the gutter"},
			want: 42,
		},
		{
			name: "Explicit position clamped",
			p:    Placement{FixtureType: FixturePath, VerticalPosition: fp(104.2)},
			want: 100,
		},
		{
			name: "Roof anchor",
			p:    Placement{FixtureType: FixtureUp, Anchor: "along the roof line"},
			want: 15,
		},
		{
			name: "Gutter beats dormer when both appear",
			p:    Placement{FixtureType: FixtureUp, Anchor: "dormer gutter corner"},
			want: 15,
		},
		{
			name: "Dormer anchor",
			p:    Placement{FixtureType: FixtureUp, Anchor: "left dormer"},
			want: 20,
		},
		{
			name: "Second floor",
			p:    Placement{FixtureType: FixtureUp, Anchor: "second story window"},
			want: 35,
		},
		{
			name: "2nd shorthand",
			p:    Placement{FixtureType: FixtureUp, Anchor: "2nd floor"},
			want: 35,
		},
		{
			name: "Generic window",
			p:    Placement{FixtureType: FixtureUp, Anchor: "bay window"},
			want: 50,
		},
		{
			name: "First floor window drops below generic window",
			p:    Placement{FixtureType: FixtureUp, Anchor: "first floor window"},
			want: 60,
		},
		{
			name: "1st shorthand",
			p:    Placement{FixtureType: FixtureUp, Anchor: "1st story trim"},
			want: 60,
		},
		{
			name: "No anchor falls back to type default",
			p:    Placement{FixtureType: FixturePath},
			want: 88,
		},
		{
			name: "Gutter type default",
			p:    Placement{FixtureType: FixtureGutter, Anchor: "left corner"},
			want: 15,
		},
		{
			name: "Holiday type default",
			p:    Placement{FixtureType: FixtureHoliday},
			want: 18,
		},
		{
			name: "Unknown type falls back to 70",
			p:    Placement{FixtureType: "laser", Anchor: "driveway"},
			want: 70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.VerticalPercent(); got != tt.want {
				t.Errorf("VerticalPercent() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestPixelPosition(t *testing.T) {
	p := Placement{FixtureType: FixtureUp, HorizontalPosition: 50, VerticalPosition: fp(75)}
	x, y := p.PixelPosition(1000, 800)
	if x != 500 || y != 600 {
		t.Errorf("PixelPosition() = (%d, %d); want (500, 600)", x, y)
	}

	// Right/bottom edge stays inside the image.
	edge := Placement{FixtureType: FixtureUp, HorizontalPosition: 100, VerticalPosition: fp(100)}
	x, y = edge.PixelPosition(1000, 800)
	if x != 999 || y != 799 {
		t.Errorf("PixelPosition() at edge = (%d, %d); want (999, 799)", x, y)
	}
}

func TestNormalize(t *testing.T) {
	m := Map{
		Features: []Feature{{ID: "f1", HorizontalPosition: -3}},
		Placements: []Placement{
			{ID: "p1", HorizontalPosition: 101.5},
			{ID: "p2", HorizontalPosition: 50, VerticalPosition: fp(-0.2)},
			{ID: "p3", HorizontalPosition: 99},
		},
	}

	if got := Normalize(&m); got != 3 {
		t.Fatalf("Normalize() = %d; want 3", got)
	}
	if m.Placements[0].HorizontalPosition != 100 {
		t.Errorf("placement horizontal not clamped: %v", m.Placements[0].HorizontalPosition)
	}
	if *m.Placements[1].VerticalPosition != 0 {
		t.Errorf("placement vertical not clamped: %v", *m.Placements[1].VerticalPosition)
	}
	if m.Features[0].HorizontalPosition != 0 {
		t.Errorf("feature horizontal not clamped: %v", m.Features[0].HorizontalPosition)
	}
	if m.Placements[2].HorizontalPosition != 99 {
		t.Errorf("in-range value changed: %v", m.Placements[2].HorizontalPosition)
	}
}
