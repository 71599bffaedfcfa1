package spatial

// FixtureType identifies the kind of fixture a placement represents.
// The upstream analyzer may emit types we have never seen; every consumer
// of this package falls back to a documented default for unknown values.
type FixtureType string

const (
	FixtureUp        FixtureType = "up"
	FixtureSoffit    FixtureType = "soffit"
	FixturePath      FixtureType = "path"
	FixtureWell      FixtureType = "well"
	FixtureHardscape FixtureType = "hardscape"
	FixtureGutter    FixtureType = "gutter"
	FixtureCoreDrill FixtureType = "coredrill"
	FixtureHoliday   FixtureType = "holiday"
)

// Feature is one facade reference point produced by the analyzer.
type Feature struct {
	ID                 string  `json:"id"`
	Type               string  `json:"type"` // corner, window, door, ...
	HorizontalPosition float64 `json:"horizontalPosition"`
	Width              float64 `json:"width,omitempty"`
	Label              string  `json:"label,omitempty"`
}

// Placement is one fixture instance. Positions are percentages of image
// width/height, never pixels; resolve against real dimensions at render time.
type Placement struct {
	ID                 string      `json:"id"`
	FixtureType        FixtureType `json:"fixtureType"`
	SubOption          string      `json:"subOption,omitempty"`
	HorizontalPosition float64     `json:"horizontalPosition"`
	VerticalPosition   *float64    `json:"verticalPosition,omitempty"`
	Anchor             string      `json:"anchor,omitempty"`
	Description        string      `json:"description,omitempty"`
}

// Map is the full spatial description of one photo. Read-only once parsed.
type Map struct {
	Features   []Feature   `json:"features"`
	Placements []Placement `json:"placements"`
}
