package mask

import (
	"sort"

	"lightscape-compositor/internal/spatial"
)

// DefaultGapThreshold is the horizontal distance (percentage points) beyond
// which two same-type placements stop sharing a mask. Empirically tuned;
// override through Options, not by editing this.
const DefaultGapThreshold = 40.0

type groupKey struct {
	fixtureType spatial.FixtureType
	subOption   string
}

// cluster partitions placements by (fixtureType, subOption), sorts each
// partition by horizontal position, and splits on gaps wider than the
// threshold. Single-linkage with a fixed threshold: deterministic and
// order-stable, not globally optimal.
func cluster(placements []spatial.Placement, gapThreshold float64) [][]spatial.Placement {
	byKey := make(map[groupKey][]spatial.Placement)
	var keys []groupKey
	for _, p := range placements {
		k := groupKey{p.FixtureType, p.SubOption}
		if _, seen := byKey[k]; !seen {
			keys = append(keys, k)
		}
		byKey[k] = append(byKey[k], p)
	}

	// Map iteration order is random; keep output order stable.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].fixtureType != keys[j].fixtureType {
			return keys[i].fixtureType < keys[j].fixtureType
		}
		return keys[i].subOption < keys[j].subOption
	})

	var clusters [][]spatial.Placement
	for _, k := range keys {
		ps := byKey[k]
		sort.SliceStable(ps, func(i, j int) bool {
			if ps[i].HorizontalPosition != ps[j].HorizontalPosition {
				return ps[i].HorizontalPosition < ps[j].HorizontalPosition
			}
			return ps[i].ID < ps[j].ID
		})

		start := 0
		for i := 1; i < len(ps); i++ {
			if ps[i].HorizontalPosition-ps[i-1].HorizontalPosition > gapThreshold {
				clusters = append(clusters, ps[start:i])
				start = i
			}
		}
		clusters = append(clusters, ps[start:])
	}
	return clusters
}
