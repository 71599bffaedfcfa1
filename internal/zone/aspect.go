package zone

// AspectRatio is one of the discrete ratios the external refinement service
// accepts.
type AspectRatio string

const (
	Aspect16x9 AspectRatio = "16:9"
	Aspect4x3  AspectRatio = "4:3"
	Aspect1x1  AspectRatio = "1:1"
	Aspect3x4  AspectRatio = "3:4"
	Aspect9x16 AspectRatio = "9:16"
)

// ClosestAspectRatio maps raw dimensions onto the nearest supported ratio
// using fixed threshold bands.
func ClosestAspectRatio(width, height int) AspectRatio {
	if height <= 0 {
		return Aspect1x1
	}
	r := float64(width) / float64(height)
	switch {
	case r >= 1.5:
		return Aspect16x9
	case r >= 1.15:
		return Aspect4x3
	case r >= 0.85:
		return Aspect1x1
	case r >= 0.65:
		return Aspect3x4
	default:
		return Aspect9x16
	}
}
