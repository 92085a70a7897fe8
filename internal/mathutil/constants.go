package mathutil

import "math"

// Filter-design constants shared by the window and sinc helpers.
const (
	// hanningHalf is the offset and amplitude of the raised cosine.
	hanningHalf = 0.5

	// oddPhaseOffset recentres an odd-length window on its middle sample.
	oddPhaseOffset = 0.5

	// twoPi is one full cycle in radians.
	twoPi = 2 * math.Pi

	// sincAtZero is the limit of sin(x)/x as x approaches zero.
	sincAtZero = 1.0

	// orderRoundingBias rounds a positive value half up when truncated.
	orderRoundingBias = 0.5
)
