// Package filter designs the anti-aliasing FIR low-pass used by the downsampler.
package filter

import "github.com/tphakala/go-pcm-downsampler/internal/mathutil"

// HanningWindow generates a Hanning window of the given length.
//
// Even lengths follow w[n] = 0.5 - 0.5*cos(2πn/N). Odd lengths use the
// half-sample shifted form w[n] = 0.5 - 0.5*cos(2π(n+0.5)/N), so that the
// window is symmetric about its centre tap: w[n] == w[N-1-n].
//
// A length below 1 yields an empty window.
func HanningWindow(length int) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)
	for n := range length {
		window[n] = mathutil.Hanning(n, length)
	}
	return window
}
