// Package mathutil provides the scalar math used by the FIR design.
package mathutil

import "math"

// Sinc returns the unnormalised sinc function sin(x)/x.
// Sinc(0) is exactly 1.
func Sinc(x float64) float64 {
	if x == 0 {
		return sincAtZero
	}
	return math.Sin(x) / x
}

// Hanning returns the n-th coefficient of an length-N Hanning window.
//
// Even lengths use the periodic form 0.5 - 0.5*cos(2πn/N). Odd lengths shift
// the phase by half a sample, 0.5 - 0.5*cos(2π(n+0.5)/N), which keeps the
// window symmetric about its centre tap.
func Hanning(n, length int) float64 {
	pos := float64(n)
	if length%2 != 0 {
		pos += oddPhaseOffset
	}
	return hanningHalf - hanningHalf*math.Cos(twoPi*pos/float64(length))
}

// RoundHalfUp rounds a non-negative value to the nearest integer, with
// halves rounding up. It mirrors the classic int(x + 0.5) idiom.
func RoundHalfUp(x float64) int {
	return int(x + orderRoundingBias)
}

// IsEven reports whether n is even.
func IsEven(n int) bool {
	return n%2 == 0
}
