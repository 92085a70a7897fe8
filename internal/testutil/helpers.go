// Package testutil provides reusable test helper functions for downsampler tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// halfDivisor is used for finding center indices in symmetric arrays.
const halfDivisor = 2

// AssertSymmetric verifies that a slice is symmetric (s[i] == s[n-1-i]).
func AssertSymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric at i=%d: s[%d]=%g != s[%d]=%g", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertDCGain verifies that the sum of coefficients equals the expected DC gain.
func AssertDCGain(t *testing.T, coeffs []float64, expectedGain, tolerance float64) bool {
	t.Helper()
	var sum float64
	for _, c := range coeffs {
		sum += c
	}
	return assert.InDelta(t, expectedGain, sum, tolerance,
		"DC gain = %f, want %f", sum, expectedGain)
}

// AssertCenterIsMax verifies that the center element is the maximum value.
func AssertCenterIsMax(t *testing.T, s []float64) bool {
	t.Helper()
	if len(s) == 0 {
		return assert.Fail(t, "empty slice")
	}
	centerIdx := len(s) / halfDivisor
	centerValue := s[centerIdx]
	for i, v := range s {
		if v > centerValue {
			return assert.Fail(t, "center is not max",
				"s[%d]=%f > center s[%d]=%f", i, v, centerIdx, centerValue)
		}
	}
	return true
}

// AssertAllZero verifies that every sample is zero.
func AssertAllZero(t *testing.T, s []int16) bool {
	t.Helper()
	for i, v := range s {
		if v != 0 {
			return assert.Fail(t, "non-zero sample", "s[%d]=%d", i, v)
		}
	}
	return true
}

// AssertSamplesWithin verifies that two sample slices match within lsb
// quantisation steps.
func AssertSamplesWithin(t *testing.T, expected, actual []int16, lsb int) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	for i := range expected {
		diff := int(expected[i]) - int(actual[i])
		if diff < -lsb || diff > lsb {
			return assert.Fail(t, "sample mismatch",
				"s[%d]: expected %d, got %d (tolerance %d)", i, expected[i], actual[i], lsb)
		}
	}
	return true
}

// Impulse returns n samples with amplitude at index 0 and zero elsewhere.
func Impulse(n int, amplitude int16) []int16 {
	s := make([]int16, n)
	if n > 0 {
		s[0] = amplitude
	}
	return s
}

// Sine returns n samples of a sine at freq cycles per sample.
func Sine(n int, freq, amplitude float64) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = int16(math.Round(amplitude * math.Sin(2*math.Pi*freq*float64(i))))
	}
	return s
}
