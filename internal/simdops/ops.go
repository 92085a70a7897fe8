// Package simdops binds the float64 SIMD kernels used by the convolver.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated float64 operations.
type Ops struct {
	// ConvolveValid computes dst[i] = Σ signal[i+k]·kernel[k] for every i
	// where the kernel fits inside signal.
	ConvolveValid func(dst, signal, kernel []float64)

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

var ops64 = Ops{
	ConvolveValid: f64.ConvolveValid,
	Scale:         f64.Scale,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// Info describes the instruction set the kernels dispatch to.
func Info() string {
	return cpu.Info()
}
