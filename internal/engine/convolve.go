// Package engine implements the two signal-processing stages of the
// downsampler: causal FIR convolution and linear-interpolation rate
// conversion.
package engine

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-pcm-downsampler/internal/pcm"
	"github.com/tphakala/go-pcm-downsampler/internal/simdops"
)

// ErrLengthMismatch indicates dst and src lengths that do not agree.
var ErrLengthMismatch = errors.New("buffer length mismatch")

// Convolver applies a causal FIR filter to 16-bit samples.
//
// Samples are treated as fixed-point values in [-1, 1) while accumulating,
// and rescaled to the int16 domain when written:
//
//	y[n] = narrow(32768 · Σ_{m=0}^{min(n,J)} b[m]·x[n-m]/32768)
//
// Samples before the start of the input are zero.
type Convolver struct {
	coeffs    []float64
	reversed  []float64
	narrowing pcm.Narrowing
	useSIMD   bool
	ops       *simdops.Ops
}

// ConvolverOption configures a Convolver.
type ConvolverOption func(*Convolver)

// WithNarrowing sets the int16 narrowing policy (default NarrowWrap).
func WithNarrowing(n pcm.Narrowing) ConvolverOption {
	return func(c *Convolver) {
		c.narrowing = n
	}
}

// WithSIMD enables the SIMD accumulation path. It sums in a different
// order than the scalar path, so results may differ by one LSB.
func WithSIMD(enabled bool) ConvolverOption {
	return func(c *Convolver) {
		c.useSIMD = enabled
	}
}

// NewConvolver creates a convolver for the given coefficients.
// The coefficients are copied.
func NewConvolver(coeffs []float64, opts ...ConvolverOption) *Convolver {
	c := &Convolver{
		coeffs:   make([]float64, len(coeffs)),
		reversed: make([]float64, len(coeffs)),
		ops:      simdops.Float64Ops(),
	}
	copy(c.coeffs, coeffs)
	for k := range coeffs {
		c.reversed[k] = coeffs[len(coeffs)-1-k]
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Taps returns the number of coefficients.
func (c *Convolver) Taps() int {
	return len(c.coeffs)
}

// SIMD reports whether the accelerated path is in use.
func (c *Convolver) SIMD() bool {
	return c.useSIMD && len(c.coeffs) >= minTapsForSIMD
}

// Apply filters src into dst. Both slices must have the same length.
// src is not modified.
func (c *Convolver) Apply(dst, src []int16) (pcm.NarrowingReport, error) {
	if len(dst) != len(src) {
		return pcm.NarrowingReport{}, fmt.Errorf("%w: dst has %d samples, src has %d", ErrLengthMismatch, len(dst), len(src))
	}
	if len(src) == 0 || len(c.coeffs) == 0 {
		clear(dst)
		return pcm.NarrowingReport{}, nil
	}

	if c.SIMD() {
		return c.applySIMD(dst, src), nil
	}
	return c.applyScalar(dst, src), nil
}

// applyScalar accumulates taps in ascending order.
func (c *Convolver) applyScalar(dst, src []int16) pcm.NarrowingReport {
	var report pcm.NarrowingReport
	for n := range src {
		var acc float64
		last := min(n, len(c.coeffs)-1)
		for m := 0; m <= last; m++ {
			acc += c.coeffs[m] * float64(src[n-m]) / pcm.FullScale
		}
		c.store(dst, n, acc, &report)
	}
	return report
}

// applySIMD runs a valid convolution of the reversed kernel over the input
// prefixed with J zeros, which yields the causal output for every n.
func (c *Convolver) applySIMD(dst, src []int16) pcm.NarrowingReport {
	history := len(c.coeffs) - 1
	padded := make([]float64, history+len(src))
	for i, s := range src {
		padded[history+i] = float64(s)
	}
	c.ops.Scale(padded, padded, 1/pcm.FullScale)

	acc := make([]float64, len(src))
	c.ops.ConvolveValid(acc, padded, c.reversed)

	var report pcm.NarrowingReport
	for n, v := range acc {
		c.store(dst, n, v, &report)
	}
	return report
}

func (c *Convolver) store(dst []int16, n int, acc float64, report *pcm.NarrowingReport) {
	v, overflow := c.narrowing.Narrow(acc * pcm.FullScale)
	if overflow {
		report.Overflows++
	}
	dst[n] = v
}
