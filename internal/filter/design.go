package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-pcm-downsampler/internal/mathutil"
)

// ErrInvalidDesign indicates design parameters that cannot produce a filter.
var ErrInvalidDesign = errors.New("invalid filter design")

// DesignParameters fixes the shape of the windowed-sinc low-pass.
// Frequencies are normalised to the input sample rate (cycles per sample).
type DesignParameters struct {
	// EdgeFrequency is the cutoff, in (0, 0.5).
	EdgeFrequency float64

	// TransitionWidth is the width of the transition band. It determines
	// the filter order.
	TransitionWidth float64
}

// DefaultDesign returns the 21 kHz / 1 kHz design used for 48 kHz input.
func DefaultDesign() DesignParameters {
	return DesignParameters{
		EdgeFrequency:   DefaultEdgeFrequency,
		TransitionWidth: DefaultTransitionWidth,
	}
}

// IsZero reports whether p is the zero value.
func (p DesignParameters) IsZero() bool {
	return p == DesignParameters{}
}

// Validate checks if the design parameters are usable.
func (p DesignParameters) Validate() error {
	if !(p.EdgeFrequency > 0 && p.EdgeFrequency < nyquist) {
		return fmt.Errorf("%w: edge frequency %f must be in (0, %.1f)", ErrInvalidDesign, p.EdgeFrequency, nyquist)
	}
	if !(p.TransitionWidth > 0) || math.IsInf(p.TransitionWidth, 0) {
		return fmt.Errorf("%w: transition width %f must be positive", ErrInvalidDesign, p.TransitionWidth)
	}
	if hanningLengthFactor/p.TransitionWidth > maxOrder {
		return fmt.Errorf("%w: transition width %f needs more than %d taps", ErrInvalidDesign, p.TransitionWidth, maxOrder)
	}
	if order := p.Order(); order < orderDivisor {
		return fmt.Errorf("%w: filter order %d below %d", ErrInvalidDesign, order, orderDivisor)
	}
	return nil
}

// Order returns the filter order J (number of delay elements).
//
// J = round(3.1 / width) - 1, bumped by one when odd so the kernel has an
// odd number of taps and a well-defined centre.
func (p DesignParameters) Order() int {
	order := mathutil.RoundHalfUp(hanningLengthFactor/p.TransitionWidth) - 1
	if !mathutil.IsEven(order) {
		order++
	}
	return order
}

// Design is a designed FIR low-pass filter.
type Design struct {
	Params DesignParameters

	// Order is the filter order J; the kernel has J+1 taps.
	Order int

	// Window is the Hanning taper applied to the ideal response.
	Window []float64

	// Coefficients are the causal taps b[0..J].
	Coefficients []float64
}

// Taps returns the number of coefficients.
func (d *Design) Taps() int {
	return len(d.Coefficients)
}

// GroupDelay returns the delay of the linear-phase kernel in samples.
func (d *Design) GroupDelay() int {
	return d.Order / orderDivisor
}

// DesignLowPass designs a Hanning-windowed sinc low-pass filter.
//
// The ideal response b[J/2+m] = 2·fe·sinc(2π·fe·m), m ∈ [-J/2, J/2], is
// multiplied tap by tap with a Hanning window of length J+1. The result is
// symmetric (b[m] == b[J-m]) and therefore linear phase.
func DesignLowPass(p DesignParameters) (*Design, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	order := p.Order()
	window := HanningWindow(order + 1)
	coeffs := make([]float64, order+1)

	offset := order / orderDivisor
	for m := -offset; m <= offset; m++ {
		coeffs[offset+m] = idealGainFactor * p.EdgeFrequency *
			mathutil.Sinc(idealGainFactor*math.Pi*p.EdgeFrequency*float64(m))
	}

	for m := range coeffs {
		coeffs[m] *= window[m]
	}

	return &Design{
		Params:       p,
		Order:        order,
		Window:       window,
		Coefficients: coeffs,
	}, nil
}
