package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-pcm-downsampler/internal/pcm"
)

// ErrOutOfBounds indicates an output position past the end of the input.
var ErrOutOfBounds = errors.New("interpolation position out of bounds")

// LinearConverter resamples by linear interpolation between neighbouring
// input samples.
//
// Output sample i sits at input position p = i·inputRate/outputRate and is
// round(x[⌊p⌋] + (x[⌊p⌋+1] - x[⌊p⌋])·(p - ⌊p⌋)). Past the last input sample
// the right-hand neighbour is taken as zero, so the tail fades toward
// silence. A position whose left-hand sample does not exist is an error.
type LinearConverter struct {
	inputRate  float64
	outputRate float64
	narrowing  pcm.Narrowing
}

// NewLinearConverter creates a converter for the given rates.
func NewLinearConverter(inputRate, outputRate float64) (*LinearConverter, error) {
	if !(inputRate > 0) || !(outputRate > 0) || math.IsInf(inputRate, 0) || math.IsInf(outputRate, 0) {
		return nil, fmt.Errorf("invalid rates: %g Hz -> %g Hz", inputRate, outputRate)
	}
	return &LinearConverter{
		inputRate:  inputRate,
		outputRate: outputRate,
	}, nil
}

// NewDATtoCD creates the 48 kHz to 44.1 kHz converter.
func NewDATtoCD() *LinearConverter {
	return &LinearConverter{inputRate: RateDAT, outputRate: RateCD}
}

// SetNarrowing sets the int16 narrowing policy.
func (l *LinearConverter) SetNarrowing(n pcm.Narrowing) {
	l.narrowing = n
}

// GetRatio returns the resampling ratio (output/input).
func (l *LinearConverter) GetRatio() float64 {
	return l.outputRate / l.inputRate
}

// Position returns the input position of output sample i.
func (l *LinearConverter) Position(i int) float64 {
	return float64(i) * l.inputRate / l.outputRate
}

// Convert fills every sample of dst from src.
func (l *LinearConverter) Convert(dst, src []int16) (pcm.NarrowingReport, error) {
	var report pcm.NarrowingReport
	for i := range dst {
		pos := l.Position(i)
		ip := int(math.Floor(pos))
		if ip >= len(src) {
			return report, fmt.Errorf("%w: output %d maps to input %d of %d", ErrOutOfBounds, i, ip, len(src))
		}

		start := float64(src[ip])
		var end float64
		if ip+1 < len(src) {
			end = float64(src[ip+1])
		}

		v, overflow := l.narrowing.Narrow(math.Round(start + (end-start)*(pos-float64(ip))))
		if overflow {
			report.Overflows++
		}
		dst[i] = v
	}
	return report, nil
}
