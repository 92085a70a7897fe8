package filter

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FilterResponse holds the magnitude response of a FIR filter.
type FilterResponse struct {
	// Frequencies at which the response was evaluated (normalised, 0 to 0.5).
	Frequencies []float64

	// Magnitude response at each frequency (linear scale).
	Magnitude []float64
}

// ComputeFrequencyResponse evaluates the magnitude response of coeffs with a
// real FFT of size fftSize (zero-padded). The result has fftSize/2+1 bins
// from DC to Nyquist. fftSize is raised to the next power of two that holds
// every coefficient.
func ComputeFrequencyResponse(coeffs []float64, fftSize int) FilterResponse {
	if fftSize <= 0 {
		fftSize = defaultResponsePoints
	}
	size := 1
	for size < fftSize || size < len(coeffs) {
		size <<= 1
	}

	padded := make([]float64, size)
	copy(padded, coeffs)

	fft := fourier.NewFFT(size)
	spectrum := fft.Coefficients(nil, padded)

	response := FilterResponse{
		Frequencies: make([]float64, len(spectrum)),
		Magnitude:   make([]float64, len(spectrum)),
	}
	for k, c := range spectrum {
		response.Frequencies[k] = fft.Freq(k)
		response.Magnitude[k] = cmplx.Abs(c)
	}
	return response
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}

// BandSummary reports the extreme gains of a response inside two bands.
type BandSummary struct {
	// PassbandMinDB and PassbandMaxDB bound the gain in [0, passEdge].
	PassbandMinDB float64
	PassbandMaxDB float64

	// StopbandMaxDB is the worst-case (highest) gain in [stopEdge, 0.5].
	StopbandMaxDB float64
}

// Summarize measures passband ripple and stopband rejection.
// Edges are normalised frequencies.
func (r FilterResponse) Summarize(passEdge, stopEdge float64) BandSummary {
	summary := BandSummary{
		PassbandMinDB: math.Inf(1),
		PassbandMaxDB: math.Inf(-1),
		StopbandMaxDB: math.Inf(-1),
	}
	for k, f := range r.Frequencies {
		db := MagnitudeDB(r.Magnitude[k])
		switch {
		case f <= passEdge:
			summary.PassbandMinDB = math.Min(summary.PassbandMinDB, db)
			summary.PassbandMaxDB = math.Max(summary.PassbandMaxDB, db)
		case f >= stopEdge:
			summary.StopbandMaxDB = math.Max(summary.StopbandMaxDB, db)
		}
	}
	return summary
}

// Response computes the magnitude response of the designed filter.
func (d *Design) Response(fftSize int) FilterResponse {
	return ComputeFrequencyResponse(d.Coefficients, fftSize)
}
