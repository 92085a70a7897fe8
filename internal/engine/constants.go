package engine

// Reference rates for the DAT to CD conversion.
const (
	// RateDAT is the input rate in Hz.
	RateDAT = 48000.0

	// RateCD is the output rate in Hz.
	RateCD = 44100.0
)

// Convolution constants
const (
	// minTapsForSIMD is the shortest kernel worth the padded float64 copy.
	minTapsForSIMD = 8
)
