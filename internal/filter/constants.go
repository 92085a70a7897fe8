package filter

// Reference design: a 21 kHz edge and a 1 kHz transition band at 48 kHz.
const (
	referenceSampleRate = 48000.0
	referenceEdgeHz     = 21000.0
	referenceWidthHz    = 1000.0

	// DefaultEdgeFrequency is the normalised cutoff in cycles per sample.
	DefaultEdgeFrequency = referenceEdgeHz / referenceSampleRate

	// DefaultTransitionWidth is the normalised transition bandwidth.
	DefaultTransitionWidth = referenceWidthHz / referenceSampleRate
)

const (
	// hanningLengthFactor relates the Hanning main-lobe width to filter
	// length: taps ≈ 3.1 / transition width.
	hanningLengthFactor = 3.1

	// nyquist is the upper bound for a normalised frequency.
	nyquist = 0.5

	// idealGainFactor scales the sinc so the ideal passband gain is 1.
	idealGainFactor = 2.0

	// orderDivisor splits the order into the two halves of the kernel.
	orderDivisor = 2

	// maxOrder bounds the filter length to keep design cheap.
	maxOrder = 1 << 16

	// defaultResponsePoints is the FFT size used when none is given.
	defaultResponsePoints = 4096

	// Magnitude floor and multiplier for dB conversion.
	minMagnitude = 1e-12
	dbMultiplier = 20.0
)
