package pcm

// Sample format constants (16-bit signed mono, little-endian).
const (
	// BytesPerSample is the size of one encoded sample.
	BytesPerSample = 2

	// FullScale maps int16 samples onto [-1, 1).
	FullScale = 32768.0

	minSample = -32768
	maxSample = 32767

	// DefaultMaxBytes bounds a single buffer allocation (1 GiB).
	DefaultMaxBytes = 1 << 30
)
