package downsampler

import "github.com/tphakala/go-pcm-downsampler/internal/engine"

// Fixed sample rates.
const (
	// RateDAT is the input sample rate in Hz.
	RateDAT = engine.RateDAT

	// RateCD is the output sample rate in Hz.
	RateCD = engine.RateCD
)

// Output length law: output bytes = input bytes · 44.1 / 48.
const (
	outputKiloHertz = 44.1
	inputKiloHertz  = 48.0
)

// Boundary status strings returned by Resample and Status.
const (
	StatusSuccess        = "success"
	StatusOpenFailed     = "failed fopen"
	StatusAllocFailed    = "failed alloc"
	StatusResampleFailed = "failed resample"
)

// File constants
const (
	outputFileMode = 0o644
)
