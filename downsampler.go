package downsampler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tphakala/go-pcm-downsampler/internal/engine"
	"github.com/tphakala/go-pcm-downsampler/internal/filter"
	"github.com/tphakala/go-pcm-downsampler/internal/pcm"
)

// Common errors returned by the downsampler.
var (
	// ErrIO indicates the input could not be read or the output written.
	ErrIO = errors.New("i/o failure")

	// ErrAllocation indicates a sample buffer could not be allocated.
	ErrAllocation = errors.New("allocation failed")

	// ErrOutOfBounds indicates the rate converter was asked to read past
	// the end of its input.
	ErrOutOfBounds = errors.New("resample position out of bounds")

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid downsampler configuration")
)

// Narrowing selects how out-of-range results are stored as int16.
type Narrowing = pcm.Narrowing

// Narrowing policies.
const (
	// NarrowWrap keeps the low 16 bits, like a plain integer cast.
	NarrowWrap = pcm.NarrowWrap

	// NarrowSaturate clamps to [-32768, 32767].
	NarrowSaturate = pcm.NarrowSaturate
)

// NarrowingReport counts results that did not fit in int16.
type NarrowingReport = pcm.NarrowingReport

// DesignParameters holds the low-pass filter design inputs, as fractions of
// the input sample rate.
type DesignParameters = filter.DesignParameters

// Config holds downsampler configuration.
type Config struct {
	// Design sets the anti-aliasing filter. The zero value selects a
	// 21 kHz edge with a 1 kHz transition band.
	Design DesignParameters

	// Narrowing selects the int16 overflow policy. The zero value wraps.
	Narrowing Narrowing

	// EnableSIMD accumulates the filter with SIMD kernels when available.
	// Results may differ from the scalar path by one LSB.
	EnableSIMD bool

	// MaxInputBytes caps the accepted input size. Zero means 1 GiB.
	MaxInputBytes int

	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() *Config {
	return &Config{
		Design:    filter.DefaultDesign(),
		Narrowing: NarrowWrap,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !c.Narrowing.Valid() {
		return fmt.Errorf("%w: unknown narrowing policy %d", ErrInvalidConfig, int(c.Narrowing))
	}

	if c.MaxInputBytes < 0 {
		return fmt.Errorf("%w: max input bytes must not be negative", ErrInvalidConfig)
	}

	if !c.Design.IsZero() {
		if err := c.Design.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

func (c *Config) design() DesignParameters {
	if c.Design.IsZero() {
		return filter.DefaultDesign()
	}
	return c.Design
}

func (c *Config) maxInputBytes() int {
	if c.MaxInputBytes == 0 {
		return pcm.DefaultMaxBytes
	}
	return c.MaxInputBytes
}

// Status collapses err into a boundary status string.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrIO):
		return StatusOpenFailed
	case errors.Is(err, ErrAllocation):
		return StatusAllocFailed
	default:
		return StatusResampleFailed
	}
}

// mapError translates internal sentinels onto the public ones.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pcm.ErrAllocation):
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	case errors.Is(err, engine.ErrOutOfBounds):
		return fmt.Errorf("%w: %w", ErrOutOfBounds, err)
	default:
		return err
	}
}

// OutputByteSize returns the output size in bytes for inputBytes of input:
// floor(inputBytes·44.1/48), rounded down to a whole sample.
func OutputByteSize(inputBytes int) int {
	if inputBytes <= 0 {
		return 0
	}
	n := int(float64(inputBytes) * outputKiloHertz / inputKiloHertz)
	return n - n%pcm.BytesPerSample
}

// OutputSamples returns the number of output samples for inputBytes of input.
func OutputSamples(inputBytes int) int {
	return OutputByteSize(inputBytes) / pcm.BytesPerSample
}

// Info describes a configured converter.
type Info struct {
	// Algorithm describes the processing chain.
	Algorithm string

	// FilterOrder is J; the filter has J+1 taps.
	FilterOrder int

	// FilterLength is the number of filter taps.
	FilterLength int

	// Latency is the filter group delay in input samples.
	Latency int

	// Ratio is the output/input rate ratio.
	Ratio float64

	// Narrowing names the overflow policy.
	Narrowing string

	// SIMDEnabled indicates if SIMD kernels are active.
	SIMDEnabled bool

	// SIMDType describes the SIMD instruction set available.
	SIMDType string
}
