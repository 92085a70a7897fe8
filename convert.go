package downsampler

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tphakala/go-pcm-downsampler/internal/engine"
	"github.com/tphakala/go-pcm-downsampler/internal/filter"
	"github.com/tphakala/go-pcm-downsampler/internal/pcm"
	"github.com/tphakala/go-pcm-downsampler/internal/pipeline"
	"github.com/tphakala/go-pcm-downsampler/internal/simdops"
)

// Converter performs the 48 kHz to 44.1 kHz conversion. The filter is
// designed once by New; a Converter is safe for concurrent use because
// every call builds its own buffers and stages.
type Converter struct {
	config   Config
	design   *filter.Design
	filter   *engine.Convolver
	resample *engine.LinearConverter
	logger   *slog.Logger
}

// Result holds the output of one conversion.
type Result struct {
	// Samples is the converted audio.
	Samples []int16

	// InputBytes is the size of the input in bytes.
	InputBytes int

	// OutputBytes is the size of the output in bytes.
	OutputBytes int

	// FilterOrder is the order J of the filter that was applied.
	FilterOrder int

	// Narrowing counts results that did not fit in int16.
	Narrowing NarrowingReport
}

// Bytes returns the samples as little-endian bytes.
func (r *Result) Bytes() []byte {
	return pcm.Encode(r.Samples)
}

// New creates a converter. A nil config selects DefaultConfig.
func New(config *Config) (*Converter, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	design, err := filter.DesignLowPass(config.design())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	resample := engine.NewDATtoCD()
	resample.SetNarrowing(config.Narrowing)

	c := &Converter{
		config: *config,
		design: design,
		filter: engine.NewConvolver(design.Coefficients,
			engine.WithNarrowing(config.Narrowing),
			engine.WithSIMD(config.EnableSIMD)),
		resample: resample,
		logger:   logger,
	}

	logger.Debug("designed low-pass filter",
		"order", design.Order,
		"taps", design.Taps(),
		"edge", design.Params.EdgeFrequency,
		"transition", design.Params.TransitionWidth,
		"simd", c.filter.SIMD())

	return c, nil
}

// Convert converts little-endian 16-bit input bytes. A trailing odd byte
// is ignored.
func (c *Converter) Convert(input []byte) (*Result, error) {
	buf, err := pcm.Decode(input, c.config.maxInputBytes())
	if err != nil {
		return nil, mapError(err)
	}
	return c.run(buf, len(input))
}

// ConvertSamples converts samples already decoded. samples is not modified.
func (c *Converter) ConvertSamples(samples []int16) (*Result, error) {
	inputBytes := len(samples) * pcm.BytesPerSample
	if inputBytes > c.config.maxInputBytes() {
		return nil, fmt.Errorf("%w: %d bytes exceed limit of %d", ErrAllocation, inputBytes, c.config.maxInputBytes())
	}
	return c.run(pcm.Wrap(samples), inputBytes)
}

// run takes ownership of input. Releasing a wrapped buffer drops the
// reference only; the caller's array is left intact.
func (c *Converter) run(input *pcm.Buffer, inputBytes int) (*Result, error) {
	limit := c.config.maxInputBytes()
	outputBytes := OutputByteSize(inputBytes)

	filterStage := engine.NewFilterStage(c.filter, limit)
	resampleStage := engine.NewResampleStage(c.resample, outputBytes/pcm.BytesPerSample, limit)

	p, err := pipeline.New(c.logger, filterStage, resampleStage)
	if err != nil {
		return nil, err
	}

	out, err := p.Run(input)
	if err != nil {
		return nil, mapError(err)
	}

	var report NarrowingReport
	report.Add(filterStage.Report())
	report.Add(resampleStage.Report())
	if report.Overflows > 0 {
		c.logger.Warn("samples exceeded int16 range",
			"count", report.Overflows,
			"policy", c.config.Narrowing.String())
	}

	c.logger.Debug("converted buffer",
		"input_bytes", inputBytes,
		"output_bytes", outputBytes)

	return &Result{
		Samples:     out.Samples(),
		InputBytes:  inputBytes,
		OutputBytes: outputBytes,
		FilterOrder: c.design.Order,
		Narrowing:   report,
	}, nil
}

// ConvertFile reads the raw PCM file inPath and writes the converted
// samples to outPath.
func (c *Converter) ConvertFile(inPath, outPath string) error {
	input, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("%w: reading input: %w", ErrIO, err)
	}

	res, err := c.Convert(input)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, res.Bytes(), outputFileMode); err != nil {
		return fmt.Errorf("%w: writing output: %w", ErrIO, err)
	}

	c.logger.Debug("wrote output file",
		"path", outPath,
		"bytes", res.OutputBytes)
	return nil
}

// Design returns the designed filter.
func (c *Converter) Design() *filter.Design {
	return c.design
}

// GetRatio returns the resampling ratio (output/input).
func (c *Converter) GetRatio() float64 {
	return c.resample.GetRatio()
}

// GetLatency returns the filter group delay in input samples.
func (c *Converter) GetLatency() int {
	return pipeline.FilterLatency(c.filter.Taps())
}

// Info returns information about the converter.
func (c *Converter) Info() Info {
	return Info{
		Algorithm:    "windowed-sinc FIR + linear interpolation",
		FilterOrder:  c.design.Order,
		FilterLength: c.filter.Taps(),
		Latency:      c.GetLatency(),
		Ratio:        c.GetRatio(),
		Narrowing:    c.config.Narrowing.String(),
		SIMDEnabled:  c.filter.SIMD(),
		SIMDType:     simdops.Info(),
	}
}

// ConvertFile converts inPath to outPath with the default configuration.
func ConvertFile(inPath, outPath string) error {
	c, err := New(nil)
	if err != nil {
		return err
	}
	return c.ConvertFile(inPath, outPath)
}

// Resample converts inPath to outPath with the default configuration and
// returns a boundary status string.
func Resample(inPath, outPath string) string {
	return Status(ConvertFile(inPath, outPath))
}
