package engine

import (
	"github.com/tphakala/go-pcm-downsampler/internal/pcm"
	"github.com/tphakala/go-pcm-downsampler/internal/pipeline"
)

// Stage names reported to the pipeline.
const (
	stageNameFilter   = "fir-lowpass"
	stageNameResample = "linear-resample"
)

// FilterStage adapts a Convolver to the pipeline.Stage interface.
// It produces a buffer of the same length as its input.
type FilterStage struct {
	conv   *Convolver
	limit  int
	report pcm.NarrowingReport
}

var _ pipeline.Stage = (*FilterStage)(nil)

// NewFilterStage wraps conv. limit caps output allocation in bytes.
func NewFilterStage(conv *Convolver, limit int) *FilterStage {
	return &FilterStage{conv: conv, limit: limit}
}

// Name returns the stage name.
func (s *FilterStage) Name() string {
	return stageNameFilter
}

// Process filters input into a new buffer.
func (s *FilterStage) Process(input *pcm.Buffer) (*pcm.Buffer, error) {
	out, err := pcm.Alloc(input.Len(), s.limit)
	if err != nil {
		return nil, err
	}
	report, err := s.conv.Apply(out.Samples(), input.Samples())
	if err != nil {
		out.Release()
		return nil, err
	}
	s.report.Add(report)
	return out, nil
}

// Report returns the narrowing events seen so far.
func (s *FilterStage) Report() pcm.NarrowingReport {
	return s.report
}

// GetRatio returns 1; filtering keeps the sample rate.
func (s *FilterStage) GetRatio() float64 {
	return 1.0
}

// GetLatency returns the group delay of the linear-phase filter.
func (s *FilterStage) GetLatency() int {
	return pipeline.FilterLatency(s.conv.Taps())
}

// GetFilterLength returns the number of taps.
func (s *FilterStage) GetFilterLength() int {
	return s.conv.Taps()
}

// ResampleStage adapts a LinearConverter to the pipeline.Stage interface.
// The output length is fixed when the stage is created because the
// caller derives it from the input byte count.
type ResampleStage struct {
	conv          *LinearConverter
	outputSamples int
	limit         int
	report        pcm.NarrowingReport
}

var _ pipeline.Stage = (*ResampleStage)(nil)

// NewResampleStage wraps conv producing outputSamples samples per run.
func NewResampleStage(conv *LinearConverter, outputSamples, limit int) *ResampleStage {
	return &ResampleStage{conv: conv, outputSamples: outputSamples, limit: limit}
}

// Name returns the stage name.
func (s *ResampleStage) Name() string {
	return stageNameResample
}

// Process interpolates input into a new buffer of the configured length.
func (s *ResampleStage) Process(input *pcm.Buffer) (*pcm.Buffer, error) {
	out, err := pcm.Alloc(s.outputSamples, s.limit)
	if err != nil {
		return nil, err
	}
	report, err := s.conv.Convert(out.Samples(), input.Samples())
	if err != nil {
		out.Release()
		return nil, err
	}
	s.report.Add(report)
	return out, nil
}

// Report returns the narrowing events seen so far.
func (s *ResampleStage) Report() pcm.NarrowingReport {
	return s.report
}

// GetRatio returns the resampling ratio.
func (s *ResampleStage) GetRatio() float64 {
	return s.conv.GetRatio()
}

// GetLatency returns 0; interpolation adds no delay.
func (s *ResampleStage) GetLatency() int {
	return 0
}

// GetFilterLength returns 0.
func (s *ResampleStage) GetFilterLength() int {
	return 0
}
