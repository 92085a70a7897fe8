// Package pipeline runs whole-buffer processing stages in sequence.
// Each stage consumes an owned pcm.Buffer and produces a new one; the
// pipeline releases every intermediate buffer once the next stage has
// consumed it.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tphakala/go-pcm-downsampler/internal/pcm"
)

// ErrNoStages indicates a pipeline built without stages.
var ErrNoStages = errors.New("pipeline has no stages")

// Stage represents a single processing stage in the pipeline.
type Stage interface {
	// Name identifies the stage in logs and errors.
	Name() string

	// Process transforms the input buffer into a newly allocated output
	// buffer. The input is not modified.
	Process(input *pcm.Buffer) (*pcm.Buffer, error)

	// GetRatio returns the stage's resampling ratio (output/input).
	GetRatio() float64

	// GetLatency returns the stage latency in samples.
	GetLatency() int

	// GetFilterLength returns the filter length (0 if not applicable).
	GetFilterLength() int
}

// Pipeline is an ordered list of stages.
type Pipeline struct {
	stages       []Stage
	logger       *slog.Logger
	totalRatio   float64
	totalLatency int
}

// New builds a pipeline from stages. A nil logger discards records.
func New(logger *slog.Logger, stages ...Stage) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	p := &Pipeline{
		stages:     make([]Stage, 0, max(defaultStageCapacity, len(stages))),
		logger:     logger,
		totalRatio: 1.0,
	}
	p.stages = append(p.stages, stages...)
	p.calculateLatency()
	return p, nil
}

// calculateLatency accumulates stage latencies in input samples.
func (p *Pipeline) calculateLatency() {
	totalLatency := 0
	cumulativeRatio := 1.0

	for _, stage := range p.stages {
		totalLatency += int(float64(stage.GetLatency()) / cumulativeRatio)
		cumulativeRatio *= stage.GetRatio()
	}

	p.totalRatio = cumulativeRatio
	p.totalLatency = totalLatency
}

// Run passes input through every stage and returns the final buffer.
// Run takes ownership of input: it and every intermediate buffer are
// released. On error no buffer is returned.
func (p *Pipeline) Run(input *pcm.Buffer) (*pcm.Buffer, error) {
	current := input
	for i, stage := range p.stages {
		p.logger.Debug("running stage",
			"index", i,
			"stage", stage.Name(),
			"input_samples", current.Len())

		next, err := stage.Process(current)
		current.Release()
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, stage.Name(), err)
		}
		current = next
	}
	return current, nil
}

// GetStages returns the pipeline stages.
func (p *Pipeline) GetStages() []Stage {
	return p.stages
}

// GetTotalRatio returns the combined ratio of all stages.
func (p *Pipeline) GetTotalRatio() float64 {
	return p.totalRatio
}

// GetTotalLatency returns the total pipeline latency in input samples.
func (p *Pipeline) GetTotalLatency() int {
	return p.totalLatency
}

// FilterLatency returns the group delay of a linear-phase FIR with the
// given number of taps.
func FilterLatency(taps int) int {
	if taps <= 0 {
		return 0
	}
	return (taps - 1) / latencyDivisor
}
