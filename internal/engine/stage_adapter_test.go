package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-pcm-downsampler/internal/pcm"
	"github.com/tphakala/go-pcm-downsampler/internal/pipeline"
	"github.com/tphakala/go-pcm-downsampler/internal/testutil"
)

func TestFilterStage_Process(t *testing.T) {
	stage := NewFilterStage(NewConvolver(defaultCoefficients(t)), 0)
	assert.Equal(t, "fir-lowpass", stage.Name())
	assert.Equal(t, 149, stage.GetFilterLength())
	assert.Equal(t, 74, stage.GetLatency())
	assert.InDelta(t, 1.0, stage.GetRatio(), 0)

	in := pcm.Wrap(testutil.Sine(480, 1000.0/48000.0, 10000))
	out, err := stage.Process(in)
	require.NoError(t, err)
	assert.Equal(t, in.Len(), out.Len())
	assert.False(t, in.Released(), "stage must not release its input")
}

func TestFilterStage_AllocationLimit(t *testing.T) {
	stage := NewFilterStage(NewConvolver(defaultCoefficients(t)), 100)
	_, err := stage.Process(pcm.Wrap(make([]int16, 51)))
	require.Error(t, err)
	assert.ErrorIs(t, err, pcm.ErrAllocation)
}

func TestFilterStage_ReportAccumulates(t *testing.T) {
	stage := NewFilterStage(NewConvolver([]float64{2.0}), 0)
	for range 2 {
		_, err := stage.Process(pcm.Wrap([]int16{20000}))
		require.NoError(t, err)
	}
	assert.Equal(t, 2, stage.Report().Overflows)
}

func TestResampleStage_Process(t *testing.T) {
	stage := NewResampleStage(NewDATtoCD(), 441, 0)
	assert.Equal(t, "linear-resample", stage.Name())
	assert.Zero(t, stage.GetLatency())
	assert.Zero(t, stage.GetFilterLength())

	out, err := stage.Process(pcm.Wrap(make([]int16, 480)))
	require.NoError(t, err)
	assert.Equal(t, 441, out.Len())
	testutil.AssertAllZero(t, out.Samples())
}

func TestResampleStage_OutOfBounds(t *testing.T) {
	stage := NewResampleStage(NewDATtoCD(), 10, 0)
	_, err := stage.Process(pcm.Wrap(make([]int16, 5)))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestStages_InPipeline(t *testing.T) {
	p, err := pipeline.New(nil,
		NewFilterStage(NewConvolver(defaultCoefficients(t)), 0),
		NewResampleStage(NewDATtoCD(), 441, 0),
	)
	require.NoError(t, err)
	assert.InDelta(t, 0.91875, p.GetTotalRatio(), 1e-12)
	assert.Equal(t, 74, p.GetTotalLatency())

	out, err := p.Run(pcm.Wrap(make([]int16, 480)))
	require.NoError(t, err)
	assert.Equal(t, 441, out.Len())
	testutil.AssertAllZero(t, out.Samples())
}
