package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvolveValid_MatchesDirect(t *testing.T) {
	ops := Float64Ops()
	signal := []float64{1, 2, 3, 4, 5, 6}
	kernel := []float64{0.5, -1, 2}
	dst := make([]float64, len(signal)-len(kernel)+1)

	ops.ConvolveValid(dst, signal, kernel)

	for i := range dst {
		var want float64
		for k := range kernel {
			want += signal[i+k] * kernel[k]
		}
		assert.InDelta(t, want, dst[i], 1e-12, "i=%d", i)
	}
}

func TestScale(t *testing.T) {
	dst := make([]float64, 3)
	Float64Ops().Scale(dst, []float64{1, -2, 4}, 0.5)
	assert.Equal(t, []float64{0.5, -1, 2}, dst)
}
