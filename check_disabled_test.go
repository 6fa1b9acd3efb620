//go:build sobol_unchecked

package sobol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUncheckedArgumentsWrap(t *testing.T) {
	assert.NotPanics(t, func() {
		v := Sample(MaxSamples, NumDimensions, 0)
		assert.Equal(t, Sample(0, 0, 0), v)
		assert.Less(t, v, float32(1))

		assert.Equal(t, Sample4D(3, 1, 9), Sample4D(3|MaxSamples, 1+NumDimensionSets, 9))
		assert.Equal(t, Raw(5, 2), Raw(5, 2+NumDimensions))
	})
}

func TestUncheckedPointTruncates(t *testing.T) {
	dst := make([]float32, NumDimensions+3)
	assert.NotPanics(t, func() { Point(dst, 1, 1) })
	assert.Equal(t, Sample(1, NumDimensions-1, 1), dst[NumDimensions-1])
	assert.Zero(t, dst[NumDimensions])
}
