package sobol

import (
	"math/bits"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaw(t *testing.T) {
	t.Run("zero index", func(t *testing.T) {
		for d := uint32(0); d < NumDimensions; d++ {
			require.Zero(t, Raw(0, d))
		}
	})

	t.Run("van der Corput", func(t *testing.T) {
		for i := uint32(0); i < MaxSamples; i += 3 {
			require.Equal(t, bits.Reverse32(i), Raw(i, 0))
		}
	})

	t.Run("second dimension", func(t *testing.T) {
		want := []uint32{0, 0x80000000, 0xc0000000, 0x40000000, 0xa0000000}
		for i, w := range want {
			assert.Equal(t, w, Raw(uint32(i), 1), "index %d", i)
		}
		assert.Equal(t, uint32(0x40000000), Raw(3, 5))
	})

	t.Run("linear in index bits", func(t *testing.T) {
		for d := uint32(0); d < NumDimensions; d += 11 {
			for i := uint32(1); i < MaxSamples; i += 101 {
				j := (i * 7919) & (MaxSamples - 1)
				if i&j != 0 {
					continue
				}
				require.Equal(t, Raw(i, d)^Raw(j, d), Raw(i|j, d))
			}
		}
	})

	t.Run("high index bits ignored", func(t *testing.T) {
		assert.Equal(t, Raw(77, 9), Raw(77|1<<16, 9))
	})
}

func TestRawInjective(t *testing.T) {
	// Each generator matrix is invertible, so the first 2^16 points of a
	// dimension are distinct in their top 16 bits.
	for _, d := range []uint32{0, 1, 2, 63, 128, NumDimensions - 1} {
		seen := roaring.New()
		for i := uint32(0); i < MaxSamples; i++ {
			seen.Add(Raw(i, d) >> 16)
		}
		assert.Equal(t, uint64(MaxSamples), seen.GetCardinality(), "dimension %d", d)
	}
}

func TestRawRev(t *testing.T) {
	for i := uint32(0); i < MaxSamples; i += 17 {
		require.Equal(t, bits.Reverse32(Raw(i, 42)), RawRev(i, 42))
		require.Less(t, RawRev(i, 42), uint32(MaxSamples))
	}
}

func TestRaw4D(t *testing.T) {
	for set := uint32(0); set < NumDimensionSets; set++ {
		for i := uint32(0); i < MaxSamples; i += 251 {
			got := Raw4D(i, set)
			for lane := uint32(0); lane < 4; lane++ {
				require.Equal(t, Raw(i, set*4+lane), got[lane])
			}
		}
	}
}
