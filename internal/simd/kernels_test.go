package simd

import (
	"math/bits"
	"testing"

	"github.com/hupe1980/sobol/internal/direction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveFold is the textbook recurrence: walk every bit position.
func naiveFold(index uint32, set *direction.Set, lane int) uint32 {
	var acc uint32
	for p := 0; p < direction.Depth; p++ {
		if index&(1<<p) != 0 {
			acc ^= uint32(set[p][lane])
		}
	}
	return acc
}

func TestXorFold4MatchesNaive(t *testing.T) {
	for _, s := range []uint32{0, 1, 17, direction.NumSets - 1} {
		set := direction.Lookup(s)
		for index := uint32(0); index < 1<<direction.Depth; index += 7 {
			got := XorFold4(index, set)
			for lane := 0; lane < direction.Lanes; lane++ {
				require.Equal(t, naiveFold(index, set, lane), got[lane], "set %d index %d lane %d", s, index, lane)
				require.Equal(t, got[lane], XorFold(index, set, uint32(lane)))
			}
		}
	}
}

func TestXorFold4Zero(t *testing.T) {
	assert.Equal(t, [4]uint32{}, XorFold4(0, direction.Lookup(3)))
}

func TestXorFold4IgnoresHighBits(t *testing.T) {
	set := direction.Lookup(5)
	assert.Equal(t, XorFold4(0x1234, set), XorFold4(0xabcd1234, set))
	assert.Equal(t, [4]uint32{}, XorFold4(1<<16, set))
}

func TestXorFold4VanDerCorput(t *testing.T) {
	set := direction.Lookup(0)
	for index := uint32(0); index < 1<<direction.Depth; index++ {
		// Dimension 0 is the bit-reversed index, which in reversed form is the index itself.
		require.Equal(t, index, XorFold4(index, set)[0])
	}
	assert.Equal(t, bits.Reverse32(0x80000000), XorFold4(1, set)[0])
}

func TestXorFold4GenericMatchesActive(t *testing.T) {
	for s := uint32(0); s < direction.NumSets; s += 9 {
		set := direction.Lookup(s)
		for index := uint32(0); index < 1<<direction.Depth; index++ {
			require.Equal(t, xorFold4Generic(index, set), XorFold4(index, set), "set %d index %d", s, index)
		}
	}
}

func TestParseISA(t *testing.T) {
	tests := []struct {
		in   string
		want ISA
		ok   bool
	}{
		{"generic", Generic, true},
		{" SSE2 ", SSE2, true},
		{"avx512", Generic, false},
		{"", Generic, false},
	}
	for _, tc := range tests {
		got, ok := ParseISA(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
	assert.Equal(t, "sse2", SSE2.String())
	assert.Equal(t, "unknown", ISA(42).String())
}

func TestSelectISA(t *testing.T) {
	defer initCapabilities()

	assert.Equal(t, Generic, selectISA("generic"))
	assert.True(t, hasOverride)

	assert.Equal(t, selectBestISA(), selectISA("bogus"))
	assert.False(t, hasOverride)

	if isISAAvailable(SSE2) {
		assert.Equal(t, SSE2, selectISA(""))
	} else {
		assert.Equal(t, Generic, selectISA("sse2"))
	}
}
