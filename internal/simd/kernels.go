package simd

import (
	"math/bits"

	"github.com/hupe1980/sobol/internal/direction"
)

// indexMask keeps the index bits that have direction numbers.
const indexMask = 1<<direction.Depth - 1

// Kernel function pointer - set once at init.
// The generic implementation is the default; platform-specific
// bindKernels overrides it with a SIMD version when available.
var kernelXorFold4 = xorFold4Generic

// XorFold4 XORs together the rows of set selected by the set bits of
// index, for all 4 lanes at once. Bits of index at or above
// direction.Depth are ignored.
//
// The result of lane l equals the raw bit-reversed Sobol value of
// dimension 4*set+l at sample index.
func XorFold4(index uint32, set *direction.Set) [4]uint32 {
	return kernelXorFold4(index, set)
}

// XorFold computes a single lane of XorFold4.
func XorFold(index uint32, set *direction.Set, lane uint32) uint32 {
	var acc uint32
	idx := index & indexMask
	for idx != 0 {
		p := bits.TrailingZeros32(idx)
		acc ^= uint32(set[p][lane&(direction.Lanes-1)])
		idx &= idx - 1
	}
	return acc
}

// ============================================================================
// Generic implementations (pure Go fallbacks)
// ============================================================================

func xorFold4Generic(index uint32, set *direction.Set) [4]uint32 {
	var a0, a1, a2, a3 uint32
	idx := index & indexMask
	for idx != 0 {
		row := &set[bits.TrailingZeros32(idx)]
		a0 ^= uint32(row[0])
		a1 ^= uint32(row[1])
		a2 ^= uint32(row[2])
		a3 ^= uint32(row[3])
		idx &= idx - 1
	}
	return [4]uint32{a0, a1, a2, a3}
}
