package sobol

import (
	"math/bits"

	"github.com/hupe1980/sobol/internal/direction"
	"github.com/hupe1980/sobol/internal/simd"
)

// Raw returns the unscrambled Sobol integer of dimension at index.
//
// The result is a 32-bit fixed-point fraction: for each set bit p of
// index, direction number p of the dimension is XORed in. Raw(0, d) is 0.
// Only the low 16 bits of index are used. dimension must be
// < NumDimensions.
func Raw(index, dimension uint32) uint32 {
	return bits.Reverse32(RawRev(index, dimension))
}

// RawRev is Raw with the bits of the result reversed. This is the form
// OwenScrambleRev operates on.
func RawRev(index, dimension uint32) uint32 {
	return rawRev(index, checkDimension(dimension))
}

// Raw4D returns the unscrambled Sobol integers of the four dimensions in
// dimensionSet. Lane l equals Raw(index, 4*dimensionSet+l).
func Raw4D(index, dimensionSet uint32) [4]uint32 {
	raw := uint32x4(simd.XorFold4(index, direction.Lookup(checkDimensionSet(dimensionSet))))
	return raw.reverse()
}

func rawRev(index, dimension uint32) uint32 {
	return simd.XorFold(index, direction.Lookup(dimension>>2), dimension&(direction.Lanes-1))
}
