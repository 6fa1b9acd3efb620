package sobol

import (
	"math/bits"

	"github.com/hupe1980/sobol/internal/direction"
	"github.com/hupe1980/sobol/internal/simd"
)

const (
	// MaxSamples is the maximum number of samples per sequence.
	MaxSamples = 1 << direction.Depth
	// NumDimensions is the number of available dimensions.
	NumDimensions = direction.NumDimensions
	// NumDimensionSets is the number of available 4-dimension sets
	// (NumDimensions / 4).
	NumDimensionSets = direction.NumSets
)

// Sample computes one dimension of a single sample of the Owen-scrambled
// Sobol sequence.
//
// index selects the sample and must be < MaxSamples. dimension must be
// < NumDimensions. seed selects the scramble; every value is valid and
// different seeds give statistically independent scrambles.
//
// Returns a number in [0, 1).
//
// Out-of-range arguments panic with a *BoundsError, unless the package is
// built with the sobol_unchecked tag, in which case they wrap.
func Sample(index, dimension, seed uint32) float32 {
	index = checkIndex(index)
	dimension = checkDimension(dimension)

	rev := OwenScrambleRev(rawRev(index, dimension), ScrambleKey(dimension, seed))
	return ToUnitFloat(bits.Reverse32(rev))
}

// Sample4D computes four dimensions of a single sample at once.
//
// dimensionSet selects the dimensions 4*dimensionSet .. 4*dimensionSet+3
// and must be < NumDimensionSets. Lane l of the result is bit-identical to
// Sample(index, 4*dimensionSet+l, seed).
func Sample4D(index, dimensionSet, seed uint32) [4]float32 {
	index = checkIndex(index)
	dimensionSet = checkDimensionSet(dimensionSet)

	raw := uint32x4(simd.XorFold4(index, direction.Lookup(dimensionSet)))
	return raw.owenScrambleRev(scrambleKey4(dimensionSet, seed)).reverse().unitFloats()
}

// ShuffledSample is Sample with the sample index shuffled by seed first.
//
// The shuffle is a nested uniform permutation of the index bits, so
// every aligned block of 2^k indices still maps to an aligned block of
// 2^k Sobol points and keeps its stratification. Unlike Sample, two
// different seeds give sequences that are only randomly associated,
// which is what decorrelating error between pixels needs.
func ShuffledSample(index, dimension, seed uint32) float32 {
	return Sample(ShuffleIndex(checkIndex(index), seed), dimension, seed)
}

// ShuffledSample4D is Sample4D with the sample index shuffled by seed first.
func ShuffledSample4D(index, dimensionSet, seed uint32) [4]float32 {
	return Sample4D(ShuffleIndex(checkIndex(index), seed), dimensionSet, seed)
}

// Point fills dst with dimensions 0 .. len(dst)-1 of sample index, using
// the 4-wide path. len(dst) must be <= NumDimensions.
func Point(dst []float32, index, seed uint32) {
	dst = checkPointLen(dst)
	for set := uint32(0); len(dst) > 0; set++ {
		v := Sample4D(index, set, seed)
		n := copy(dst, v[:])
		dst = dst[n:]
	}
}

// Backend reports the kernel implementation selected for this CPU,
// e.g. "sse2" or "generic".
func Backend() string {
	return simd.ActiveISA().String()
}
