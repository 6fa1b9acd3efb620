package sobol

import "math/bits"

const (
	// seedMul spreads structured seeds (0, 1, 2, ...) before they are
	// combined with the dimension.
	seedMul = 0x9c8f2d3b
	// shuffleSalt separates the index shuffle key from scramble keys.
	shuffleSalt = 0x79c68e4a
)

// laneSalt gives the four dimensions of a set distinct keys.
var laneSalt = uint32x4{0x912f69ba, 0x174f18ab, 0x691e72ca, 0xb40cc1b8}

// Hash is a fast 32-bit avalanche hash (xorshift-multiply, from
// hash-prospector). It is a bijection, and Hash(0) != 0.
func Hash(n uint32) uint32 {
	n ^= 0xe6fe3beb

	n ^= n >> 16
	n *= 0x7feb352d
	n ^= n >> 15
	n *= 0x846ca68b
	n ^= n >> 16

	return n
}

// OwenScrambleRev scrambles a bit-reversed integer with a hash that
// behaves like an Owen scramble.
//
// Every step only propagates information from lower to higher bits and is
// invertible, so bit k of the result is bit k of nRev XOR a function of
// the bits below it. Read in reversed order this is exactly a nested
// (Owen) scramble: each digit is flipped depending on the digits before
// it. key selects the scramble and must already be well mixed (pass it
// through Hash); sequential keys give correlated scrambles.
func OwenScrambleRev(nRev, key uint32) uint32 {
	nRev ^= nRev * 0x3d20adea
	nRev += key
	nRev *= (key >> 16) | 1
	nRev ^= nRev * 0x05526c56
	nRev ^= nRev * 0x53a22864

	return nRev
}

// ScrambleKey derives the Owen scramble key for dimension and seed.
//
// Any dimension is accepted, so callers can go beyond NumDimensions by
// scrambling with dimension offsets of their own.
func ScrambleKey(dimension, seed uint32) uint32 {
	return Hash(dimension>>2 ^ seed*seedMul ^ laneSalt[dimension&3])
}

// Scramble applies the Owen scramble of (dimension, seed) to a raw Sobol
// integer as returned by Raw. For a fixed dimension and seed it is a
// bijection on uint32, and the top k bits of the result depend only on
// the top k bits of raw.
func Scramble(raw, dimension, seed uint32) uint32 {
	return bits.Reverse32(OwenScrambleRev(bits.Reverse32(raw), ScrambleKey(dimension, seed)))
}

// Scramble4D is Scramble applied to the four dimensions of dimensionSet.
func Scramble4D(raw [4]uint32, dimensionSet, seed uint32) [4]uint32 {
	rev := uint32x4(raw).reverse()
	return rev.owenScrambleRev(scrambleKey4(dimensionSet, seed)).reverse()
}

// ShuffleIndex permutes the sample indices [0, MaxSamples) by seed.
//
// The permutation is a nested uniform scramble of the index bits, which
// maps every aligned block of 2^k indices onto an aligned block of 2^k
// indices. Bits of index at or above 16 are ignored.
func ShuffleIndex(index, seed uint32) uint32 {
	rev := OwenScrambleRev(bits.Reverse32(index&(MaxSamples-1)), Hash(seed^shuffleSalt))
	return bits.Reverse32(rev) & (MaxSamples - 1)
}

func scrambleKey4(dimensionSet, seed uint32) uint32x4 {
	return splat(dimensionSet ^ seed*seedMul).xor(laneSalt).hash()
}
