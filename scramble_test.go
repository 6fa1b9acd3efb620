package sobol

import (
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashGolden(t *testing.T) {
	assert.Equal(t, uint32(0x9e7d57dc), Hash(0))
	assert.Equal(t, uint32(0xfb1d0b68), OwenScrambleRev(0x12345678, 0x9abcdef0))
	assert.Equal(t, uint32(0x42b2f058), ScrambleKey(5, 7))
}

func TestHashAvalanche(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const trials = 4000

	for b := 0; b < 32; b++ {
		total := 0
		for range trials {
			x := rng.Uint32()
			total += bits.OnesCount32(Hash(x) ^ Hash(x^1<<b))
		}
		avg := float64(total) / trials
		assert.InDelta(t, 16.0, avg, 1.0, "input bit %d", b)
	}
}

func TestScrambleIsNested(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	const trials = 2000

	// Flipping bit k of the input always flips bit k of the output, never
	// touches the bits above it, and flips about half of the bits below it.
	for k := 1; k < 32; k++ {
		total := 0
		for range trials {
			x := rng.Uint32()
			d := rng.Uint32N(NumDimensions)
			seed := rng.Uint32()

			diff := Scramble(x, d, seed) ^ Scramble(x^1<<k, d, seed)
			require.Equal(t, uint32(1), diff>>k, "bit %d", k)
			total += bits.OnesCount32(diff & (1<<k - 1))
		}
		ratio := float64(total) / float64(trials*k)
		assert.InDelta(t, 0.5, ratio, 0.06, "bit %d", k)
	}
}

func TestScrambleKeySeparation(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	const trials = 4000

	seedBits, dimBits := 0, 0
	for range trials {
		x := rng.Uint32()
		d := rng.Uint32N(NumDimensions - 1)
		seed := rng.Uint32()
		seedBits += bits.OnesCount32(Scramble(x, d, seed) ^ Scramble(x, d, seed+1))
		dimBits += bits.OnesCount32(Scramble(x, d, seed) ^ Scramble(x, d+1, seed))
	}
	assert.InDelta(t, 16.0, float64(seedBits)/trials, 1.0)
	assert.InDelta(t, 16.0, float64(dimBits)/trials, 1.0)
}

func TestScrambleBijective(t *testing.T) {
	// The scramble only moves information toward less significant bits, so
	// it is injective on the 2^16 inputs that differ in the top 16 bits
	// iff it is injective on their top 16 bits.
	for _, key := range []struct{ dimension, seed uint32 }{{0, 0}, {9, 1}, {200, 0xcafef00d}} {
		seen := roaring.New()
		for hi := uint32(0); hi < 1<<16; hi++ {
			seen.Add(Scramble(hi<<16|0xbeef, key.dimension, key.seed) >> 16)
		}
		assert.Equal(t, uint64(1<<16), seen.GetCardinality(), "dimension %d seed %d", key.dimension, key.seed)
	}
}

func TestOwenScrambleRevInvertibleOnLowBits(t *testing.T) {
	key := Hash(12345)
	seen := roaring.New()
	for n := uint32(0); n < 1<<16; n++ {
		out := OwenScrambleRev(n, key)
		seen.Add(out & 0xffff)
	}
	assert.Equal(t, uint64(1<<16), seen.GetCardinality())
}

func TestScramble4DMatchesScramble(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for range 1000 {
		raw := [4]uint32{rng.Uint32(), rng.Uint32(), rng.Uint32(), rng.Uint32()}
		set := rng.Uint32N(NumDimensionSets)
		seed := rng.Uint32()

		got := Scramble4D(raw, set, seed)
		for lane := uint32(0); lane < 4; lane++ {
			require.Equal(t, Scramble(raw[lane], set*4+lane, seed), got[lane])
		}
	}
}

func TestScrambleBeyondTableDimensions(t *testing.T) {
	// Keys are defined for any dimension, so callers can extend past the table.
	assert.NotEqual(t, Scramble(0x80000000, 3, 0), Scramble(0x80000000, 3+NumDimensions, 0))
}

func TestShuffleIndex(t *testing.T) {
	assert.Equal(t, uint32(0xd1eb), ShuffleIndex(0, 0))
	assert.Equal(t, uint32(0x7c06), ShuffleIndex(5, 77))
	assert.Equal(t, ShuffleIndex(5, 77), ShuffleIndex(5|1<<20, 77))

	t.Run("permutation", func(t *testing.T) {
		for _, seed := range []uint32{0, 1, 0xffffffff} {
			seen := roaring.New()
			for i := uint32(0); i < MaxSamples; i++ {
				j := ShuffleIndex(i, seed)
				require.Less(t, j, uint32(MaxSamples))
				seen.Add(j)
			}
			assert.Equal(t, uint64(MaxSamples), seen.GetCardinality())
		}
	})

	t.Run("keeps aligned blocks", func(t *testing.T) {
		for _, size := range []uint32{2, 16, 256, 4096} {
			for _, start := range []uint32{0, size, 5 * size} {
				base := ShuffleIndex(start, 31) &^ (size - 1)
				for i := start; i < start+size; i++ {
					require.Equal(t, base, ShuffleIndex(i, 31)&^(size-1), "size %d start %d index %d", size, start, i)
				}
			}
		}
	})
}
