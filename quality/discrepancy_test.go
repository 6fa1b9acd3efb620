package quality

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/hupe1980/sobol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestL2StarSinglePoint(t *testing.T) {
	// One point at the origin in 1D: T^2 = 1/3 - 1 + 1 = 1/3.
	got, err := L2Star([][]float64{{0}})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(1.0/3), got, 1e-12)

	// One point x in 1D: T^2 = 1/3 - (1 - x^2) + (1 - x).
	got, err = L2Star([][]float64{{0.5}})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(1.0/3-0.75+0.5), got, 1e-12)
}

func TestL2StarCenteredGrid(t *testing.T) {
	// The centered 1D grid has T^2 = 1/(12 N^2).
	const n = 64
	points := make([][]float64, n)
	for i := range points {
		points[i] = []float64{(float64(i) + 0.5) / n}
	}
	got, err := L2Star(points)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(1.0/(12*n*n)), got, 1e-9)
}

func TestL2StarErrors(t *testing.T) {
	_, err := L2Star(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = L2Star([][]float64{{0.1, 0.2}, {0.3}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = L2Star2D([]float32{0.1}, nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = L2Star2D(nil, nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestL2Star2DMatchesL2Star(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, n := range []int{1, 2, 17, 300} {
		xs := make([]float32, n)
		ys := make([]float32, n)
		points := make([][]float64, n)
		for i := range xs {
			// Coarse values force ties in both coordinates.
			xs[i] = float32(rng.IntN(16)) / 16
			ys[i] = rng.Float32()
			if i%3 == 0 {
				ys[i] = float32(rng.IntN(8)) / 8
			}
			points[i] = []float64{float64(xs[i]), float64(ys[i])}
		}

		want, err := L2Star(points)
		require.NoError(t, err)
		got, err := L2Star2D(xs, ys)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12, "n=%d", n)
	}
}

func TestSobolBeatsRandom(t *testing.T) {
	const n = 1024
	rng := rand.New(rand.NewPCG(2024, 10))

	pairs := []Pair{{0, 1}, {2, 3}, {10, 11}, {100, 101}, {200, 254}}
	for _, p := range pairs {
		xs := make([]float32, n)
		ys := make([]float32, n)
		for i := range xs {
			xs[i] = sobol.Sample(uint32(i), p.X, 7)
			ys[i] = sobol.Sample(uint32(i), p.Y, 7)
		}
		sobolD, err := L2Star2D(xs, ys)
		require.NoError(t, err)

		// Average a few random sets so the baseline is stable.
		const trials = 4
		var randomD float64
		for range trials {
			for i := range xs {
				xs[i] = rng.Float32()
				ys[i] = rng.Float32()
			}
			d, err := L2Star2D(xs, ys)
			require.NoError(t, err)
			randomD += d / trials
		}

		assert.Less(t, sobolD, 0.003, "pair %v", p)
		assert.Less(t, 3*sobolD, randomD, "pair %v: sobol %g random %g", p, sobolD, randomD)
	}
}

func TestEveryPairBeatsRandom(t *testing.T) {
	if testing.Short() {
		t.Skip("evaluates every pair of dimensions")
	}

	const n = 1024
	// Expected L2 star discrepancy of n uniform random points in 2D.
	random := math.Sqrt((1.0/4 - 1.0/9) / n)

	for _, seed := range []uint32{1, 7} {
		cols := make([][]float32, sobol.NumDimensions)
		for d := range cols {
			cols[d] = make([]float32, n)
			for i := range cols[d] {
				cols[d][i] = sobol.Sample(uint32(i), uint32(d), seed)
			}
		}

		var sum, worst float64
		var pairs, above int
		for x := 1; x < len(cols); x++ {
			for y := range x {
				d, err := L2Star2D(cols[x], cols[y])
				require.NoError(t, err)
				assert.Less(t, d, 2*random, "seed %d pair (%d,%d)", seed, x, y)

				sum += d
				worst = max(worst, d)
				pairs++
				if d > random {
					above++
				}
			}
		}

		mean := sum / float64(pairs)
		t.Logf("seed %d: mean %.5f worst %.5f above random %d of %d", seed, mean, worst, above, pairs)
		assert.Less(t, mean, random/4, "seed %d", seed)
		assert.Less(t, above, pairs/100, "seed %d", seed)
	}
}
