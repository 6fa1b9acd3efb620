package quality

import (
	"fmt"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
)

// CheckNet verifies that the 2^m points (xs[i], ys[i]) form a (0,m,2)-net
// in base 2: for every split of m bits into x and y resolution, each of
// the 2^m elementary intervals holds exactly one point.
//
// The first two dimensions of a Sobol sequence (scrambled or not) have
// this property for every aligned block of 2^m indices.
func CheckNet(xs, ys []float32, m int) error {
	if m < 0 || m > 16 {
		return fmt.Errorf("%w: m = %d", ErrInvalidSamples, m)
	}
	n := 1 << m
	if len(xs) != n || len(ys) != n {
		return fmt.Errorf("%w: need %d points, have %d x and %d y", ErrDimensionMismatch, n, len(xs), len(ys))
	}

	cells := roaring.New()
	for xBits := 0; xBits <= m; xBits++ {
		yBits := m - xBits
		cells.Clear()
		for i := range xs {
			cells.Add(cellOf(xs[i], xBits)<<yBits | cellOf(ys[i], yBits))
		}
		if got := cells.GetCardinality(); got != uint64(n) {
			return &NetError{XBits: xBits, YBits: yBits, Occupied: got}
		}
	}

	return nil
}

// cellOf returns floor(v * 2^bits), clamped to the last cell.
func cellOf(v float32, nbits int) uint32 {
	c := uint32(float64(v) * float64(uint32(1)<<nbits))
	if last := uint32(1)<<nbits - 1; c > last {
		c = last
	}
	return c
}

// log2Exact returns log2(n) if n is a power of two.
func log2Exact(n int) (int, bool) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, false
	}
	return bits.TrailingZeros(uint(n)), true
}
