package direction

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

// generatorRows returns the rows of the generator matrix of dimension d.
// Bit j of row i is digit i of direction number j, so row i decides
// digit i of every point.
func generatorRows(d int) [Depth]uint16 {
	set := Lookup(uint32(d / Lanes))
	lane := d % Lanes

	var rows [Depth]uint16
	for j := range Depth {
		for i := range Depth {
			if set[j][lane]>>i&1 == 1 {
				rows[i] |= 1 << j
			}
		}
	}
	return rows
}

// independent reports whether the first da rows of a and the first db
// rows of b, cut to m columns, are linearly independent over GF(2).
func independent(a, b *[Depth]uint16, da, db, m int) bool {
	var basis [Depth]uint16
	insert := func(v uint16) bool {
		for v != 0 {
			h := bits.Len16(v) - 1
			if basis[h] == 0 {
				basis[h] = v
				return true
			}
			v ^= basis[h]
		}
		return false
	}

	mask := uint16(1<<m - 1)
	for i := range da {
		if !insert(a[i] & mask) {
			return false
		}
	}
	for i := range db {
		if !insert(b[i] & mask) {
			return false
		}
	}
	return true
}

// tValue returns the quality parameter t of the first 2^m points of the
// two-dimensional projection: every elementary interval of volume
// 2^(t-m) holds exactly 2^t points.
func tValue(a, b *[Depth]uint16, m int) int {
	for t := 0; t < m; t++ {
		k := m - t
		ok := true
		for da := 0; da <= k && ok; da++ {
			ok = independent(a, b, da, k-da, m)
		}
		if ok {
			return t
		}
	}
	return m
}

func TestTValueKnownPairs(t *testing.T) {
	r0 := generatorRows(0)
	r1 := generatorRows(1)

	// Dimensions 0 and 1 form a (0,m,2)-net for every m.
	for m := 1; m <= Depth; m++ {
		assert.Equal(t, 0, tValue(&r0, &r1, m), "m=%d", m)
	}
	// A dimension paired with itself is a diagonal.
	assert.Equal(t, 9, tValue(&r1, &r1, 10))
}

func TestTwoDimensionalProjections(t *testing.T) {
	rows := make([][Depth]uint16, NumDimensions)
	for d := range rows {
		rows[d] = generatorRows(d)
	}

	// maxT bounds t for 2^m points of every pair of dimensions. No table
	// of this size can do better than t = 6 at m = 10: each dimension's
	// first four rows span 8 candidates for another dimension's first row,
	// and 256 dimensions leave only 512 candidates to share. Each further
	// column may cost one more digit.
	maxT := map[int]int{10: 6, 11: 7, 12: 8, 13: 9, 14: 10, 15: 11, 16: 12}

	for m, limit := range maxT {
		hist := make([]int, m+1)
		for a := 1; a < NumDimensions; a++ {
			for b := 0; b < a; b++ {
				tv := tValue(&rows[a], &rows[b], m)
				hist[tv]++
				assert.LessOrEqual(t, tv, limit, "m=%d dimensions %d and %d", m, a, b)
			}
		}
		t.Logf("m=%d t histogram %v", m, hist)
	}
}
