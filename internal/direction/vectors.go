package direction

import (
	"fmt"
	"math/bits"
)

// VanDerCorput returns the direction numbers of dimension 0, which is the
// van der Corput sequence in base 2.
func VanDerCorput() [Depth]uint32 {
	var v [Depth]uint32
	for i := range v {
		v[i] = 1 << (31 - i)
	}
	return v
}

// Vectors expands an entry into its first Depth direction numbers using
// the Joe-Kuo recurrence
//
//	v_i = v_{i-s} ^ (v_{i-s} >> s) ^ a_1 v_{i-1} ^ ... ^ a_{s-1} v_{i-s+1}
//
// The numbers are returned in natural (not reversed) bit order.
func Vectors(e Entry) ([Depth]uint32, error) {
	var v [Depth]uint32

	s := int(e.Degree)
	if s == 0 || len(e.M) != s {
		return v, fmt.Errorf("%w: dimension %d: degree %d with %d initial numbers", ErrInvalidEntry, e.Dimension, s, len(e.M))
	}
	if e.Poly>>(s-1) != 0 {
		return v, fmt.Errorf("%w: dimension %d: polynomial %d exceeds degree %d", ErrInvalidEntry, e.Dimension, e.Poly, s)
	}

	for i := 0; i < s && i < Depth; i++ {
		m := e.M[i]
		if m&1 == 0 || m >= 1<<(i+1) {
			return v, fmt.Errorf("%w: dimension %d: m_%d = %d must be odd and < 2^%d", ErrInvalidEntry, e.Dimension, i+1, m, i+1)
		}
		v[i] = m << (31 - i)
	}

	for i := s; i < Depth; i++ {
		v[i] = v[i-s] ^ (v[i-s] >> s)
		for k := 1; k < s; k++ {
			if (e.Poly>>(s-1-k))&1 == 1 {
				v[i] ^= v[i-k]
			}
		}
	}

	return v, nil
}

// Build assembles the table for the first dims dimensions. Dimension 0 is
// the van der Corput sequence; dimension d > 0 comes from entries[d-1].
// dims must be a positive multiple of Lanes.
func Build(entries []Entry, dims int) ([]Set, error) {
	if dims <= 0 || dims%Lanes != 0 {
		return nil, fmt.Errorf("%w: dimension count %d is not a positive multiple of %d", ErrInvalidEntry, dims, Lanes)
	}
	if len(entries) < dims-1 {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughEntries, dims-1, len(entries))
	}

	sets := make([]Set, dims/Lanes)
	for d := 0; d < dims; d++ {
		v := VanDerCorput()
		if d > 0 {
			var err error
			if v, err = Vectors(entries[d-1]); err != nil {
				return nil, err
			}
		}

		for p, n := range v {
			rev := bits.Reverse32(n)
			if rev > 0xffff {
				return nil, fmt.Errorf("%w: dimension %d: direction number %d does not fit 16 bits", ErrInvalidEntry, d, p)
			}
			sets[d/Lanes][p][d%Lanes] = uint16(rev)
		}
	}

	return sets, nil
}
