package quality

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a point set has no points.
	ErrEmpty = errors.New("empty point set")
	// ErrDimensionMismatch is returned when points have different dimensionality.
	ErrDimensionMismatch = errors.New("point dimension mismatch")
	// ErrInvalidSamples is returned for a sample count that is not a power of two in range.
	ErrInvalidSamples = errors.New("sample count must be a power of two in [1, 65536]")
	// ErrInvalidPair is returned for a dimension pair outside the table.
	ErrInvalidPair = errors.New("invalid dimension pair")
	// ErrNotNet is matched by every *NetError through errors.Is.
	ErrNotNet = errors.New("point set is not a (0,m,2)-net")
)

// NetError reports the first elementary interval split that does not hold
// exactly one point per cell.
type NetError struct {
	// XBits and YBits are the number of bits of each axis in the split;
	// cells are 2^-XBits wide and 2^-YBits high.
	XBits, YBits int
	// Occupied is the number of distinct cells hit, out of 2^(XBits+YBits).
	Occupied uint64
}

func (e *NetError) Error() string {
	return fmt.Sprintf("elementary intervals %dx%d: %d of %d cells occupied",
		e.XBits, e.YBits, e.Occupied, uint64(1)<<(e.XBits+e.YBits))
}

func (e *NetError) Unwrap() error { return ErrNotNet }
