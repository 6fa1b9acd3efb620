package sobol

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *BoundsError through errors.Is.
var ErrOutOfRange = errors.New("argument out of range")

// BoundsError is the panic value for a sampling argument outside its
// documented range. It names the violated bound and the offending value.
type BoundsError struct {
	Name  string
	Value uint32
	Limit uint32
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("sobol: %s %d out of range [0, %d)", e.Name, e.Value, e.Limit)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfRange }
