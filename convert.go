package sobol

import "math"

// ToUnitFloat converts a 32-bit fixed-point fraction to a float32 in
// [0, 1).
//
// The top 23 bits become the mantissa of a float in [1, 2), and 1 is
// subtracted. Both steps are exact, so the result is n / 2^32 rounded
// toward zero to 23 bits and never reaches 1.
func ToUnitFloat(n uint32) float32 {
	return math.Float32frombits(n>>9|0x3f800000) - 1
}
