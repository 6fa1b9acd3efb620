package sobol

import (
	"math"
	"math/bits"
)

// uint32x4 is four uint32 lanes processed in lockstep. Arithmetic wraps.
type uint32x4 [4]uint32

func splat(v uint32) uint32x4 {
	return uint32x4{v, v, v, v}
}

func (a uint32x4) xor(b uint32x4) uint32x4 {
	return uint32x4{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

func (a uint32x4) add(b uint32x4) uint32x4 {
	return uint32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a uint32x4) mul(b uint32x4) uint32x4 {
	return uint32x4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (a uint32x4) or(b uint32x4) uint32x4 {
	return uint32x4{a[0] | b[0], a[1] | b[1], a[2] | b[2], a[3] | b[3]}
}

func (a uint32x4) shr(n uint) uint32x4 {
	return uint32x4{a[0] >> n, a[1] >> n, a[2] >> n, a[3] >> n}
}

func (a uint32x4) reverse() uint32x4 {
	return uint32x4{bits.Reverse32(a[0]), bits.Reverse32(a[1]), bits.Reverse32(a[2]), bits.Reverse32(a[3])}
}

// hash is Hash on every lane.
func (a uint32x4) hash() uint32x4 {
	a = a.xor(splat(0xe6fe3beb))

	a = a.xor(a.shr(16))
	a = a.mul(splat(0x7feb352d))
	a = a.xor(a.shr(15))
	a = a.mul(splat(0x846ca68b))
	a = a.xor(a.shr(16))

	return a
}

// owenScrambleRev is OwenScrambleRev on every lane, with a key per lane.
func (a uint32x4) owenScrambleRev(key uint32x4) uint32x4 {
	a = a.xor(a.mul(splat(0x3d20adea)))
	a = a.add(key)
	a = a.mul(key.shr(16).or(splat(1)))
	a = a.xor(a.mul(splat(0x05526c56)))
	a = a.xor(a.mul(splat(0x53a22864)))

	return a
}

// unitFloats is ToUnitFloat on every lane.
func (a uint32x4) unitFloats() [4]float32 {
	var out [4]float32
	for i, n := range a {
		out[i] = math.Float32frombits(n>>9|0x3f800000) - 1
	}
	return out
}
