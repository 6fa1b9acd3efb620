//go:build amd64 && !noasm

package simd

import "github.com/hupe1980/sobol/internal/direction"

const haveAsm = true

func bindKernels(isa ISA) {
	kernelXorFold4 = xorFold4Generic
	if isa == SSE2 {
		kernelXorFold4 = xorFold4SSE2
	}
}

func xorFold4SSE2(index uint32, set *direction.Set) [4]uint32 {
	var out [4]uint32
	xorFold4SSE2Asm(index, set, &out)
	return out
}

// xorFold4SSE2Asm is implemented in xorfold_amd64.s.
//
//go:noescape
func xorFold4SSE2Asm(index uint32, set *direction.Set, out *[4]uint32)
