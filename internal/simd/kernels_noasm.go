//go:build !amd64 || noasm

package simd

const haveAsm = false

func bindKernels(ISA) {
	kernelXorFold4 = xorFold4Generic
}
