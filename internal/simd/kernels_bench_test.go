package simd

import (
	"testing"

	"github.com/hupe1980/sobol/internal/direction"
)

// Benchmarks in this package are meant to be run twice to compare:
// - default build: asm enabled (SIMD dispatch when available)
// - generic build: `-tags noasm` (forces pure-Go implementations)
//
// Examples:
//   go test ./internal/simd -run '^$' -bench . -benchmem
//   go test ./internal/simd -run '^$' -bench . -benchmem -tags noasm

var sink [4]uint32

func BenchmarkXorFold4(b *testing.B) {
	set := direction.Lookup(7)
	var i uint32
	for b.Loop() {
		sink = XorFold4(i, set)
		i++
	}
}

func BenchmarkXorFold4Generic(b *testing.B) {
	set := direction.Lookup(7)
	var i uint32
	for b.Loop() {
		sink = xorFold4Generic(i, set)
		i++
	}
}
