// Package simd provides the 4-lane Sobol kernel.
//
// # Supported Platforms
//
//   - x86-64: SSE2
//   - everything else: generic Go
//
// Runtime CPU feature detection selects the implementation once at init.
// Build with -tags noasm to force the generic Go fallback, or set
// SOBOL_SIMD=generic to select it at runtime.
//
// # Operations
//
//   - XorFold4: XOR of the direction number rows selected by the set bits
//     of a sample index, for 4 dimensions at once.
//
// Every implementation is bit-identical to the generic one.
package simd
