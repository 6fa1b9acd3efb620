// Package direction holds the Sobol direction numbers used by the sampler.
//
// Layout:
//   - Dimensions are grouped into sets of 4 consecutive dimensions so the
//     4-wide kernel can load one row per index bit.
//   - Each set stores Depth rows; row p holds the p-th direction number of
//     every dimension in the set.
//   - Direction numbers are stored bit-reversed. Only the first 16 numbers
//     are kept (sequences are capped at 2^16 samples), and a reversed
//     number p never has bits above p set, so uint16 is enough.
//
// The compiled table (table.go) is generated from data/directions-256.txt
// by cmd/gentable. Parse, Vectors and Build implement that generation and
// are also used by tests to check the compiled table against its source.
package direction
