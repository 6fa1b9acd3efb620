// Package sobol provides a seedable Owen-scrambled Sobol sequence.
//
// It is based on Brent Burley's "Practical Hash-based Owen Scrambling",
// with an improved Laine-Karras style hash, and is meant for rendering and
// other Monte-Carlo work. The trade-offs are fixed:
//
//   - At most MaxSamples (2^16) samples per sequence.
//   - At most NumDimensions (256) dimensions. Seeding works around this.
//   - float32 output only.
//
// # Basic Usage
//
//	for i := uint32(0); i < 1024; i++ {
//	    x := sobol.Sample(i, 0, 0)
//	    y := sobol.Sample(i, 1, 0)
//	    z := sobol.Sample(i, 2, 0)
//	    fmt.Println(x, y, z)
//	}
//
// Each dimension already uses its own scramble, so a single sequence needs
// no seed.
//
// # Seeding
//
// The seed selects an independent scramble. ShuffledSample and
// ShuffledSample4D additionally shuffle the sample order by seed, so
// sequences with different seeds are only randomly associated. This is
// the usual way to decorrelate pixels:
//
//	v := sobol.ShuffledSample(i, dim, pixelHash)
//
// # Four Dimensions At Once
//
// Sample4D computes four consecutive dimensions in one call and is
// bit-identical to four Sample calls. On x86-64 the Sobol recurrence runs
// in SSE2 lanes; elsewhere it falls back to portable Go.
//
// # Building Blocks
//
// Raw, Scramble, ToUnitFloat and friends expose the steps of Sample for
// callers that build their own samplers:
//
//	Sample(i, d, s) == ToUnitFloat(Scramble(Raw(i, d), d, s))
//
// # Bounds
//
// Arguments outside their documented range panic with a *BoundsError.
// Build with -tags sobol_unchecked to drop the checks from hot loops;
// out-of-range arguments then wrap and produce meaningless but safe
// values.
//
// All functions are pure and allocation free, and may be called from any
// number of goroutines.
package sobol
