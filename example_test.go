package sobol_test

import (
	"fmt"

	"github.com/hupe1980/sobol"
)

// Example demonstrates drawing 2D points from a single scrambled sequence.
func Example() {
	for i := uint32(0); i < 4; i++ {
		x := sobol.Sample(i, 0, 0)
		y := sobol.Sample(i, 1, 0)
		fmt.Printf("%.4f %.4f\n", x, y)
	}
	// Output:
	// 0.7254 0.9216
	// 0.0938 0.2469
	// 0.8900 0.2616
	// 0.3310 0.6702
}

// ExampleSample4D demonstrates computing four dimensions in one call.
func ExampleSample4D() {
	v := sobol.Sample4D(9, 2, 5)
	fmt.Println(v[0] == sobol.Sample(9, 8, 5), v[3] == sobol.Sample(9, 11, 5))
	// Output: true true
}

// ExampleShuffledSample demonstrates an independent sequence per seed,
// e.g. one per pixel.
func ExampleShuffledSample() {
	const pixelSeed = 1234
	for i := uint32(0); i < 4; i++ {
		fmt.Printf("%.4f\n", sobol.ShuffledSample(i, 2, pixelSeed))
	}
	// Output:
	// 0.7628
	// 0.4273
	// 0.2414
	// 0.5587
}

// ExampleScramble demonstrates assembling a sample from its building blocks.
func ExampleScramble() {
	const index, dim, seed = 21, 6, 3
	raw := sobol.Raw(index, dim)
	v := sobol.ToUnitFloat(sobol.Scramble(raw, dim, seed))
	fmt.Println(v == sobol.Sample(index, dim, seed))
	// Output: true
}
