package quality

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/hupe1980/sobol"
	"golang.org/x/sync/errgroup"
)

// Pair is a pair of dimensions projected onto the unit square.
type Pair struct {
	X, Y uint32
}

// ConsecutivePairs returns count pairs (first, first+1), (first+2, first+3), ...
func ConsecutivePairs(first uint32, count int) []Pair {
	pairs := make([]Pair, 0, count)
	for i := range count {
		x := first + 2*uint32(i)
		pairs = append(pairs, Pair{X: x, Y: x + 1})
	}
	return pairs
}

// PairReport is the result of evaluating one dimension pair.
type PairReport struct {
	Pair    Pair    `json:"pair"`
	Samples int     `json:"samples"`
	Sobol   float64 `json:"sobol_l2star"`
	Random  float64 `json:"random_l2star"`
	// Net reports whether the points form a (0,m,2)-net. This is
	// guaranteed for dimensions 0 and 1 only.
	Net bool `json:"net"`
}

// Ratio returns Random / Sobol; larger means the sequence beats random
// sampling by a wider margin.
func (r PairReport) Ratio() float64 {
	if r.Sobol == 0 {
		return 0
	}
	return r.Random / r.Sobol
}

// Evaluate computes the L2 star discrepancy of the first N points of each
// configured dimension pair and of N uniform random points, in parallel.
// Reports are returned in the order of the configured pairs.
func Evaluate(ctx context.Context, opts ...Option) ([]PairReport, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, ok := log2Exact(o.samples)
	if !ok || o.samples > sobol.MaxSamples {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSamples, o.samples)
	}
	for _, p := range o.pairs {
		if p.X >= sobol.NumDimensions || p.Y >= sobol.NumDimensions || p.X == p.Y {
			return nil, fmt.Errorf("%w: (%d, %d)", ErrInvalidPair, p.X, p.Y)
		}
	}

	reports := make([]PairReport, len(o.pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, p := range o.pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := evaluatePair(p, o.samples, m, o.seed, o.shuffle, uint64(i))
			o.logger.WithPair(p).LogPair(ctx, r, err)
			if err != nil {
				return fmt.Errorf("pair (%d, %d): %w", p.X, p.Y, err)
			}
			reports[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	o.logger.LogReport(ctx, reports)
	return reports, nil
}

func evaluatePair(p Pair, n, m int, seed uint32, shuffle bool, stream uint64) (PairReport, error) {
	r := PairReport{Pair: p, Samples: n}

	sample := sobol.Sample
	if shuffle {
		sample = sobol.ShuffledSample
	}

	xs := make([]float32, n)
	ys := make([]float32, n)
	for i := range n {
		xs[i] = sample(uint32(i), p.X, seed)
		ys[i] = sample(uint32(i), p.Y, seed)
	}

	var err error
	if r.Sobol, err = L2Star2D(xs, ys); err != nil {
		return r, err
	}
	r.Net = CheckNet(xs, ys, m) == nil

	rng := rand.New(rand.NewPCG(uint64(seed), stream))
	for i := range n {
		xs[i] = rng.Float32()
		ys[i] = rng.Float32()
	}
	if r.Random, err = L2Star2D(xs, ys); err != nil {
		return r, err
	}

	return r, nil
}
