package quality

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// L2Star returns the L2 star discrepancy of points in [0,1)^d using
// Warnock's formula:
//
//	T^2 = 3^-d - 2^(1-d)/N Σ_i Π_k (1 - x_ik^2) + 1/N^2 Σ_i Σ_j Π_k (1 - max(x_ik, x_jk))
//
// The cost is O(N^2 d). Lower is more uniform; N uniform random points
// have an expected value of about sqrt((2^-d - 3^-d) / N).
func L2Star(points [][]float64) (float64, error) {
	n := len(points)
	if n == 0 {
		return 0, ErrEmpty
	}
	d := len(points[0])
	for i, p := range points {
		if len(p) != d {
			return 0, fmt.Errorf("%w: point %d has %d coordinates, want %d", ErrDimensionMismatch, i, len(p), d)
		}
	}

	var single float64
	for _, p := range points {
		prod := 1.0
		for _, x := range p {
			prod *= 1 - x*x
		}
		single += prod
	}

	// Σ_i Σ_j is symmetric: diagonal once, off-diagonal twice.
	var pairs float64
	for i, p := range points {
		prod := 1.0
		for _, x := range p {
			prod *= 1 - x
		}
		pairs += prod

		for _, q := range points[i+1:] {
			prod := 1.0
			for k, x := range p {
				prod *= 1 - math.Max(x, q[k])
			}
			pairs += 2 * prod
		}
	}

	nf := float64(n)
	df := float64(d)
	t2 := math.Pow(3, -df) - math.Pow(2, 1-df)/nf*single + pairs/(nf*nf)

	// Cancellation can leave a tiny negative value for near-perfect sets.
	return math.Sqrt(math.Max(t2, 0)), nil
}

// L2Star2D is L2Star for two coordinate slices of equal length.
//
// It runs in O(N log N): points are visited in x order, so max(x_i, x_j)
// is always the current x, and a Fenwick tree over y ranks supplies the
// count and the sum of (1 - y_j) on either side of the current y.
func L2Star2D(xs, ys []float32) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("%w: %d x coordinates, %d y coordinates", ErrDimensionMismatch, len(xs), len(ys))
	}
	n := len(xs)
	if n == 0 {
		return 0, ErrEmpty
	}

	byX := make([]int, n)
	byY := make([]int, n)
	for i := range byX {
		byX[i] = i
		byY[i] = i
	}
	slices.SortFunc(byX, func(a, b int) int { return cmp.Compare(xs[a], xs[b]) })
	slices.SortFunc(byY, func(a, b int) int { return cmp.Compare(ys[a], ys[b]) })

	rank := make([]int, n)
	for r, i := range byY {
		rank[i] = r + 1
	}

	tree := newFenwick(n)

	var single, pairs, seen float64
	for _, i := range byX {
		x, y := float64(xs[i]), float64(ys[i])
		single += (1 - x*x) * (1 - y*y)

		below, belowSum := tree.prefix(rank[i] - 1)
		off := float64(below)*(1-y) + (seen - belowSum)
		pairs += (1-x)*(1-y) + 2*(1-x)*off

		tree.add(rank[i], 1-y)
		seen += 1 - y
	}

	nf := float64(n)
	t2 := 1.0/9 - single/(2*nf) + pairs/(nf*nf)

	return math.Sqrt(math.Max(t2, 0)), nil
}

// fenwick is a binary indexed tree of counts and sums over ranks 1..n.
type fenwick struct {
	count []int
	sum   []float64
}

func newFenwick(n int) *fenwick {
	return &fenwick{
		count: make([]int, n+1),
		sum:   make([]float64, n+1),
	}
}

func (f *fenwick) add(r int, v float64) {
	for ; r < len(f.count); r += r & -r {
		f.count[r]++
		f.sum[r] += v
	}
}

// prefix returns the count and sum of ranks 1..r.
func (f *fenwick) prefix(r int) (int, float64) {
	var c int
	var s float64
	for ; r > 0; r -= r & -r {
		c += f.count[r]
		s += f.sum[r]
	}
	return c, s
}
