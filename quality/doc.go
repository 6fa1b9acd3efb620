// Package quality measures how evenly a sampler fills the unit square.
//
// It provides:
//   - L2Star: Warnock's closed form of the L2 star discrepancy
//   - CheckNet: a check that 2^m points form a (0,m,2)-net
//   - Evaluate: a concurrent report comparing the scrambled Sobol sequence
//     against uniform random points for a set of dimension pairs
//   - WritePBM: a plain PBM plot of a 2D point set
//
// Used by the sobol command and by the sampler tests.
package quality
