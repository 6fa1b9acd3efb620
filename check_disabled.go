//go:build sobol_unchecked

package sobol

// boundsChecks enables argument validation on the sampling paths.
const boundsChecks = false
