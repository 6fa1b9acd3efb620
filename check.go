package sobol

// Argument checks for the hot sampling paths.
//
// With bounds checks enabled (the default) an out-of-range argument is a
// programming error and panics with a *BoundsError. Building with
// -tags sobol_unchecked compiles the checks out; arguments are then
// masked into range, so the output is meaningless but always safe.

func checkIndex(index uint32) uint32 {
	if boundsChecks && index >= MaxSamples {
		panic(&BoundsError{Name: "index", Value: index, Limit: MaxSamples})
	}
	return index & (MaxSamples - 1)
}

func checkDimension(dimension uint32) uint32 {
	if boundsChecks && dimension >= NumDimensions {
		panic(&BoundsError{Name: "dimension", Value: dimension, Limit: NumDimensions})
	}
	return dimension & (NumDimensions - 1)
}

func checkDimensionSet(dimensionSet uint32) uint32 {
	if boundsChecks && dimensionSet >= NumDimensionSets {
		panic(&BoundsError{Name: "dimension set", Value: dimensionSet, Limit: NumDimensionSets})
	}
	return dimensionSet & (NumDimensionSets - 1)
}

func checkPointLen(dst []float32) []float32 {
	if len(dst) > NumDimensions {
		if boundsChecks {
			panic(&BoundsError{Name: "point length", Value: uint32(len(dst)), Limit: NumDimensions})
		}
		return dst[:NumDimensions]
	}
	return dst
}
