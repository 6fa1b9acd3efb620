package direction

//go:generate go run ./cmd/gentable -in data/directions-256.txt -out table.go -dims 256

const (
	// Depth is the number of direction numbers stored per dimension.
	Depth = 16
	// Lanes is the number of dimensions per set.
	Lanes = 4
	// NumDimensions is the number of dimensions in the compiled table.
	NumDimensions = 256
	// NumSets is the number of 4-dimension sets in the compiled table.
	NumSets = NumDimensions / Lanes
)

// Set holds the bit-reversed direction numbers of 4 consecutive dimensions.
// Set[p][lane] is direction number p of dimension set*4+lane.
type Set [Depth][Lanes]uint16

// Lookup returns the direction numbers of the given set.
//
// The returned pointer refers to the shared compiled table and must be
// treated as read-only. set must be < NumSets.
func Lookup(set uint32) *Set {
	return &table[set]
}
