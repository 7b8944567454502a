package disjointset

import "errors"

// Sentinel errors for disjointset operations.
var (
	// ErrNegativeSize indicates New was called with a negative element count.
	ErrNegativeSize = errors.New("disjointset: size must be non-negative")

	// ErrIndexOutOfRange indicates an element index outside [0, N).
	ErrIndexOutOfRange = errors.New("disjointset: index out of range")
)

// DisjointSet partitions the elements 0..N-1 into disjoint components.
//
// parent[i] == i marks a root. size[r] is the number of elements in the tree
// rooted at r and is only maintained for roots. count is the number of roots.
type DisjointSet struct {
	parent []int
	size   []int
	count  int
}
