package disjointset

import "fmt"

// New returns a DisjointSet of n singleton components.
// Returns ErrNegativeSize if n < 0. n == 0 yields an empty, usable structure.
// Complexity: O(n) time and memory.
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSize, n)
	}
	ds := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds, nil
}

// Len returns the number of elements N.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Count returns the number of distinct components.
// It never increases over the lifetime of ds.
func (ds *DisjointSet) Count() int {
	return ds.count
}

// validate reports ErrIndexOutOfRange for x outside [0, N).
func (ds *DisjointSet) validate(x int) error {
	if x < 0 || x >= len(ds.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, x, len(ds.parent))
	}

	return nil
}

// Find returns the root of x's component.
//
// Two passes: the first walks up to the root, the second repoints every node
// on that path directly at the root. Both passes are iterative, so deep trees
// cannot overflow the stack, and only ever point nodes at an ancestor, so the
// forest never gains a cycle.
// Complexity: O(α(N)) amortized.
func (ds *DisjointSet) Find(x int) (int, error) {
	if err := ds.validate(x); err != nil {
		return 0, err
	}

	return ds.find(x), nil
}

// find is Find without bounds checking.
func (ds *DisjointSet) find(x int) int {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[x] != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}

	return root
}

// Union merges the components of x and y and reports whether a merge happened.
//
// If x and y already share a root, Union is a no-op and returns false.
// Otherwise the root of the smaller tree is attached under the root of the
// larger one, sizes are accumulated and Count drops by one. On equal sizes
// y's root goes under x's root; this tie-break is arbitrary and callers must
// not rely on which element ends up as the root.
// Both indices are validated before anything is mutated.
// Complexity: O(α(N)) amortized.
func (ds *DisjointSet) Union(x, y int) (bool, error) {
	if err := ds.validate(x); err != nil {
		return false, err
	}
	if err := ds.validate(y); err != nil {
		return false, err
	}

	rx, ry := ds.find(x), ds.find(y)
	if rx == ry {
		return false, nil
	}
	if ds.size[rx] < ds.size[ry] {
		rx, ry = ry, rx
	}
	ds.parent[ry] = rx
	ds.size[rx] += ds.size[ry]
	ds.count--

	return true, nil
}

// Connected reports whether x and y belong to the same component.
// Complexity: O(α(N)) amortized.
func (ds *DisjointSet) Connected(x, y int) (bool, error) {
	if err := ds.validate(x); err != nil {
		return false, err
	}
	if err := ds.validate(y); err != nil {
		return false, err
	}

	return ds.find(x) == ds.find(y), nil
}

// SizeOf returns the number of elements in x's component.
func (ds *DisjointSet) SizeOf(x int) (int, error) {
	if err := ds.validate(x); err != nil {
		return 0, err
	}

	return ds.size[ds.find(x)], nil
}
