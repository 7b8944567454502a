// Package disjointset provides a fixed-size disjoint-set (union-find) structure
// over the integer elements 0..N-1.
//
// What:
//
//   - Union merges the components of two elements, attaching the smaller tree
//     under the larger one (weighted union).
//   - Find returns the root of an element's component and repoints every node
//     on the walked path directly at that root (full path compression).
//   - Connected reports whether two elements share a component.
//   - Count reports the live number of components; it starts at N and drops
//     by exactly one per merging Union.
//
// Why:
//
//   - Incremental connectivity: percolation, Kruskal's MST, image labelling,
//     equivalence closure of pairwise relations.
//
// Complexity:
//
//   - New:                 O(N) time and memory.
//   - Find/Union/Connected: O(α(N)) amortized, α = inverse Ackermann.
//   - Count/Len:           O(1).
//
// Errors:
//
//   - ErrNegativeSize:    New called with n < 0.
//   - ErrIndexOutOfRange: an element outside [0, N) was passed in. The
//     structure is left untouched.
//
// A DisjointSet is not safe for concurrent use; guard it with a mutex if it is
// shared between goroutines.
package disjointset
