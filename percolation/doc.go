// Package percolation models site percolation on an n×n square lattice.
//
// What:
//
//   - Every site starts blocked. Open(row, col) opens it; opening is one-way.
//   - An open site is full when a chain of open orthogonal neighbours links it
//     to the top row.
//   - The model percolates once some bottom-row site is full.
//
// How:
//
//   - Two independent disjointset.DisjointSet instances of n·n+1 elements are
//     kept. In the first the extra element is a virtual top node tied to the
//     whole top row; in the second it is a virtual bottom node tied to the
//     whole bottom row.
//   - Fullness is judged only against the top structure, so an open bottom-row
//     site reachable from the bottom node alone is never reported full (no
//     backwash).
//   - Percolation is latched in Open: the freshly opened site is checked
//     against the top node in the first structure and the bottom node in the
//     second. The flag never resets.
//
// Coordinates:
//
//	Rows and columns are 1-based, (1,1) is the upper-left site. Flat indices
//	are 0-based, row-major: (row-1)·n + (col-1).
//
// Complexity:
//
//   - New:                 O(n²) time and memory.
//   - Open/IsFull:         O(α(n²)) amortized.
//   - IsOpen/Percolates/NumberOfOpenSites: O(1).
//   - Clusters/Render:     O(n²).
//
// Errors:
//
//   - ErrInvalidSize: New called with n ≤ 0.
//   - ErrOutOfRange:  row or col outside [1, n]; the model is left unmodified.
//
// A Model is not safe for concurrent use. Callers that share one between
// goroutines must serialize access themselves.
package percolation
