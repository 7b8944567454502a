package percolation

import "fmt"

// InBounds reports whether (row, col) lies inside the 1-based grid.
// Complexity: O(1).
func (m *Model) InBounds(row, col int) bool {
	return row >= 1 && row <= m.n && col >= 1 && col <= m.n
}

// Index maps 1-based (row, col) to its 0-based row-major flat index.
// Returns ErrOutOfRange if either coordinate is outside [1, n].
func (m *Model) Index(row, col int) (int, error) {
	if !m.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfRange, row, col, m.n, m.n)
	}

	return m.index(row, col), nil
}

// index is Index without bounds checking: (row-1)·n + (col-1).
func (m *Model) index(row, col int) int {
	return (row-1)*m.n + col - 1
}

// Coordinate converts a flat index back to 1-based (row, col).
// idx must lie in [0, n²).
// Complexity: O(1).
func (m *Model) Coordinate(idx int) (row, col int) {
	return idx/m.n + 1, idx%m.n + 1
}

// Clusters returns the connected groups of open sites as flat indices.
// Groups are seeded in row-major order and each is listed in BFS order from
// its first site, so the output is deterministic for a given open set.
// Time:   O(n²).
// Memory: O(n²) for visited flags and output.
func (m *Model) Clusters() [][]int {
	total := m.n * m.n
	seen := make([]bool, total)
	var clusters [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !m.isOpen(i0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			row, col := m.Coordinate(queue[qi])
			for _, d := range neighborOffsets {
				nr, nc := row+d[0], col+d[1]
				if !m.InBounds(nr, nc) {
					continue
				}
				vi := m.index(nr, nc)
				if seen[vi] || !m.isOpen(vi) {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		clusters = append(clusters, queue)
	}

	return clusters
}
