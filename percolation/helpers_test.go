package percolation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ReblochonMasque/percolation/percolation"
)

// site is a 1-based (row, col) pair.
type site struct{ row, col int }

// newModel builds an n×n model and fails the test on error.
func newModel(t testing.TB, n int) *percolation.Model {
	t.Helper()
	m, err := percolation.New(n)
	require.NoError(t, err)

	return m
}

// openAll opens every listed site in order.
func openAll(t testing.TB, m *percolation.Model, sites ...site) {
	t.Helper()
	for _, s := range sites {
		require.NoError(t, m.Open(s.row, s.col), "Open(%d,%d)", s.row, s.col)
	}
}

// fullOracle recomputes fullness from scratch by flooding from every open
// top-row site. Indexed [row-1][col-1].
func fullOracle(t testing.TB, m *percolation.Model) [][]bool {
	t.Helper()
	n := m.Size()
	full := make([][]bool, n)
	for i := range full {
		full[i] = make([]bool, n)
	}
	var stack []site
	for col := 1; col <= n; col++ {
		if ok, _ := m.IsOpen(1, col); ok {
			full[0][col-1] = true
			stack = append(stack, site{1, col})
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			r, c := s.row+d[0], s.col+d[1]
			if r < 1 || r > n || c < 1 || c > n || full[r-1][c-1] {
				continue
			}
			if ok, _ := m.IsOpen(r, c); ok {
				full[r-1][c-1] = true
				stack = append(stack, site{r, c})
			}
		}
	}

	return full
}
