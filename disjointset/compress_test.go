package disjointset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds 0 <- 1 <- 2 <- ... <- n-1 by hand, a path weighted union never produces.
func chain(t *testing.T, n int) *DisjointSet {
	t.Helper()
	ds, err := New(n)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		ds.parent[i] = i - 1
		ds.count--
	}
	ds.size[0] = n

	return ds
}

// TestFind_FullCompression verifies every node on the walked path points at the root afterwards.
func TestFind_FullCompression(t *testing.T) {
	const n = 8
	ds := chain(t, n)

	root, err := ds.Find(n - 1)
	require.NoError(t, err)
	assert.Equal(t, 0, root)
	for i := 0; i < n; i++ {
		assert.Equal(t, 0, ds.parent[i], "node %d not compressed", i)
	}
}

// TestFind_NoCycleAfterRepeatedCalls hammers Find on every node and then
// checks that the parent relation is still a forest.
func TestFind_NoCycleAfterRepeatedCalls(t *testing.T) {
	const n = 32
	ds := chain(t, n)
	for round := 0; round < 3; round++ {
		for i := n - 1; i >= 0; i-- {
			_, err := ds.Find(i)
			require.NoError(t, err)
		}
	}
	for i := 0; i < n; i++ {
		x, hops := i, 0
		for ds.parent[x] != x {
			x = ds.parent[x]
			hops++
			require.Less(t, hops, n, "cycle reached from %d", i)
		}
		assert.LessOrEqual(t, hops, 1)
	}
}

// TestUnion_TieBreak documents the arbitrary equal-size rule: y's root goes under x's.
func TestUnion_TieBreak(t *testing.T) {
	ds, err := New(2)
	require.NoError(t, err)

	_, err = ds.Union(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.parent[1])
	assert.Equal(t, 2, ds.size[0])
}
