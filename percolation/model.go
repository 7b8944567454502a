package percolation

import (
	"fmt"

	"github.com/ReblochonMasque/percolation/disjointset"
)

// New builds an n×n grid with every site blocked.
// Each top-row index is pre-joined to the virtual top node and each bottom-row
// index to the virtual bottom node. Blocked sites are never unioned with a
// neighbour, so these links only matter once the site is opened.
// Returns ErrInvalidSize if n ≤ 0; no partial model is produced.
// Complexity: O(n²) time and memory.
func New(n int) (*Model, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	total := n * n
	top, err := disjointset.New(total + 1)
	if err != nil {
		return nil, err
	}
	bottom, err := disjointset.New(total + 1)
	if err != nil {
		return nil, err
	}
	m := &Model{
		n:       n,
		virtual: total,
		opened:  newSiteSet(total),
		top:     top,
		bottom:  bottom,
	}
	for col := 1; col <= n; col++ {
		link(m.top, m.index(1, col), m.virtual)
		link(m.bottom, m.index(n, col), m.virtual)
	}

	return m, nil
}

// link unions a and b in ds. Model validates every coordinate before it
// reaches a DisjointSet, so the index error cannot occur here.
func link(ds *disjointset.DisjointSet, a, b int) {
	_, _ = ds.Union(a, b)
}

// linked reports whether a and b share a component in ds.
func linked(ds *disjointset.DisjointSet, a, b int) bool {
	ok, _ := ds.Connected(a, b)
	return ok
}

// Size returns the side length n.
func (m *Model) Size() int {
	return m.n
}

// Open opens the site at (row, col).
//
// Opening an already open site is a no-op. Otherwise the site is joined with
// every open orthogonal neighbour in both structures, with the virtual top
// node if row == 1 and with the virtual bottom node if row == n. If the site
// then reaches both virtual nodes the model percolates from now on.
// Returns ErrOutOfRange without touching the model for bad coordinates.
// Complexity: O(α(n²)) amortized.
func (m *Model) Open(row, col int) error {
	site, err := m.Index(row, col)
	if err != nil {
		return err
	}
	if m.isOpen(site) {
		return nil
	}
	m.markOpen(site)

	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !m.InBounds(nr, nc) {
			continue
		}
		nb := m.index(nr, nc)
		if !m.isOpen(nb) {
			continue
		}
		link(m.top, site, nb)
		link(m.bottom, site, nb)
	}
	if row == 1 {
		link(m.top, site, m.virtual)
	}
	if row == m.n {
		link(m.bottom, site, m.virtual)
	}

	if linked(m.top, site, m.virtual) && linked(m.bottom, site, m.virtual) {
		m.percolates = true
	}

	return nil
}

// IsOpen reports whether the site at (row, col) is open.
func (m *Model) IsOpen(row, col int) (bool, error) {
	site, err := m.Index(row, col)
	if err != nil {
		return false, err
	}

	return m.isOpen(site), nil
}

// IsFull reports whether the site at (row, col) is open and connected to the top row.
// Complexity: O(α(n²)) amortized.
func (m *Model) IsFull(row, col int) (bool, error) {
	site, err := m.Index(row, col)
	if err != nil {
		return false, err
	}

	return m.isFull(site), nil
}

// isFull checks membership first: blocked top-row sites are pre-joined to
// the virtual top node but are never full.
func (m *Model) isFull(site int) bool {
	return m.isOpen(site) && linked(m.top, site, m.virtual)
}

// Site returns the derived state of the site at (row, col).
func (m *Model) Site(row, col int) (Site, error) {
	site, err := m.Index(row, col)
	if err != nil {
		return Blocked, err
	}

	return m.state(site), nil
}

func (m *Model) state(site int) Site {
	switch {
	case m.isFull(site):
		return Full
	case m.isOpen(site):
		return Open
	default:
		return Blocked
	}
}

// Percolates reports whether some bottom-row site is full. Once true it stays true.
// Complexity: O(1).
func (m *Model) Percolates() bool {
	return m.percolates
}

// NumberOfOpenSites returns how many distinct sites have been opened.
// Complexity: O(1).
func (m *Model) NumberOfOpenSites() int {
	return m.openCount
}
