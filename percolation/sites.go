package percolation

import "github.com/bits-and-blooms/bitset"

// newSiteSet allocates an empty open-site set for total sites.
func newSiteSet(total int) *bitset.BitSet {
	return bitset.New(uint(total))
}

func (m *Model) isOpen(site int) bool {
	return m.opened.Test(uint(site))
}

func (m *Model) markOpen(site int) {
	m.opened.Set(uint(site))
	m.openCount++
}
