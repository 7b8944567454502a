package percolation

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/ReblochonMasque/percolation/disjointset"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates a grid side length that is not a positive integer.
	ErrInvalidSize = errors.New("percolation: grid size must be > 0")

	// ErrOutOfRange indicates a row or column outside [1, n].
	ErrOutOfRange = errors.New("percolation: site coordinates out of range")
)

// Site is the observable state of one grid cell.
// It is derived on query from the open set and top connectivity, never stored.
type Site uint8

const (
	// Blocked sites have not been opened.
	Blocked Site = iota
	// Open sites are open but not connected to the top row.
	Open
	// Full sites are open and connected to the top row.
	Full
)

// String returns the lowercase state name.
func (s Site) String() string {
	switch s {
	case Blocked:
		return "blocked"
	case Open:
		return "open"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Glyphs selects the rune drawn for each Site by Render.
type Glyphs struct {
	Blocked rune
	Open    rune
	Full    rune
}

// DefaultGlyphs returns the text-view glyphs: '█' blocked, ' ' open, '.' full.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Blocked: '█',
		Open:    ' ',
		Full:    '.',
	}
}

// For returns the rune for s.
func (g Glyphs) For(s Site) rune {
	switch s {
	case Open:
		return g.Open
	case Full:
		return g.Full
	default:
		return g.Blocked
	}
}

// neighborOffsets lists the orthogonal (row, col) steps: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Model is an n×n percolation grid.
//
// opened holds the flat indices of open sites and openCount its cardinality.
// top and bottom each have n·n+1 elements; index virtual (= n·n) is the
// virtual top node in top and the virtual bottom node in bottom. The two
// structures never reference each other's virtual node.
type Model struct {
	n          int
	virtual    int
	opened     *bitset.BitSet
	openCount  int
	top        *disjointset.DisjointSet
	bottom     *disjointset.DisjointSet
	percolates bool
}
