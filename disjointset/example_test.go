package disjointset_test

import (
	"fmt"

	"github.com/ReblochonMasque/percolation/disjointset"
)

// ExampleDisjointSet_Union groups six elements into two components.
//
//	{0,1,2}  {3,4,5}
func ExampleDisjointSet_Union() {
	ds, _ := disjointset.New(6)
	for _, p := range [][2]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {2, 0}} {
		merged, _ := ds.Union(p[0], p[1])
		fmt.Printf("union(%d,%d) merged=%v count=%d\n", p[0], p[1], merged, ds.Count())
	}
	same, _ := ds.Connected(0, 2)
	diff, _ := ds.Connected(2, 3)
	fmt.Println("connected(0,2):", same)
	fmt.Println("connected(2,3):", diff)

	// Output:
	// union(0,1) merged=true count=5
	// union(1,2) merged=true count=4
	// union(3,4) merged=true count=3
	// union(4,5) merged=true count=2
	// union(2,0) merged=false count=2
	// connected(0,2): true
	// connected(2,3): false
}
