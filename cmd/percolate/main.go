// Command percolate opens sites on a square percolation grid and reports
// whether the grid percolates.
package main

import "github.com/ReblochonMasque/percolation/internal/cli"

func main() {
	cli.Execute()
}
