package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/specialistvlad/toboggan/internal/toboggan"
)

// writeReport prints one line per slope followed by the product line.
func writeReport(w io.Writer, results []toboggan.Result, product uint64) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		fmt.Fprintf(bw, "Right %d, down %d: %d trees\n", r.Slope.Right, r.Slope.Down, r.Trees)
	}
	fmt.Fprintf(bw, "Product of trees encountered: %d\n", product)
	return bw.Flush()
}
