// Command morphdict queries a compiled dictionary from the shell and builds
// word index files.
//
//	morphdict --dict DIR parse WORD...
//	morphdict --dict DIR predict WORD...
//	morphdict --dict DIR info
//	morphdict tag TAG...
//	morphdict index build --in records.tsv --out words.idx
package main

import (
	"fmt"
	"os"

	"github.com/cours-de-latin/morphdict/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "morphdict: %v\n", err)
		os.Exit(1)
	}
}
