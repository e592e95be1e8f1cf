// Command treevec encodes phylogenetic trees as vectors and compares them.
//
//	treevec encode --leaves map.json "((A,B),(C,D));"
//	treevec decode --leaves map.json vector.txt
//	treevec compare pair.txt --seq
//	treevec lcs sequences.txt
//
// A YAML file passed with --config sets defaults for every command; flags
// given on the command line win.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "treevec:", err)
		os.Exit(1)
	}
}
