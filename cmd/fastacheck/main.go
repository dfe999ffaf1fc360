// 19 Oct 2026

// Check fasta files written by gendna. For each file, make sure there
// is one header and the lines all have the same length and only
// contain bases. Print the composition, so one can see the bases
// are evenly spread.

package main

import (
	"os"

	"github.com/andrew-torda/gendna/pkg/fastacheck"
)

func main() {
	os.Exit(fastacheck.Main(os.Args, os.Stdout, os.Stderr))
}
