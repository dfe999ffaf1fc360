// 19 Oct 2026

package main

import (
	"os"

	"github.com/andrew-torda/gendna/pkg/gendna"
)

func main() {
	os.Exit(gendna.Main(os.Args, os.Stdout, os.Stderr))
}
