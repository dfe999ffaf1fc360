package gendna

import (
	"io"
	"math/rand"
)

// RunApp runs the program writing to outDir, with a fixed seed.
func RunApp(args []string, stdout, stderr io.Writer, outDir string, seed int64) int {
	return runApp(args, appEnv{
		stdout:  stdout,
		stderr:  stderr,
		outDir:  outDir,
		newRand: func() *rand.Rand { return rand.New(rand.NewSource(seed)) },
	})
}

const WrtBufSize = wrtBufSize
