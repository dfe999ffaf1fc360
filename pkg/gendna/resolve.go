// 19 Oct 2026
// Work out how many lines to write. Either we are told, or we are
// given a size in GiB and work backwards from the line length.

package gendna

import (
	"path/filepath"
)

const (
	DfltNumLines   uint64 = 1_000_000
	DfltLineLength uint64 = 80
	DfltFileName          = "big-file"
	DfltOutDir            = "example_data"
	fastaExt              = ".fasta"

	GiB uint64 = 1 << 30

	// MaxLineLength is the longest line we are willing to build in memory.
	MaxLineLength uint64 = GiB
)

// Config is everything needed for one run.
// Size, if not nil, is the approximate file size in GiB and overrides
// NumLines once Resolve has been called.
// Alphabet is nil for the default Nucleobases.
type Config struct {
	NumLines   uint64
	LineLength uint64
	FileName   string
	Size       *uint32
	OutDir     string
	Alphabet   Alphabet
}

// DfltConfig returns the settings used when nothing is given on the
// command line.
func DfltConfig() Config {
	return Config{
		NumLines:   DfltNumLines,
		LineLength: DfltLineLength,
		FileName:   DfltFileName,
		OutDir:     DfltOutDir,
	}
}

// ResolveNumLines returns the number of lines of length lineLength
// which gives roughly size GiB. Each line costs one byte extra for the
// newline. Integer division means we come out a little under.
func ResolveNumLines(size uint32, lineLength uint64) uint64 {
	return (uint64(size) * GiB) / (lineLength + 1)
}

// Resolve returns a copy of cfg with NumLines overridden if a size
// was given.
func (cfg Config) Resolve() Config {
	if cfg.Size != nil {
		cfg.NumLines = ResolveNumLines(*cfg.Size, cfg.LineLength)
	}
	return cfg
}

// OutputPath is where the sequence file goes.
func (cfg Config) OutputPath() string {
	return filepath.Join(cfg.OutDir, cfg.FileName+fastaExt)
}

// ApproxSize is the number of bytes the content lines will take,
// ignoring the header.
func (cfg Config) ApproxSize() uint64 {
	return cfg.NumLines * (cfg.LineLength + 1)
}
