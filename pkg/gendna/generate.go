// 19 Oct 2026
// Write one fasta record of random sequence. The header is ">" and
// a label, then numLines lines, each lineLength symbols long.

package gendna

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	. "github.com/andrew-torda/gendna/pkg/common"
)

const wrtBufSize = 1 << 20 // Files are often in the GiB range

// WriteRecord writes the header and the random lines to w.
// w should be buffered. We make one Write call per line.
func WriteRecord(w io.Writer, cfg *Config, rnd *rand.Rand) error {
	alphabet := cfg.Alphabet
	if alphabet == nil {
		alphabet = Nucleobases
	}
	picker, err := newSymbolPicker(alphabet, rnd)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%c%s\n", CmmtChar, cfg.FileName); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	line := make([]byte, cfg.LineLength+1)
	line[cfg.LineLength] = '\n'
	for i := uint64(0); i < cfg.NumLines; i++ {
		picker.fill(line[:cfg.LineLength])
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("writing line %d: %w", i+1, err)
		}
	}
	return nil
}

// Generate makes the output directory if necessary, then creates or
// truncates the file and writes the record. The file is flushed and
// closed on the way out, whatever happens. Errors from close are
// only reported if nothing went wrong before.
func Generate(cfg *Config, rnd *rand.Rand) (err error) {
	if err = os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("making output directory: %w", err)
	}
	fname := cfg.OutputPath()
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cErr := fp.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", fname, cErr)
		}
	}()

	bw := bufio.NewWriterSize(fp, wrtBufSize)
	if err = WriteRecord(bw, cfg, rnd); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", fname, err)
	}
	return nil
}

// Summary is what we tell the user at the end.
type Summary struct {
	Path     string
	NumLines uint64
	Elapsed  time.Duration
}

// String gives seconds with two decimal places. The hundredths are
// truncated, not rounded.
func (s Summary) String() string {
	ms := s.Elapsed.Milliseconds()
	return fmt.Sprintf("\nFinished generation of %d lines in %d.%02d seconds.",
		s.NumLines, ms/1000, ms%1000/10)
}

// Run resolves cfg, generates the file and times it.
func Run(cfg Config, rnd *rand.Rand) (Summary, error) {
	cfg = cfg.Resolve()
	start := time.Now()
	if err := Generate(&cfg, rnd); err != nil {
		return Summary{}, err
	}
	return Summary{
		Path:     cfg.OutputPath(),
		NumLines: cfg.NumLines,
		Elapsed:  time.Since(start),
	}, nil
}

// NewRand gives a generator seeded from the clock, so every run is
// different.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
