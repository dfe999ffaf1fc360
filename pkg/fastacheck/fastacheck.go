// 19 Oct 2026
// Check a file holding a single fasta record with fixed width lines,
// such as gendna writes. We map the file, walk over the lines once
// and count what we see.

package fastacheck

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/andrew-torda/matrix"
	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"

	. "github.com/andrew-torda/gendna/pkg/common"
)

var (
	ErrNoHeader   = errors.New("first line is not a fasta header")
	ErrRaggedLine = errors.New("line length differs from first sequence line")
	ErrBadSymbol  = errors.New("symbol not in alphabet")
	ErrNoNewline  = errors.New("last line has no newline")
)

const NL = '\n'

// LineError says where a problem was. Line numbers count from 1 and
// include the header.
type LineError struct {
	Line uint64
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *LineError) Unwrap() error { return e.Err }

// Report is what we found in a file.
// ColumnFreqs has one row per alphabet symbol and one column per
// position in a line. Each entry is the fraction of lines with that
// symbol at that position. It is nil if there are no sequence lines.
// Digest is a hash of the sequence, without the header or newlines.
type Report struct {
	Header       string
	NumLines     uint64
	LineLength   uint64
	SymbolCounts map[byte]uint64
	ColumnFreqs  *matrix.FMatrix2d
	Digest       uint64
	Size         int64
	alphabet     []byte
}

// Inspect maps fname and checks it.
func Inspect(fname string, alphabet []byte) (*Report, error) {
	var fp *os.File
	var err error
	var mm mmap.MMap
	if fp, err = os.Open(fname); err != nil {
		return nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 { // mmap refuses empty files
		return nil, &LineError{Line: 1, Err: ErrNoHeader}
	}
	if mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	return InspectBytes(mm, alphabet)
}

// InspectBytes does the work for Inspect, on data in memory.
func InspectBytes(data []byte, alphabet []byte) (*Report, error) {
	var symNdx [256]int16 // position in alphabet or -1
	for i := range symNdx {
		symNdx[i] = -1
	}
	for i, c := range alphabet {
		symNdx[c] = int16(i)
	}

	rpt := &Report{Size: int64(len(data)), alphabet: alphabet}
	if len(data) == 0 || data[0] != CmmtChar {
		return rpt, &LineError{Line: 1, Err: ErrNoHeader}
	}
	ndx := bytes.IndexByte(data, NL)
	if ndx == -1 {
		return rpt, &LineError{Line: 1, Err: ErrNoNewline}
	}
	rpt.Header = string(data[1:ndx])
	data = data[ndx+1:]

	var colCounts [][]uint64 // [symbol][column]
	symCounts := make([]uint64, len(alphabet))
	dgst := xxhash.New()
	lineNum := uint64(1)
	for len(data) > 0 {
		lineNum++
		ndx = bytes.IndexByte(data, NL)
		if ndx == -1 {
			return rpt, &LineError{Line: lineNum, Err: ErrNoNewline}
		}
		line := data[:ndx]
		data = data[ndx+1:]
		if rpt.NumLines == 0 {
			rpt.LineLength = uint64(len(line))
			colCounts = make([][]uint64, len(alphabet))
			for i := range colCounts {
				colCounts[i] = make([]uint64, len(line))
			}
		} else if uint64(len(line)) != rpt.LineLength {
			return rpt, &LineError{Line: lineNum, Err: ErrRaggedLine}
		}
		for col, c := range line {
			s := symNdx[c]
			if s < 0 {
				return rpt, &LineError{Line: lineNum, Err: fmt.Errorf("%w: %q at column %d", ErrBadSymbol, c, col+1)}
			}
			colCounts[s][col]++
			symCounts[s]++
		}
		dgst.Write(line)
		rpt.NumLines++
	}

	rpt.Digest = dgst.Sum64()
	rpt.SymbolCounts = make(map[byte]uint64, len(alphabet))
	for i, c := range alphabet {
		rpt.SymbolCounts[c] = symCounts[i]
	}
	if rpt.NumLines > 0 {
		rpt.ColumnFreqs = matrix.NewFMatrix2d(len(alphabet), int(rpt.LineLength))
		nl := float32(rpt.NumLines)
		for s, row := range colCounts {
			for col, n := range row {
				rpt.ColumnFreqs.Mat[s][col] = float32(n) / nl
			}
		}
	}
	return rpt, nil
}

// ChiSquare compares the symbol counts with what we would expect if
// every symbol were equally likely. With k symbols, there are k-1
// degrees of freedom.
func (rpt *Report) ChiSquare() float64 {
	k := len(rpt.alphabet)
	total := rpt.NumLines * rpt.LineLength
	if k == 0 || total == 0 {
		return 0
	}
	expect := float64(total) / float64(k)
	var chi2 float64
	for _, c := range rpt.alphabet {
		d := float64(rpt.SymbolCounts[c]) - expect
		chi2 += d * d / expect
	}
	return chi2
}

// MaxColumnDev is the biggest difference between any column frequency
// and 1/k. It is a crude check that no position in a line is favoured.
func (rpt *Report) MaxColumnDev() float64 {
	if rpt.ColumnFreqs == nil {
		return 0
	}
	want := 1 / float64(len(rpt.alphabet))
	var dev float64
	for _, row := range rpt.ColumnFreqs.Mat {
		for _, f := range row {
			if d := float64(f) - want; d > dev {
				dev = d
			} else if -d > dev {
				dev = -d
			}
		}
	}
	return dev
}
