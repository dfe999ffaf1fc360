// 19 Oct 2026

package fastacheck

import (
	"fmt"
	"io"
)

// Fprint writes a human readable summary of rpt.
func (rpt *Report) Fprint(w io.Writer, fname string) error {
	_, err := fmt.Fprintf(w, "%s\n header: %s\n lines: %d\n line length: %d\n size: %d bytes\n",
		fname, rpt.Header, rpt.NumLines, rpt.LineLength, rpt.Size)
	if err != nil {
		return err
	}
	total := rpt.NumLines * rpt.LineLength
	for _, c := range rpt.alphabet {
		n := rpt.SymbolCounts[c]
		var frac float64
		if total > 0 {
			frac = float64(n) / float64(total)
		}
		if _, err := fmt.Fprintf(w, " %c %12d %6.4f\n", c, n, frac); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, " chi2 %.3f (%d df) max column dev %.4f\n digest %016x\n",
		rpt.ChiSquare(), max(len(rpt.alphabet)-1, 0), rpt.MaxColumnDev(), rpt.Digest)
	return err
}
