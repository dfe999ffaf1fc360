// brokenio is a wrapper around an io.Writer. It allows us to make
// writes fail, either after a fixed number of bytes or at random.
// Typical use: You have a file or a buffer you want to write to. You
// write
// w = brokenio.NewWriter(w)
// to wrap the old writer. Everything functions as before, but with
// artificial errors, like a disk filling up.
// When a write fails, the bytes which fitted are passed on, so the
// caller sees a short write plus an error, as with a real device.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is returned (wrapped) by every failed write.
var ErrBroken = errors.New("brokenio: artificial write failure")

// A BrknWrtr is modelled on the various Writers in the standard library,
// but with variables controlling when writes fail.
// limit is the number of bytes accepted before every further write fails.
// A negative limit means no limit.
// probFail is the fraction of calls which fail, so a value of 0.05
// means failure in 5% of the cases.
// If verbose is true, print out the amount of data when Report is called.
type BrknWrtr struct {
	wrtr_orig io.Writer // Wrapped writer
	rnd       *rand.Rand
	limit     int64
	probFail  float32
	nCalled   int
	nByte     int64
	verbose   bool
}

// dfltWriter sets default values for a new brokenio writer.
var dfltWriter = BrknWrtr{
	wrtr_orig: nil,
	limit:     -1,
	probFail:  0,
	verbose:   false,
}

// SetVerbose sets the verbosity flag to true or false
func (w *BrknWrtr) SetVerbose(newV bool) { w.verbose = newV }

// SetLimit sets the number of bytes which will be written before
// the writer breaks.
func (w *BrknWrtr) SetLimit(n int64) { w.limit = n }

// SetProbFail sets the probability of a write failing.
// It must be between zero and 1. We do not check if the
// argument is valid. The random numbers come from rnd, so tests
// can be repeated.
func (w *BrknWrtr) SetProbFail(prob float32, rnd *rand.Rand) {
	w.probFail = prob
	w.rnd = rnd
}

// NewWriter returns a new Writer - a wrapper around the old one
func NewWriter(wIn io.Writer) *BrknWrtr {
	var wOut = dfltWriter
	wOut.wrtr_orig = wIn
	return &wOut
}

// NBytes is the number of bytes passed on to the wrapped writer.
func (w *BrknWrtr) NBytes() int64 { return w.nByte }

// Write passes p to the wrapped writer and sums up the amount of data
// that has gone through. Once the limit is reached, only the part of
// p which fits is passed on and we return ErrBroken.
func (w *BrknWrtr) Write(p []byte) (n int, err error) {
	w.nCalled++
	if w.probFail > 0 && w.rnd.Float32() < w.probFail {
		return 0, fmt.Errorf("call %d: %w", w.nCalled, ErrBroken)
	}
	q := p
	if w.limit >= 0 {
		if room := w.limit - w.nByte; room < int64(len(p)) {
			q = p[:max(room, 0)]
		}
	}
	if len(q) > 0 {
		n, err = w.wrtr_orig.Write(q)
		w.nByte += int64(n)
		if err != nil {
			return n, err
		}
	}
	if len(q) < len(p) {
		return n, fmt.Errorf("after %d bytes: %w", w.nByte, ErrBroken)
	}
	return n, nil
}

// Report prints the number of calls and bytes, if we are verbose.
func (w *BrknWrtr) Report(dst io.Writer) {
	if w.verbose {
		fmt.Fprintln(dst, "Wrote", w.nCalled, "calls and", w.nByte, "bytes")
	}
}
