package brokenio_test

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/andrew-torda/gendna/brokenio"
)

var longstring = "0123456789012345678901234567890123456789"

// TestNoLimit checks that an unconfigured writer is transparent.
func TestNoLimit(t *testing.T) {
	var buf bytes.Buffer
	w := brokenio.NewWriter(&buf)
	for i := 0; i < 10; i++ {
		if _, err := w.Write([]byte(longstring)); err != nil {
			t.Fatal(err)
		}
	}
	if buf.String() != strings.Repeat(longstring, 10) {
		t.Fatal("contents changed going through unbroken writer")
	}
	if w.NBytes() != int64(10*len(longstring)) {
		t.Fatal("counted", w.NBytes(), "bytes")
	}
}

// TestLimit - break the writer at different points.
func TestLimit(t *testing.T) {
	for _, limit := range []int64{0, 1, 15, 40, 41} {
		var buf bytes.Buffer
		w := brokenio.NewWriter(&buf)
		w.SetLimit(limit)
		n, err := w.Write([]byte(longstring))
		want := min(limit, int64(len(longstring)))
		if int64(n) != want || int64(buf.Len()) != want {
			t.Errorf("limit %d: wrote %d, buffer has %d, wanted %d", limit, n, buf.Len(), want)
		}
		if limit < int64(len(longstring)) {
			if !errors.Is(err, brokenio.ErrBroken) {
				t.Errorf("limit %d: wanted ErrBroken, got %v", limit, err)
			}
		} else if err != nil {
			t.Errorf("limit %d: unexpected error %v", limit, err)
		}
		if limit == 0 || limit == 15 {
			if _, err := w.Write([]byte("more")); !errors.Is(err, brokenio.ErrBroken) {
				t.Errorf("limit %d: write after breaking did not fail", limit)
			}
		}
	}
}

// TestProbFail with a probability of 1 should always fail and pass
// nothing through.
func TestProbFail(t *testing.T) {
	var buf bytes.Buffer
	w := brokenio.NewWriter(&buf)
	w.SetProbFail(1, rand.New(rand.NewSource(1637)))
	if n, err := w.Write([]byte(longstring)); n != 0 || !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("got n", n, "err", err)
	}
	if buf.Len() != 0 {
		t.Fatal("failed write leaked", buf.Len(), "bytes")
	}
}

func TestReport(t *testing.T) {
	var buf, rpt bytes.Buffer
	w := brokenio.NewWriter(&buf)
	w.Report(&rpt)
	if rpt.Len() != 0 {
		t.Fatal("quiet writer reported", rpt.String())
	}
	w.SetVerbose(true)
	w.Write([]byte("abc"))
	w.Report(&rpt)
	if !strings.Contains(rpt.String(), "3 bytes") {
		t.Fatal("report was", rpt.String())
	}
}
