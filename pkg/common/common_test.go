package common_test

import (
	"os"
	"testing"

	"github.com/andrew-torda/gendna/pkg/common"
)

func TestWrtTemp(t *testing.T) {
	const s = ">x\nACGT\n"
	fname, err := common.WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != s {
		t.Fatalf("got %q wanted %q", b, s)
	}
}

func TestExitCodes(t *testing.T) {
	if common.ExitSuccess != 0 {
		t.Fatal("ExitSuccess must be zero, got", common.ExitSuccess)
	}
	if common.ExitFailure == common.ExitUsageError {
		t.Fatal("failure and usage error share an exit code")
	}
}
