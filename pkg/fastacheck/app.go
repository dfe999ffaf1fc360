// 19 Oct 2026
// Command line handling for fastacheck, kept out of cmd/fastacheck so
// it can be tested.

package fastacheck

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	. "github.com/andrew-torda/gendna/pkg/common"
	"github.com/andrew-torda/gendna/pkg/gendna"
)

const (
	flagQuiet = "quiet"
	flagIUPAC = "iupac"
)

// ErrBadFiles is returned when at least one file did not pass.
var ErrBadFiles = errors.New("some files failed the check")

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageFail(c *cli.Context, err error) error {
	fmt.Fprintf(c.App.ErrWriter, "Incorrect usage: %v\n\n", err)
	cli.ShowAppHelp(c)
	return usageError{err}
}

func newApp(stdout, stderr io.Writer, log *logrus.Logger) *cli.App {
	return &cli.App{
		Name:      "fastacheck",
		Usage:     "check the shape and composition of generated fasta files",
		UsageText: "fastacheck [options] file...",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagQuiet,
				Aliases: []string{"q"},
				Usage:   "only report problems",
			},
			&cli.BoolFlag{
				Name:  flagIUPAC,
				Usage: "accept N as well as ACGT",
			},
		},
		HideHelpCommand: true,
		OnUsageError: func(c *cli.Context, err error, _ bool) error {
			return usageFail(c, err)
		},
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return usageFail(c, errors.New("no files given"))
			}
			alphabet := gendna.Nucleobases
			if c.Bool(flagIUPAC) {
				alphabet = gendna.IUPACAmbiguous
			}
			nBad := 0
			for _, fname := range c.Args().Slice() {
				rpt, err := Inspect(fname, alphabet)
				if err != nil {
					log.WithFields(logrus.Fields{"file": fname}).WithError(err).Error("check failed")
					nBad++
					continue
				}
				if c.Bool(flagQuiet) {
					continue
				}
				if err := rpt.Fprint(stdout, fname); err != nil {
					return err
				}
			}
			if nBad > 0 {
				return fmt.Errorf("%d of %d: %w", nBad, c.NArg(), ErrBadFiles)
			}
			return nil
		},
	}
}

// Main is the whole checker. args includes the program name, as in
// os.Args. It returns the exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	err := newApp(stdout, stderr, log).Run(args)
	var uErr usageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &uErr):
		return ExitUsageError
	case errors.Is(err, ErrBadFiles):
		return ExitFailure
	default:
		log.WithError(err).Error("fastacheck failed")
		return ExitFailure
	}
}
