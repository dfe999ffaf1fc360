// 19 Oct 2026
// Command line handling for gendna. It lives here rather than in
// cmd/gendna so it can be tested.

package gendna

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	. "github.com/andrew-torda/gendna/pkg/common"
)

const (
	flagSize       = "size"
	flagNumLines   = "num-lines"
	flagLineLength = "line-length"
	flagFileName   = "file-name"
	flagVerbose    = "verbose"
)

// usageError marks errors which are the user's fault. They get the
// usage exit code.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// appEnv is what the app needs from the outside world. Tests
// replace all of it.
type appEnv struct {
	stdout, stderr io.Writer
	outDir         string
	newRand        func() *rand.Rand
}

func newLogger(stderr io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	return log
}

// cfgFromCtx checks the flags and turns them into a Config.
func cfgFromCtx(c *cli.Context, outDir string) (Config, error) {
	cfg := DfltConfig()
	cfg.OutDir = outDir
	cfg.NumLines = c.Uint64(flagNumLines)
	cfg.LineLength = c.Uint64(flagLineLength)
	cfg.FileName = c.String(flagFileName)
	if c.IsSet(flagSize) {
		size := c.Uint(flagSize)
		if uint64(size) > math.MaxUint32 {
			return cfg, fmt.Errorf("--%s %d GiB is too big", flagSize, size)
		}
		s32 := uint32(size)
		cfg.Size = &s32
	}
	if cfg.LineLength > MaxLineLength {
		return cfg, fmt.Errorf("--%s %d is more than %d", flagLineLength, cfg.LineLength, MaxLineLength)
	}
	if cfg.FileName == "" || strings.ContainsAny(cfg.FileName, `/\`) {
		return cfg, fmt.Errorf("--%s %q should be a plain file name", flagFileName, cfg.FileName)
	}
	return cfg, nil
}

// usageFail complains on stderr, prints the help and marks err as a
// usage error.
func usageFail(c *cli.Context, err error) error {
	fmt.Fprintf(c.App.ErrWriter, "Incorrect usage: %v\n\n", err)
	cli.ShowAppHelp(c)
	return usageError{err}
}

func newApp(env appEnv, log *logrus.Logger) *cli.App {
	return &cli.App{
		Name:      "gendna",
		Usage:     "write a big fasta file of random sequence for testing",
		UsageText: "gendna [options]\nwrites " + DfltOutDir + "/<file-name>" + fastaExt,
		Writer:    env.stdout,
		ErrWriter: env.stderr,
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:    flagSize,
				Aliases: []string{"s"},
				Usage:   "approximate file size in GiB. Sets and overrides num-lines",
				EnvVars: []string{"GENDNA_SIZE"},
			},
			&cli.Uint64Flag{
				Name:    flagNumLines,
				Aliases: []string{"n"},
				Usage:   "number of non-header lines",
				Value:   DfltNumLines,
				EnvVars: []string{"GENDNA_NUM_LINES"},
			},
			&cli.Uint64Flag{
				Name:    flagLineLength,
				Aliases: []string{"l"},
				Usage:   "length of each non-header line",
				Value:   DfltLineLength,
				EnvVars: []string{"GENDNA_LINE_LENGTH"},
			},
			&cli.StringFlag{
				Name:    flagFileName,
				Aliases: []string{"f"},
				Usage:   "file name for output. Produces " + DfltOutDir + "/<file-name>" + fastaExt,
				Value:   DfltFileName,
				EnvVars: []string{"GENDNA_FILE_NAME"},
			},
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"v"},
				Usage:   "debug logging",
				EnvVars: []string{"GENDNA_VERBOSE"},
			},
		},
		HideHelpCommand: true,
		OnUsageError: func(c *cli.Context, err error, _ bool) error {
			return usageFail(c, err)
		},
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return usageFail(c, fmt.Errorf("unexpected arguments %v", c.Args().Slice()))
			}
			if c.Bool(flagVerbose) {
				log.SetLevel(logrus.DebugLevel)
			}
			cfg, err := cfgFromCtx(c, env.outDir)
			if err != nil {
				return usageFail(c, err)
			}
			cfg = cfg.Resolve()
			log.WithFields(logrus.Fields{
				"path":        cfg.OutputPath(),
				"num_lines":   cfg.NumLines,
				"line_length": cfg.LineLength,
				"approx_size": cfg.ApproxSize(),
			}).Debug("generating")

			summary, err := Run(cfg, env.newRand())
			if err != nil {
				return err
			}
			fmt.Fprintln(env.stdout, summary)
			return nil
		},
	}
}

// runApp runs the whole program and returns the exit code.
func runApp(args []string, env appEnv) int {
	log := newLogger(env.stderr)
	err := newApp(env, log).Run(args)
	var uErr usageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &uErr):
		log.WithError(err).Debug("usage error")
		return ExitUsageError
	default:
		log.WithError(err).Error("generation failed")
		return ExitFailure
	}
}

// Main is the whole program. args includes the program name, as in
// os.Args.
func Main(args []string, stdout, stderr io.Writer) int {
	return runApp(args, appEnv{
		stdout:  stdout,
		stderr:  stderr,
		outDir:  DfltOutDir,
		newRand: NewRand,
	})
}
