// This tool prints the sample rate, bit depth and channel count of the wav
// and aiff files passed to it, or found in the passed directories.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/goonzoid/wavels/internal/batch"
	"github.com/goonzoid/wavels/internal/discover"
	"github.com/goonzoid/wavels/internal/report"
	"github.com/sirupsen/logrus"
)

var (
	errDecodeFailures = errors.New("some files could not be decoded")
	errUsage          = errors.New("invalid arguments")
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, flag.ErrHelp):
		return
	case errors.Is(err, errUsage):
		// the problem and the usage are already printed
		os.Exit(2)
	case errors.Is(err, errDecodeFailures):
		os.Exit(1)
	}

	logrus.Fatal(err)
}

type config struct {
	recursive  bool
	count      bool
	verbose    bool
	workers    int
	extensions string
}

func parseFlags(args []string, stderr io.Writer) (config, []string, error) {
	var cfg config

	fs := flag.NewFlagSet("wavels", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.recursive, "r", false, "Descend into subdirectories")
	fs.BoolVar(&cfg.count, "c", false, "Print how many files share each format instead of listing them")
	fs.BoolVar(&cfg.verbose, "v", false, "Debug logging")
	fs.IntVar(&cfg.workers, "j", runtime.NumCPU(), "Number of files decoded in parallel")
	fs.StringVar(&cfg.extensions, "ext", "", "Comma separated file extensions to look for in directories (case sensitive)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: wavels [-r] [-c] [-j n] [-ext list] [-v] [path ...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, nil, err
		}

		return cfg, nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	if cfg.workers < 1 {
		fmt.Fprintf(fs.Output(), "-j must be at least 1, got %d\n", cfg.workers)
		fs.Usage()

		return cfg, nil, fmt.Errorf("%w: -j %d", errUsage, cfg.workers)
	}

	return cfg, fs.Args(), nil
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, paths, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cfg.verbose)

	exts := discover.DefaultExtensions
	if cfg.extensions != "" {
		exts = discover.ParseExtensions(cfg.extensions)
	}

	files, err := discover.Find(paths, discover.Options{Recursive: cfg.recursive, Extensions: exts})
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{"files": len(files), "workers": cfg.workers}).Debug("decoding")

	results := batch.Decode(files, batch.Options{Workers: cfg.workers, Logger: logger})

	if cfg.count {
		err = report.WriteCounts(stdout, stderr, results)
	} else {
		err = report.WriteList(stdout, stderr, results)
	}

	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if failed := batch.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(results), errDecodeFailures)
	}

	return nil
}
