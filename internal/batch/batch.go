// Package batch decodes the headers of many files in parallel.
package batch

import (
	"os"
	"runtime"
	"sync"

	"github.com/goonzoid/wavels"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of decoding one file. Exactly one of Info and Err
// is meaningful.
type Result struct {
	Path string
	Info wavels.PCMInfo
	Err  error
}

// Options configure Decode.
type Options struct {
	// Workers is the number of files decoded at once. Defaults to the
	// number of CPUs.
	Workers int
	Logger  logrus.FieldLogger
}

// Decode decodes every path and returns one Result per path, in the order
// of paths. A failing file never stops the others.
func Decode(paths []string, opts Options) []Result {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	workers = min(workers, len(paths))

	jobs := make(chan int)

	var wg sync.WaitGroup

	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()

			for i := range jobs {
				results[i] = decodeOne(paths[i], logger)
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}

	close(jobs)
	wg.Wait()

	return results
}

func decodeOne(path string, logger logrus.FieldLogger) Result {
	log := logger.WithField("path", path)

	file, err := os.Open(path)
	if err != nil {
		log.WithError(err).Debug("open failed")
		return Result{Path: path, Err: err}
	}
	defer file.Close()

	dec := wavels.NewDecoder(file)
	dec.Logger = log

	info, err := dec.Decode()
	if err != nil {
		log.WithError(err).Debug("decode failed")
		return Result{Path: path, Err: err}
	}

	log.WithFields(logrus.Fields{
		"container": dec.Container(),
		"format":    info,
	}).Debug("decoded")

	return Result{Path: path, Info: info}
}

// Failed returns the number of results holding an error.
func Failed(results []Result) int {
	var n int

	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}

	return n
}
