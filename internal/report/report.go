// Package report renders decode results for the terminal.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/goonzoid/wavels"
	"github.com/goonzoid/wavels/internal/batch"
)

// Group is the number of files sharing one format.
type Group struct {
	Info  wavels.PCMInfo
	Count int
}

// WriteList writes one line per decoded file to out and one line per
// failure to errOut, in the order of results.
func WriteList(out, errOut io.Writer, results []batch.Result) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	for _, r := range results {
		if r.Err != nil {
			// flush first so successes and failures keep their relative order
			// when both writers are the same terminal
			if err := tw.Flush(); err != nil {
				return err
			}

			if _, err := fmt.Fprintln(errOut, ErrorLine(r.Path, r.Err)); err != nil {
				return err
			}

			continue
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.Path, r.Info); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// WriteCounts writes how many files share each format to out, most common
// first, then the failures to errOut.
func WriteCounts(out, errOut io.Writer, results []batch.Result) error {
	groups := Count(results)

	width := 1
	if len(groups) > 0 {
		width = len(strconv.Itoa(groups[0].Count))
	}

	for _, g := range groups {
		if _, err := fmt.Fprintf(out, "%*d  %s\n", width, g.Count, g.Info); err != nil {
			return err
		}
	}

	var failed int

	for _, r := range results {
		if r.Err == nil {
			continue
		}

		failed++

		if _, err := fmt.Fprintln(errOut, ErrorLine(r.Path, r.Err)); err != nil {
			return err
		}
	}

	if failed > 0 {
		if _, err := fmt.Fprintf(errOut, "%d file(s) failed\n", failed); err != nil {
			return err
		}
	}

	return nil
}

// Count groups the successful results by format. Groups are sorted by
// descending count, then by sample rate, bit depth and channels.
func Count(results []batch.Result) []Group {
	counts := make(map[wavels.PCMInfo]int)

	for _, r := range results {
		if r.Err == nil {
			counts[r.Info]++
		}
	}

	groups := make([]Group, 0, len(counts))
	for info, n := range counts {
		groups = append(groups, Group{Info: info, Count: n})
	}

	slices.SortFunc(groups, func(a, b Group) int {
		return cmp.Or(
			cmp.Compare(b.Count, a.Count),
			cmp.Compare(a.Info.SampleRate, b.Info.SampleRate),
			cmp.Compare(a.Info.BitDepth, b.Info.BitDepth),
			cmp.Compare(a.Info.Channels, b.Info.Channels),
		)
	})

	return groups
}

// ErrorLine renders a failed file as "path: error".
func ErrorLine(path string, err error) string {
	return path + ": " + err.Error()
}
