// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.Bold)
	fastestColor = color.New(color.FgGreen)
	failedColor  = color.New(color.FgRed)
)

// group identifies the runs that share operands and a schedule.
type group struct {
	size     int
	schedule string
}

// WriteSummary prints one line per report. Speedup is relative to the run of
// the same size and schedule with the fewest threads. The fastest run of each
// group is highlighted; runs that were not persisted are marked.
func WriteSummary(w io.Writer, reports []Report) error {
	base := make(map[group]Report)
	best := make(map[group]int) // index of the group's fastest report
	for i, rep := range reports {
		g := group{rep.Size, rep.Schedule}
		if b, ok := base[g]; !ok || rep.Threads < b.Threads {
			base[g] = rep
		}
		if b, ok := best[g]; !ok || rep.Seconds < reports[b].Seconds {
			best[g] = i
		}
	}

	if _, err := headerColor.Fprintf(w, "%6s %-8s %-10s %7s %12s %8s %10s  %s\n",
		"size", "schedule", "policy", "threads", "seconds", "speedup", "nnz", "run"); err != nil {
		return err
	}
	for i, rep := range reports {
		g := group{rep.Size, rep.Schedule}
		speedup := 0.0
		if rep.Seconds > 0 {
			speedup = base[g].Seconds / rep.Seconds
		}
		line := fmt.Sprintf("%6d %-8s %-10s %7d %12.6f %8.2f %10d  %s",
			rep.Size, rep.Schedule, rep.Policy, rep.Threads, rep.Seconds, speedup, rep.NonZeros, rep.RunID)

		var err error
		switch {
		case !rep.Persisted:
			_, err = failedColor.Fprintln(w, line+"  (not persisted)")
		case i == best[g]:
			_, err = fastestColor.Fprintln(w, line)
		default:
			_, err = fmt.Fprintln(w, line)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
