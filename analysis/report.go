// SPDX-License-Identifier: MIT

package analysis

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
)

// SideReport is the zero scan outcome of one side.
type SideReport struct {
	Side   lfunc.Side
	Status lfunc.Status
	Zeros  []ball.Ball
	Plot   []PlotPoint
}

// Report is the outcome of one Run.
type Report struct {
	ID          string // uuid of the run
	Name        string
	Rank        lfunc.Rank
	RankStatus  lfunc.Status
	LeadingTerm ball.Ball
	Epsilon     complex128
	Sides       []SideReport
	Status      lfunc.Status // OR of the rank and side statuses
	Started     time.Time
	Elapsed     time.Duration
}

// Fatal reports whether any stage raised a fatal flag.
func (r *Report) Fatal() bool { return r.Status.Fatal() }

// Side returns the report of side s, if it was analysed.
func (r *Report) Side(s lfunc.Side) (SideReport, bool) {
	for _, sr := range r.Sides {
		if sr.Side == s {
			return sr, true
		}
	}
	return SideReport{}, false
}

// WriteText renders r for humans: a header, the zeros of every side and
// one line per warning flag.
func (r *Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "run:          %s\n", r.ID)
	fmt.Fprintf(bw, "name:         %s\n", r.Name)
	fmt.Fprintf(bw, "rank:         %s (%s)\n", r.Rank, r.RankStatus)
	fmt.Fprintf(bw, "leading term: %s\n", r.LeadingTerm)
	fmt.Fprintf(bw, "epsilon:      %v\n", r.Epsilon)
	for _, sr := range r.Sides {
		fmt.Fprintf(bw, "%s: %d zeros (%s)\n", sr.Side, len(sr.Zeros), sr.Status)
		for i, z := range sr.Zeros {
			fmt.Fprintf(bw, "  %4d  %s\n", i+1, z)
		}
	}
	fmt.Fprintf(bw, "status:       %s\n", r.Status)
	if err := lfunc.FprintStatus(bw, r.Status); err != nil {
		return err
	}
	return bw.Flush()
}
