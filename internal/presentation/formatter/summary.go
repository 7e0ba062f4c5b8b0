package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/chronoview/go-timeline-engine/internal/util"
)

// SummaryFormatter outputs a human-readable digest of a snapshot
// instead of the full tables.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format writes the summary report for one snapshot.
func (f *SummaryFormatter) Format(w io.Writer, snap *ViewSnapshot) error {
	loc := resolveLocation(snap.Timezone)

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "Timeline View Summary")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Range: %s to %s\n",
		util.FormatTimestamp(snap.Viewport.Start, loc),
		util.FormatTimestamp(snap.Viewport.End, loc))
	fmt.Fprintf(w, "Span: %s\n", util.FormatDuration(millisToDuration(snap.Viewport.SpanMs())))
	fmt.Fprintf(w, "Zoom: %.6g px/ms over %.0f px\n", snap.Zoom.PixelsPerMs, snap.ContainerWidth)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Time Axis:")
	for i, row := range snap.HeaderRows {
		if len(row) == 0 {
			continue
		}
		fmt.Fprintf(w, "  Row %d: %s (%d cells)\n", i, row[0].Unit.String(), len(row))
	}
	fmt.Fprintf(w, "  Grid lines: %d\n", len(snap.GridLines))
	fmt.Fprintln(w)

	if len(snap.Periods) > 0 {
		var totalOccupied, totalAvailable int64
		peak := 0.0
		for _, p := range snap.Periods {
			totalOccupied += p.TotalOccupiedMs
			totalAvailable += p.TotalAvailableMs
			if p.OccupancyPercent > peak {
				peak = p.OccupancyPercent
			}
		}
		fmt.Fprintln(w, "Aggregation:")
		fmt.Fprintf(w, "  Periods: %d\n", len(snap.Periods))
		fmt.Fprintf(w, "  Occupied: %s of %s available\n",
			util.FormatDuration(millisToDuration(totalOccupied)),
			util.FormatDuration(millisToDuration(totalAvailable)))
		fmt.Fprintf(w, "  Peak occupancy: %.1f%%\n", peak)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	return nil
}
