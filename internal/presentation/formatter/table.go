package formatter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/chronoview/go-timeline-engine/internal/core/grid"
	"github.com/chronoview/go-timeline-engine/internal/util"
)

// TableFormatter renders a snapshot as bordered text tables: one for
// the header rows, one for the grid lines, and one for aggregated
// periods when present.
type TableFormatter struct{}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

func (f *TableFormatter) Format(w io.Writer, snap *ViewSnapshot) error {
	loc := resolveLocation(snap.Timezone)

	fmt.Fprintf(w, "Viewport: %s .. %s (%s)\n",
		util.FormatTimestamp(snap.Viewport.Start, loc),
		util.FormatTimestamp(snap.Viewport.End, loc),
		util.FormatDuration(millisToDuration(snap.Viewport.SpanMs())))
	fmt.Fprintf(w, "Zoom: %.6g px/ms, width %.0f px\n\n", snap.Zoom.PixelsPerMs, snap.ContainerWidth)

	if err := f.formatHeaderRows(w, snap.HeaderRows); err != nil {
		return err
	}
	if err := f.formatGridLines(w, snap.GridLines, loc); err != nil {
		return err
	}
	if len(snap.Periods) > 0 {
		return f.formatPeriods(w, snap, loc)
	}
	return nil
}

func (f *TableFormatter) formatHeaderRows(w io.Writer, rows [][]grid.HeaderCell) error {
	headers := []string{"Row", "Unit", "Position", "Width", "Label"}
	var data [][]string
	for i, row := range rows {
		for _, cell := range row {
			label := cell.Label
			if len(cell.Parts) > 0 {
				parts := make([]string, len(cell.Parts))
				for j, p := range cell.Parts {
					parts[j] = p.Text
				}
				label = strings.Join(parts, " | ")
			}
			data = append(data, []string{
				fmt.Sprintf("%d", i),
				cell.Unit.String(),
				fmt.Sprintf("%.1f", cell.Position),
				fmt.Sprintf("%.1f", cell.Width),
				label,
			})
		}
	}
	return printTable(w, headers, data, []bool{false, true, false, false, true})
}

func (f *TableFormatter) formatGridLines(w io.Writer, lines []grid.GridLine, loc *time.Location) error {
	headers := []string{"Position", "Unit", "Timestamp", "Label", "Primary"}
	data := make([][]string, 0, len(lines))
	for _, line := range lines {
		primary := ""
		if line.IsPrimary {
			primary = "yes"
		}
		data = append(data, []string{
			fmt.Sprintf("%.1f", line.Position),
			line.Unit.String(),
			util.FormatTimestamp(line.Timestamp, loc),
			line.Label,
			primary,
		})
	}
	return printTable(w, headers, data, []bool{false, true, true, true, true})
}

func (f *TableFormatter) formatPeriods(w io.Writer, snap *ViewSnapshot, loc *time.Location) error {
	headers := []string{"Period", "Occupied", "Available", "Occupancy"}
	var data [][]string
	for _, p := range snap.Periods {
		data = append(data, []string{
			util.FormatTimestamp(p.Start, loc),
			util.FormatDuration(millisToDuration(p.TotalOccupiedMs)),
			util.FormatDuration(millisToDuration(p.TotalAvailableMs)),
			fmt.Sprintf("%.1f%%", p.OccupancyPercent),
		})

		types := make([]string, 0, len(p.ByType))
		for typ := range p.ByType {
			types = append(types, typ)
		}
		sort.Strings(types)
		for _, typ := range types {
			bt := p.ByType[typ]
			data = append(data, []string{
				"└ " + typ,
				util.FormatDuration(millisToDuration(bt.DurationMs)),
				fmt.Sprintf("%d items", bt.Count),
				fmt.Sprintf("%.1f%%", bt.Percentage),
			})
		}
	}
	return printTable(w, headers, data, []bool{true, false, false, false})
}

// printTable draws one bordered table. leftAlign marks the columns
// padded on the right instead of the left.
func printTable(w io.Writer, headers []string, data [][]string, leftAlign []bool) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range data {
		for i, value := range row {
			if width := runewidth.StringWidth(value); width > widths[i] {
				widths[i] = width
			}
		}
	}

	printBorder(w, widths, "top")
	printRow(w, headers, widths, leftAlign)
	printBorder(w, widths, "middle")
	for _, row := range data {
		printRow(w, row, widths, leftAlign)
	}
	printBorder(w, widths, "bottom")
	_, err := fmt.Fprintln(w)
	return err
}

func printBorder(w io.Writer, widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	fmt.Fprint(w, left)
	for i, width := range widths {
		fmt.Fprint(w, strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			fmt.Fprint(w, middle)
		}
	}
	fmt.Fprintln(w, right)
}

func printRow(w io.Writer, values []string, widths []int, leftAlign []bool) {
	fmt.Fprint(w, "│")
	for i, value := range values {
		padded := runewidth.FillLeft(value, widths[i])
		if i < len(leftAlign) && leftAlign[i] {
			padded = runewidth.FillRight(value, widths[i])
		}
		fmt.Fprintf(w, " %s │", padded)
	}
	fmt.Fprintln(w)
}
