package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/chronoview/go-timeline-engine/internal/util"
)

// CSVFormatter writes the aggregated periods of a snapshot as CSV,
// one row per period plus one indented row per item type. Snapshots
// without periods produce only the header line.
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, snap *ViewSnapshot) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	loc := resolveLocation(snap.Timezone)

	headers := []string{
		"Start", "End", "Occupied (ms)", "Available (ms)", "Occupancy (%)", "Items",
	}
	if err := cw.Write(headers); err != nil {
		return err
	}

	for _, p := range snap.Periods {
		itemCount := 0
		for _, bt := range p.ByType {
			itemCount += bt.Count
		}
		record := []string{
			util.FormatTimestamp(p.Start, loc),
			util.FormatTimestamp(p.End, loc),
			fmt.Sprintf("%d", p.TotalOccupiedMs),
			fmt.Sprintf("%d", p.TotalAvailableMs),
			fmt.Sprintf("%.2f", p.OccupancyPercent),
			fmt.Sprintf("%d", itemCount),
		}
		if err := cw.Write(record); err != nil {
			return err
		}

		types := make([]string, 0, len(p.ByType))
		for typ := range p.ByType {
			types = append(types, typ)
		}
		sort.Strings(types)
		for _, typ := range types {
			bt := p.ByType[typ]
			record := []string{
				"  └─ " + typ,
				"",
				fmt.Sprintf("%d", bt.DurationMs),
				"",
				fmt.Sprintf("%.2f", bt.Percentage),
				fmt.Sprintf("%d", bt.Count),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
