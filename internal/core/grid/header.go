package grid

import (
	"math"
	"strings"
	"time"

	"github.com/chronoview/go-timeline-engine/internal/core/convert"
	"github.com/chronoview/go-timeline-engine/internal/core/timeunit"
	"github.com/chronoview/go-timeline-engine/internal/core/viewport"
)

// combineTolerance lets a combined caption exceed the host cell width by a
// quarter before combination is rejected.
const combineTolerance = 1.25

// HeaderRows generates the header cell rows for the current state, finest
// unit first. Adjacent week/month/year rows are merged into combined cells
// when their captions fit inside the finer unit's cell width; edge cells
// that are only partially visible never receive combined labels.
func (c *Calculator) HeaderRows(zoom viewport.ZoomState, vp viewport.ViewportState, containerWidth float64) [][]HeaderCell {
	units := c.VisibleUnits(zoom.PixelsPerMs)
	has := make(map[timeunit.Unit]bool, len(units))
	for _, u := range units {
		has[u] = true
	}

	merged, dropped := c.planCombination(zoom.PixelsPerMs, has)

	var rows [][]HeaderCell
	for _, u := range units {
		if dropped[u] {
			continue
		}
		cells := c.cellsFor(u, zoom, vp, containerWidth)
		if partners, ok := merged[u]; ok {
			cells = c.combineCells(cells, partners)
		}
		rows = append(rows, cells)
	}
	return rows
}

// planCombination decides which header rows merge at this zoom. The merge
// attempts run in priority order: week+month+year into one row, else
// month into the week row, else year into the month row. The returned maps
// give, per host unit, the coarser units folded into it, and the set of
// units whose standalone rows disappear.
func (c *Calculator) planCombination(pixelsPerMs float64, has map[timeunit.Unit]bool) (map[timeunit.Unit][]timeunit.Unit, map[timeunit.Unit]bool) {
	merged := make(map[timeunit.Unit][]timeunit.Unit)
	dropped := make(map[timeunit.Unit]bool)

	weekPx := float64(timeunit.Week.DurationMs()) * pixelsPerMs
	monthPx := float64(timeunit.Month.DurationMs()) * pixelsPerMs

	weekW := estimateCaptionWidth(c.locale.Week()+" 52", true)
	monthW := estimateCaptionWidth(c.widestMonth(), false)
	yearW := estimateCaptionWidth("2025", false)

	switch {
	case has[timeunit.Week] && has[timeunit.Month] && has[timeunit.Year] &&
		weekW+monthW+yearW <= weekPx*combineTolerance:
		merged[timeunit.Week] = []timeunit.Unit{timeunit.Month, timeunit.Year}
		dropped[timeunit.Month] = true
		dropped[timeunit.Year] = true
	case has[timeunit.Week] && has[timeunit.Month] &&
		weekW+monthW <= weekPx*combineTolerance:
		merged[timeunit.Week] = []timeunit.Unit{timeunit.Month}
		dropped[timeunit.Month] = true
	case has[timeunit.Month] && has[timeunit.Year] &&
		estimateCaptionWidth(c.widestMonth(), true)+yearW <= monthPx*combineTolerance:
		merged[timeunit.Month] = []timeunit.Unit{timeunit.Year}
		dropped[timeunit.Year] = true
	}
	return merged, dropped
}

// cellsFor walks unit boundaries across the viewport and emits one cell per
// step, clipping edge cells to the visible bounds.
func (c *Calculator) cellsFor(u timeunit.Unit, zoom viewport.ZoomState, vp viewport.ViewportState, containerWidth float64) []HeaderCell {
	rightBound := math.Min(containerWidth, convert.TimeToPixel(vp.End, vp, zoom))

	var cells []HeaderCell
	for b := timeunit.Floor(vp.Start, u, c.loc); b < vp.End; b = timeunit.Add(b, 1, u, c.loc) {
		next := timeunit.Add(b, 1, u, c.loc)
		left := math.Max(convert.TimeToPixel(b, vp, zoom), 0)
		right := math.Min(convert.TimeToPixel(next, vp, zoom), rightBound)
		if right <= left {
			continue
		}

		cells = append(cells, HeaderCell{
			Timestamp:          b,
			Position:           left,
			Width:              right - left,
			Unit:               u,
			Label:              c.Label(b, u),
			IsPartiallyVisible: b < vp.Start || next > vp.End,
		})
	}
	return cells
}

// combineCells attaches the partner units' captions to each fully visible
// host cell. Two-way combinations split 50/50 left/right; three-way split
// in thirds left/center/right. Partially visible edge cells keep only the
// host unit's caption.
func (c *Calculator) combineCells(cells []HeaderCell, partners []timeunit.Unit) []HeaderCell {
	fraction := 1.0 / float64(len(partners)+1)

	out := make([]HeaderCell, len(cells))
	for i, cell := range cells {
		if cell.IsPartiallyVisible {
			out[i] = cell
			continue
		}

		parts := []HeaderCellPart{{Text: cell.Label, WidthFraction: fraction, Align: AlignLeft}}
		for j, partner := range partners {
			align := AlignRight
			if len(partners) == 2 && j == 0 {
				align = AlignCenter
			}
			parts = append(parts, HeaderCellPart{
				Text:          c.Label(cell.Timestamp, partner),
				WidthFraction: fraction,
				Align:         align,
			})
		}

		texts := make([]string, len(parts))
		for j, p := range parts {
			texts[j] = p.Text
		}

		cell.Parts = parts
		cell.Label = strings.Join(texts, " ")
		out[i] = cell
	}
	return out
}

// widestMonth returns the widest short month caption of the locale, used
// as the representative sample when estimating combined caption widths.
func (c *Calculator) widestMonth() string {
	widest := "May"
	widestW := 0.0
	for m := time.January; m <= time.December; m++ {
		name := c.locale.MonthShort(m)
		if w := estimateCaptionWidth(name, false); w > widestW {
			widest, widestW = name, w
		}
	}
	return widest
}
