// Package display renders snapshots into a terminal: a scaled text
// picture of the time axis for the interactive view, drawn on the
// alternate screen buffer with line-level differential updates.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/chronoview/go-timeline-engine/internal/core/grid"
	"github.com/chronoview/go-timeline-engine/internal/presentation/formatter"
	playout "github.com/chronoview/go-timeline-engine/internal/presentation/layout"
	"github.com/chronoview/go-timeline-engine/internal/util"
)

// TerminalDisplay owns the alternate screen buffer and repaints only
// the lines that changed since the previous frame.
type TerminalDisplay struct {
	inAlternateScreen bool
	isFirstRender     bool
	previousScreen    []string
	sizer             playout.Sizer
}

func NewTerminalDisplay() *TerminalDisplay {
	return &TerminalDisplay{
		isFirstRender:  true,
		previousScreen: make([]string, 0),
	}
}

// EnterAlternateScreen switches to the alternate screen buffer.
func (td *TerminalDisplay) EnterAlternateScreen() {
	if td.inAlternateScreen {
		return
	}
	fmt.Print(util.AlternateScreen)
	fmt.Print(util.ClearScreen)
	fmt.Print(util.ClearScrollback)
	fmt.Print(util.ResetScrollRegion)
	fmt.Print(util.HideCursor)
	fmt.Print(util.MoveCursorHome)
	td.inAlternateScreen = true
	td.isFirstRender = true
}

// ExitAlternateScreen returns to the normal screen buffer.
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	fmt.Print(util.ClearScreen)
	fmt.Print(util.MoveCursorHome)
	fmt.Print(util.ShowCursor)
	fmt.Print(util.NormalScreen)
	td.inAlternateScreen = false
}

// Render paints a snapshot. Unchanged lines are skipped after the
// first frame so animations do not flicker.
func (td *TerminalDisplay) Render(snap *formatter.ViewSnapshot) {
	width, height := td.sizer.TerminalSize()
	lines := RenderSnapshot(snap, width, playout.SelectStyle(width, height))
	td.renderLines(lines)
}

func (td *TerminalDisplay) renderLines(lines []string) {
	if td.isFirstRender {
		fmt.Print(util.ClearScreen)
		td.isFirstRender = false
		td.previousScreen = nil
	}
	fmt.Print(util.MoveCursorHome)

	for i, line := range lines {
		if i < len(td.previousScreen) && td.previousScreen[i] == line {
			fmt.Print("\n")
			continue
		}
		fmt.Print(util.ClearLine)
		fmt.Println(line)
	}
	// Blank out lines left over from a taller previous frame.
	for i := len(lines); i < len(td.previousScreen); i++ {
		fmt.Print(util.ClearLine)
		fmt.Println()
	}
	td.previousScreen = lines
}

// RenderSnapshot draws the time axis as text lines scaled to the
// terminal width: one band per header row, a tick ruler, an occupancy
// band when periods are present, and a status line.
func RenderSnapshot(snap *formatter.ViewSnapshot, cols int, style playout.Style) []string {
	if cols < 20 {
		cols = 20
	}
	scale := float64(cols) / snap.ContainerWidth

	var lines []string

	headerRows := snap.HeaderRows
	if style == playout.StyleCompact && len(headerRows) > 1 {
		headerRows = headerRows[:1]
	}
	for _, row := range headerRows {
		lines = append(lines, renderHeaderBand(row, cols, scale))
	}
	lines = append(lines, renderRuler(snap, cols, scale))
	if len(snap.Periods) > 0 {
		lines = append(lines, renderOccupancyBand(snap, cols, scale))
	}
	lines = append(lines, renderStatus(snap, cols))
	return lines
}

func renderHeaderBand(row []grid.HeaderCell, cols int, scale float64) string {
	var b strings.Builder
	var sizer playout.Sizer
	used := 0
	for _, cell := range row {
		endCol := int((cell.Position + cell.Width) * scale)
		if endCol > cols {
			endCol = cols
		}
		cellCols := endCol - used
		if cellCols < 1 {
			continue
		}

		caption := cell.Label
		if len(cell.Parts) > 0 {
			texts := make([]string, len(cell.Parts))
			for i, p := range cell.Parts {
				texts[i] = p.Text
			}
			caption = strings.Join(texts, " ")
		}

		b.WriteString("│")
		b.WriteString(sizer.PadString(util.CenterText(caption, cellCols-1), cellCols-1, true))
		used = endCol
	}
	return b.String()
}

func renderRuler(snap *formatter.ViewSnapshot, cols int, scale float64) string {
	ruler := make([]rune, cols)
	for i := range ruler {
		ruler[i] = '─'
	}
	for _, line := range snap.GridLines {
		col := int(line.Position * scale)
		if col < 0 || col >= cols {
			continue
		}
		if line.IsPrimary {
			ruler[col] = '┼'
		} else {
			ruler[col] = '┴'
		}
	}
	return string(ruler)
}

// renderOccupancyBand shades each aggregated period by its occupancy.
func renderOccupancyBand(snap *formatter.ViewSnapshot, cols int, scale float64) string {
	band := make([]rune, cols)
	for i := range band {
		band[i] = ' '
	}

	pixelsPerMs := snap.Zoom.PixelsPerMs
	for _, p := range snap.Periods {
		startCol := int(float64(p.Start-snap.Viewport.Start) * pixelsPerMs * scale)
		endCol := int(float64(p.End-snap.Viewport.Start) * pixelsPerMs * scale)
		if startCol < 0 {
			startCol = 0
		}
		if endCol > cols {
			endCol = cols
		}
		shade := occupancyShade(p.OccupancyPercent)
		for i := startCol; i < endCol; i++ {
			band[i] = shade
		}
	}
	return string(band)
}

func occupancyShade(percent float64) rune {
	switch {
	case percent >= 75:
		return '█'
	case percent >= 50:
		return '▓'
	case percent >= 25:
		return '▒'
	case percent > 0:
		return '░'
	}
	return ' '
}

func renderStatus(snap *formatter.ViewSnapshot, cols int) string {
	var sizer playout.Sizer
	loc := resolveStatusLocation(snap.Timezone)
	status := fmt.Sprintf("%s .. %s │ zoom %.3g px/ms │ ←/→ scroll  +/- zoom  n/p step  f fit  q quit",
		util.FormatTimestamp(snap.Viewport.Start, loc),
		util.FormatTimestamp(snap.Viewport.End, loc),
		snap.Zoom.PixelsPerMs)
	return sizer.TruncateString(status, cols)
}

func resolveStatusLocation(timezone string) *time.Location {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
