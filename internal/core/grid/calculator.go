package grid

import (
	"time"

	"github.com/chronoview/go-timeline-engine/internal/core/convert"
	"github.com/chronoview/go-timeline-engine/internal/core/timeunit"
	"github.com/chronoview/go-timeline-engine/internal/core/viewport"
)

// DefaultMinSpacing is the minimum on-screen spacing in pixels between two
// consecutive boundaries of a unit for that unit to qualify as visible.
const DefaultMinSpacing = 60.0

// Calculator decides which granularities of the time axis are visible at a
// given zoom and turns them into grid lines and header rows. It is pure
// with respect to engine state; zoom and viewport come in by value.
type Calculator struct {
	minSpacing float64
	locale     *Locale
	loc        *time.Location
}

// NewCalculator builds a calculator. Zero minSpacing, nil locale and nil
// location fall back to the defaults (60px, English, UTC).
func NewCalculator(minSpacing float64, locale *Locale, loc *time.Location) *Calculator {
	if minSpacing <= 0 {
		minSpacing = DefaultMinSpacing
	}
	if locale == nil {
		locale = DefaultLocale()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{minSpacing: minSpacing, locale: locale, loc: loc}
}

// SetLocale swaps the caption table, for live locale reloads. A nil locale
// restores the defaults.
func (c *Calculator) SetLocale(locale *Locale) {
	if locale == nil {
		locale = DefaultLocale()
	}
	c.locale = locale
}

// redundancyTable maps a unit to the coarser units it subsumes once its
// own captions are on screen: a minute caption already prints "HH:MM", so
// hour rows add nothing.
var redundancyTable = map[timeunit.Unit][]timeunit.Unit{
	timeunit.Minute:  {timeunit.QuarterHour, timeunit.HalfHour, timeunit.Hour},
	timeunit.Second:  {timeunit.QuarterMinute, timeunit.HalfMinute},
	timeunit.Hour:    {timeunit.QuarterDay, timeunit.HalfDay},
	timeunit.Decade:  {timeunit.Year},
	timeunit.Century: {timeunit.Decade, timeunit.Year},
}

// VisibleUnits returns the units whose boundary spacing is at least
// minSpacing at this zoom, after legibility gating of decade/century and
// redundancy elision, finest first. At degenerate zoom levels where no
// unit qualifies it falls back to year alone.
func (c *Calculator) VisibleUnits(pixelsPerMs float64) []timeunit.Unit {
	candidates := make(map[timeunit.Unit]bool, len(timeunit.All))
	for _, u := range timeunit.All {
		if float64(u.DurationMs())*pixelsPerMs >= c.minSpacing {
			candidates[u] = true
		}
	}

	// Decade and century are fallbacks for when the finer caption cannot be
	// printed, not regular rows: a decade row appears only if year captions
	// do not fit inside a year cell, a century row only if decade captions
	// do not fit inside a decade cell.
	yearFits := estimateCaptionWidth("2025", true) <= float64(timeunit.Year.DurationMs())*pixelsPerMs
	decadeFits := estimateCaptionWidth("2020s", true) <= float64(timeunit.Decade.DurationMs())*pixelsPerMs
	if candidates[timeunit.Decade] && yearFits {
		delete(candidates, timeunit.Decade)
	}
	if candidates[timeunit.Century] && decadeFits {
		delete(candidates, timeunit.Century)
	}

	// Elision rules are evaluated against the qualifying set, so a chain
	// like minute→hour→quarterday collapses in one pass even though hour
	// itself gets dropped.
	dropped := make(map[timeunit.Unit]bool)
	for finer, subsumed := range redundancyTable {
		if !candidates[finer] {
			continue
		}
		for _, u := range subsumed {
			dropped[u] = true
		}
	}

	visible := make([]timeunit.Unit, 0, len(candidates))
	for _, u := range timeunit.All {
		if candidates[u] && !dropped[u] {
			visible = append(visible, u)
		}
	}
	if len(visible) == 0 {
		visible = []timeunit.Unit{timeunit.Year}
	}
	return visible
}

// GridLines emits one line per visible-unit boundary inside the viewport.
// Level is the index of the unit within the visible set; lines of coarser
// units are primary.
func (c *Calculator) GridLines(zoom viewport.ZoomState, vp viewport.ViewportState) []GridLine {
	units := c.VisibleUnits(zoom.PixelsPerMs)

	var lines []GridLine
	for level, u := range units {
		for b := timeunit.Ceil(vp.Start, u, c.loc); b <= vp.End; b = timeunit.Add(b, 1, u, c.loc) {
			lines = append(lines, GridLine{
				Timestamp: b,
				Position:  convert.TimeToPixel(b, vp, zoom),
				Unit:      u,
				Label:     c.Label(b, u),
				IsPrimary: level > 0,
				Level:     level,
			})
		}
	}
	return lines
}
