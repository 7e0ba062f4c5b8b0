// Package aggregate buckets timeline items into calendar periods and
// computes occupancy against an availability rule set. It is the
// zoomed-out counterpart to per-item layout: once a row holds too many
// items for the visible span, callers render period summaries instead.
// All functions are pure with respect to their inputs.
package aggregate

import (
	"time"

	"github.com/chronoview/go-timeline-engine/internal/core/timeunit"
)

// Granularity selects the bucket size for period aggregation.
type Granularity string

const (
	GranularityWeek    Granularity = "week"
	GranularityMonth   Granularity = "month"
	GranularityDynamic Granularity = "dynamic"
)

// twelveMonthsMs is the dynamic-granularity pivot: viewports at or
// under a nominal year aggregate by week, anything wider by month.
const twelveMonthsMs = 365 * 24 * 60 * 60 * 1000

// defaultSampleStepMs is the availability sampling resolution.
const defaultSampleStepMs = int64(time.Hour / time.Millisecond)

// Item is one aggregatable timeline entry. Type feeds the per-type
// breakdown of each period.
type Item struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime"`
}

// TypeBreakdown accumulates one item type inside one period.
type TypeBreakdown struct {
	DurationMs int64   `json:"durationMs"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AggregatedPeriod is one calendar bucket clipped to the viewport.
// OccupancyPercent is clamped to [0,100]: items are allowed to overlap
// each other, so summed occupied time can exceed available time.
type AggregatedPeriod struct {
	Start            int64                    `json:"start"`
	End              int64                    `json:"end"`
	TotalAvailableMs int64                    `json:"totalAvailableMs"`
	TotalOccupiedMs  int64                    `json:"totalOccupiedMs"`
	OccupancyPercent float64                  `json:"occupancyPercent"`
	ByType           map[string]TypeBreakdown `json:"byType"`
}

// Config carries the thresholds that gate the aggregated view.
type Config struct {
	// ViewportThresholdMs is the minimum viewport span before
	// aggregation kicks in.
	ViewportThresholdMs int64
	// MinItemCount is the item count a row must exceed.
	MinItemCount int
}

// ShouldUseAggregatedView reports whether a row should render period
// summaries instead of individual items. Both gates must trip: a wide
// viewport alone is fine if the row is sparse, and a dense row is fine
// if the user is zoomed in close enough to see the items.
func ShouldUseAggregatedView(viewportSpanMs int64, itemCount int, cfg Config) bool {
	return viewportSpanMs > cfg.ViewportThresholdMs && itemCount > cfg.MinItemCount
}

// ResolveGranularity collapses dynamic to a concrete bucket size for
// the given viewport span.
func ResolveGranularity(g Granularity, viewportSpanMs int64) Granularity {
	if g != GranularityDynamic {
		return g
	}
	if viewportSpanMs <= twelveMonthsMs {
		return GranularityWeek
	}
	return GranularityMonth
}

// Aggregator computes period summaries for one timezone and one
// availability rule set.
type Aggregator struct {
	loc          *time.Location
	availability *AvailabilityConfig
	sampleStepMs int64
}

// NewAggregator builds an aggregator. A nil location means UTC and a
// nil availability config means every instant is available.
func NewAggregator(loc *time.Location, availability *AvailabilityConfig) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{
		loc:          loc,
		availability: availability,
		sampleStepMs: defaultSampleStepMs,
	}
}

// SetSampleStep overrides the availability sampling resolution.
// Non-positive steps are ignored.
func (a *Aggregator) SetSampleStep(stepMs int64) {
	if stepMs > 0 {
		a.sampleStepMs = stepMs
	}
}

// AggregatePeriods walks calendar-exact week or month boundaries across
// the viewport, clips the first and last period to the viewport edges,
// and summarizes the items falling into each period. Periods are
// returned in chronological order; an empty or inverted viewport yields
// nil.
func (a *Aggregator) AggregatePeriods(items []Item, viewportStart, viewportEnd int64, granularity Granularity) []AggregatedPeriod {
	if viewportEnd <= viewportStart {
		return nil
	}

	unit := timeunit.Week
	if ResolveGranularity(granularity, viewportEnd-viewportStart) == GranularityMonth {
		unit = timeunit.Month
	}

	var periods []AggregatedPeriod
	cursor := timeunit.Floor(viewportStart, unit, a.loc)
	for cursor < viewportEnd {
		next := timeunit.Add(cursor, 1, unit, a.loc)
		start := maxInt64(cursor, viewportStart)
		end := minInt64(next, viewportEnd)
		if end > start {
			periods = append(periods, a.summarize(items, start, end))
		}
		cursor = next
	}
	return periods
}

func (a *Aggregator) summarize(items []Item, start, end int64) AggregatedPeriod {
	period := AggregatedPeriod{
		Start:  start,
		End:    end,
		ByType: make(map[string]TypeBreakdown),
	}

	for _, item := range items {
		overlap := minInt64(item.EndTime, end) - maxInt64(item.StartTime, start)
		if overlap <= 0 {
			continue
		}
		period.TotalOccupiedMs += overlap
		bt := period.ByType[item.Type]
		bt.DurationMs += overlap
		bt.Count++
		period.ByType[item.Type] = bt
	}

	period.TotalAvailableMs = a.availableWithin(start, end)

	if period.TotalAvailableMs > 0 {
		pct := float64(period.TotalOccupiedMs) / float64(period.TotalAvailableMs) * 100
		if pct > 100 {
			pct = 100
		}
		period.OccupancyPercent = pct
	}

	if period.TotalOccupiedMs > 0 {
		for typ, bt := range period.ByType {
			bt.Percentage = float64(bt.DurationMs) / float64(period.TotalOccupiedMs) * 100
			period.ByType[typ] = bt
		}
	}
	return period
}

// availableWithin samples the period at the configured step and sums
// the durations of available samples. The final sample is truncated to
// the period end so partial periods measure correctly.
func (a *Aggregator) availableWithin(start, end int64) int64 {
	var available int64
	for ts := start; ts < end; ts += a.sampleStepMs {
		step := minInt64(a.sampleStepMs, end-ts)
		if a.availability.IsAvailable(ts, a.loc) {
			available += step
		}
	}
	return available
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
