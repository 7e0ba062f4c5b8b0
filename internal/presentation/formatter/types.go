package formatter

import (
	"time"

	"github.com/chronoview/go-timeline-engine/internal/aggregate"
	"github.com/chronoview/go-timeline-engine/internal/core/grid"
	"github.com/chronoview/go-timeline-engine/internal/core/viewport"
)

// ViewSnapshot is the render-ready state of one refresh: the engine's
// viewport and zoom plus the grid artifacts recomputed from them, and
// optionally the aggregated periods of one row. Formatters only read
// it; the commands layer assembles it from a live engine.
type ViewSnapshot struct {
	Timezone       string                       `json:"timezone"`
	ContainerWidth float64                      `json:"containerWidth"`
	Zoom           viewport.ZoomState           `json:"zoom"`
	Viewport       viewport.ViewportState       `json:"viewport"`
	HeaderRows     [][]grid.HeaderCell          `json:"headerRows"`
	GridLines      []grid.GridLine              `json:"gridLines"`
	Periods        []aggregate.AggregatedPeriod `json:"periods,omitempty"`
}

func resolveLocation(timezone string) *time.Location {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func millisToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

