package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chronoview/go-timeline-engine/internal/core/viewport"
)

func yearState(t *testing.T) (viewport.ZoomState, viewport.ViewportState) {
	t.Helper()
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	end := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC).UnixMilli()
	vp := viewport.ViewportState{Start: start, End: end}
	zoom := viewport.ZoomState{PixelsPerMs: 1000.0 / float64(end-start), CenterTimestamp: vp.Center()}
	return zoom, vp
}

func TestTimeToPixelAtViewportEdges(t *testing.T) {
	zoom, vp := yearState(t)

	assert.Equal(t, 0.0, TimeToPixel(vp.Start, vp, zoom))
	assert.InDelta(t, 1000.0, TimeToPixel(vp.End, vp, zoom), 1e-9)
}

func TestRoundTripWithinOneMillisecond(t *testing.T) {
	zoom, vp := yearState(t)

	step := vp.SpanMs() / 97 // awkward stride to hit non-aligned values
	for ts := vp.Start; ts <= vp.End; ts += step {
		px := TimeToPixel(ts, vp, zoom)
		back := PixelToTime(px, vp, zoom)
		assert.InDelta(t, float64(ts), float64(back), 1.0, "round-trip at ts=%d", ts)
	}
}

func TestDurationConversion(t *testing.T) {
	zoom := viewport.ZoomState{PixelsPerMs: 0.5}

	assert.Equal(t, 500.0, DurationToPixels(1000, zoom))
	assert.Equal(t, int64(1000), PixelsToDuration(500, zoom))
	assert.Equal(t, int64(0), PixelsToDuration(0, zoom))
}
