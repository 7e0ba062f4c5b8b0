package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWidth = 1000.0

func testState(spanMs int64) (ZoomState, ViewportState) {
	vp := ViewportState{Start: 0, End: spanMs}
	zoom := ZoomState{PixelsPerMs: testWidth / float64(spanMs), CenterTimestamp: vp.Center()}
	return zoom, vp
}

func TestApplyZoomFocalInvariance(t *testing.T) {
	tests := []struct {
		name   string
		delta  float64
		focalX float64
	}{
		{"zoom_in_at_left_edge", 1.2, 0},
		{"zoom_in_at_center", 1.2, testWidth / 2},
		{"zoom_in_at_right_edge", 1.2, testWidth},
		{"zoom_out_at_center", 1 / 1.2, testWidth / 2},
		{"zoom_in_hard", 4.0, 250},
		{"zoom_out_hard", 0.25, 750},
	}

	ctrl := NewZoomController(1e-9, 10)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zoom, vp := testState(3600 * 1000)
			timeUnderFocal := float64(vp.Start) + tt.focalX/zoom.PixelsPerMs

			newZoom, newVp := ctrl.ApplyZoom(zoom, vp, tt.delta, tt.focalX, testWidth)

			timeAfter := float64(newVp.Start) + tt.focalX/newZoom.PixelsPerMs
			assert.InDelta(t, timeUnderFocal, timeAfter, 1.0,
				"timestamp under the focal pixel must not move")
		})
	}
}

func TestApplyZoomMonotonic(t *testing.T) {
	ctrl := NewZoomController(1e-9, 10)
	zoom, vp := testState(3600 * 1000)

	in, _ := ctrl.ApplyZoom(zoom, vp, 1.2, 500, testWidth)
	assert.Greater(t, in.PixelsPerMs, zoom.PixelsPerMs)

	out, _ := ctrl.ApplyZoom(zoom, vp, 1/1.2, 500, testWidth)
	assert.Less(t, out.PixelsPerMs, zoom.PixelsPerMs)
}

func TestApplyZoomSaturatesAtBounds(t *testing.T) {
	ctrl := NewZoomController(1e-6, 1.0)

	zoom := ZoomState{PixelsPerMs: 1.0}
	vp := ViewportState{Start: 0, End: 1000}
	gotZoom, gotVp := ctrl.ApplyZoom(zoom, vp, 2.0, 500, testWidth)
	assert.Equal(t, zoom, gotZoom, "zooming in at maxZoom is a no-op")
	assert.Equal(t, vp, gotVp)

	zoom = ZoomState{PixelsPerMs: 1e-6}
	vp = ViewportState{Start: 0, End: 1000_000_000}
	gotZoom, gotVp = ctrl.ApplyZoom(zoom, vp, 0.5, 500, testWidth)
	assert.Equal(t, zoom, gotZoom, "zooming out at minZoom is a no-op")
	assert.Equal(t, vp, gotVp)
}

func TestApplyZoomClampStillMoves(t *testing.T) {
	// Asking for 10x while only 2x of headroom remains should land
	// exactly on the bound, not refuse the gesture.
	ctrl := NewZoomController(1e-6, 1.0)
	zoom := ZoomState{PixelsPerMs: 0.5}
	vp := ViewportState{Start: 0, End: 2000}

	gotZoom, _ := ctrl.ApplyZoom(zoom, vp, 10, 500, testWidth)
	assert.Equal(t, 1.0, gotZoom.PixelsPerMs)
}

func TestZoomToFit(t *testing.T) {
	ctrl := NewZoomController(1e-9, 10)
	start := int64(0)
	end := int64(86400 * 1000)

	zoom, vp := ctrl.ZoomToFit(start, end, testWidth)
	require.Greater(t, zoom.PixelsPerMs, 0.0)
	assert.InDelta(t, testWidth/float64(end-start), zoom.PixelsPerMs, 1e-12)
	assert.Equal(t, (start+end)/2, zoom.CenterTimestamp)
	assert.InDelta(t, float64(end-start), float64(vp.SpanMs()), 1.0)
}

func TestZoomToFitClampedIsBestEffort(t *testing.T) {
	// A century-wide range with a restrictive minZoom: the fit centers on
	// the midpoint but shows less than the requested range.
	ctrl := NewZoomController(1e-3, 1.0)
	start := int64(0)
	end := int64(100 * 365 * 86400 * 1000)

	zoom, vp := ctrl.ZoomToFit(start, end, testWidth)
	assert.Equal(t, 1e-3, zoom.PixelsPerMs)
	assert.Less(t, vp.SpanMs(), end-start)
	assert.InDelta(t, float64((start+end)/2), float64(vp.Center()), float64(vp.SpanMs())/100)
}

func TestUpdateContainerWidthPreservesCenter(t *testing.T) {
	ctrl := NewZoomController(1e-9, 10)
	zoom, vp := testState(3600 * 1000)
	center := vp.Center()

	newZoom, newVp := ctrl.UpdateContainerWidth(zoom, vp, 500)
	assert.Equal(t, zoom.PixelsPerMs, newZoom.PixelsPerMs, "resize keeps the zoom")
	assert.InDelta(t, float64(center), float64(newVp.Center()), 1.0)
	assert.InDelta(t, 500/zoom.PixelsPerMs, float64(newVp.SpanMs()), 1.0)
}

func TestClampDefaults(t *testing.T) {
	ctrl := NewZoomController(0, 0)
	assert.Equal(t, DefaultMinZoom, ctrl.MinZoom())
	assert.Equal(t, DefaultMaxZoom, ctrl.MaxZoom())
	assert.Equal(t, DefaultMaxZoom, ctrl.Clamp(math.Inf(1)))
	assert.Equal(t, DefaultMinZoom, ctrl.Clamp(0))
}
