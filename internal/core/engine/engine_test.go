package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoview/go-timeline-engine/internal/core/timeunit"
)

func msOf(t *testing.T, value string) int64 {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts.UnixMilli()
}

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time { return c.current }

func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func newTestEngine(t *testing.T, start, end string) (*Engine, *ManualScheduler, *fakeClock) {
	t.Helper()
	clock := &fakeClock{current: time.Unix(1_700_000_000, 0)}
	sched := NewManualScheduler()
	e := New(msOf(t, start), msOf(t, end), 1000, Config{
		MinZoom:   1e-10,
		MaxZoom:   10,
		Scheduler: sched,
		Now:       clock.Now,
	})
	return e, sched, clock
}

func TestNewEngineInitialState(t *testing.T) {
	e, _, _ := newTestEngine(t, "2025-01-01T00:00:00Z", "2025-12-31T00:00:00Z")

	span := msOf(t, "2025-12-31T00:00:00Z") - msOf(t, "2025-01-01T00:00:00Z")
	assert.InDelta(t, 1000.0/float64(span), e.GetZoomState().PixelsPerMs, 1e-12)
	assert.Equal(t, 0.0, e.TimeToPixel(e.GetViewportState().Start))
	assert.InDelta(t, float64(span), float64(e.GetViewportState().SpanMs()), 1.0)
}

func TestNewEngineClampedShowsPartialRange(t *testing.T) {
	clock := &fakeClock{current: time.Unix(0, 0)}
	e := New(0, 100*365*24*3600*1000, 1000, Config{
		MinZoom:   1e-6,
		MaxZoom:   1,
		Scheduler: NewManualScheduler(),
		Now:       clock.Now,
	})

	assert.Equal(t, 1e-6, e.GetZoomState().PixelsPerMs, "fit below minZoom clamps")
	assert.Less(t, e.GetViewportState().SpanMs(), int64(100*365*24*3600*1000))
}

func TestEngineZoomCommitsState(t *testing.T) {
	e, _, _ := newTestEngine(t, "2025-01-01T00:00:00Z", "2025-12-31T00:00:00Z")
	before := e.GetZoomState()

	zoom, vp := e.Zoom(1.2, 500)
	assert.Greater(t, zoom.PixelsPerMs, before.PixelsPerMs)
	assert.Equal(t, zoom, e.GetZoomState(), "result is committed")
	assert.Equal(t, vp, e.GetViewportState())
}

func TestEngineRoundTrip(t *testing.T) {
	e, _, _ := newTestEngine(t, "2025-01-01T00:00:00Z", "2025-12-31T00:00:00Z")

	vp := e.GetViewportState()
	for _, ts := range []int64{vp.Start, vp.Center(), vp.End} {
		assert.InDelta(t, float64(ts), float64(e.PixelToTime(e.TimeToPixel(ts))), 1.0)
	}
}

func TestEngineScrollToRangeReportsMovement(t *testing.T) {
	e, _, _ := newTestEngine(t, "2025-01-01T00:00:00Z", "2025-12-31T00:00:00Z")
	vp := e.GetViewportState()

	assert.False(t, e.ScrollToRange(vp.Start+1000, vp.Start+2000), "visible range is a no-op")
	assert.True(t, e.ScrollToRange(vp.End+1000, vp.End+2000))
}

func TestZoomToRangeInvalidInputIsNoOp(t *testing.T) {
	e, _, _ := newTestEngine(t, "2025-01-01T00:00:00Z", "2025-12-31T00:00:00Z")
	zoom, vp := e.GetZoomState(), e.GetViewportState()

	gotZoom, gotVp := e.ZoomToRange(5000, 5000)
	assert.Equal(t, zoom, gotZoom)
	assert.Equal(t, vp, gotVp)

	gotZoom, gotVp = e.ZoomToRange(5000, 4000)
	assert.Equal(t, zoom, gotZoom)
	assert.Equal(t, vp, gotVp)
}

func TestUpdateContainerWidthKeepsCenter(t *testing.T) {
	e, _, _ := newTestEngine(t, "2025-01-01T00:00:00Z", "2025-12-31T00:00:00Z")
	center := e.GetViewportState().Center()

	e.UpdateContainerWidth(500)
	assert.Equal(t, 500.0, e.ContainerWidth())
	assert.InDelta(t, float64(center), float64(e.GetViewportState().Center()), 1.0)

	e.UpdateContainerWidth(0)
	assert.Equal(t, 500.0, e.ContainerWidth(), "non-positive width is ignored")
}

func TestAnimateToRangeCompletes(t *testing.T) {
	e, sched, clock := newTestEngine(t, "2025-01-01T00:00:00Z", "2025-12-31T00:00:00Z")

	targetStart := msOf(t, "2025-06-01T00:00:00Z")
	targetEnd := msOf(t, "2025-07-01T00:00:00Z")

	frames := 0
	done := e.AnimateToRange(targetStart, targetEnd, time.Second, func() { frames++ })

	for i := 0; i < 10; i++ {
		clock.advance(100 * time.Millisecond)
		require.True(t, sched.Step(), "a frame should be pending")
	}

	select {
	case <-done:
	default:
		t.Fatal("animation should have completed at progress >= 1")
	}

	assert.Equal(t, 10, frames)
	assert.Equal(t, 0, sched.Pending(), "no frame outlives completion")

	vp := e.GetViewportState()
	assert.InDelta(t, float64(targetStart), float64(vp.Start), 2.0)
	assert.InDelta(t, float64(targetEnd), float64(vp.End), 2.0)
}

func TestAnimateToRangeMidpointIsEased(t *testing.T) {
	e, sched, clock := newTestEngine(t, "2025-01-01T00:00:00Z", "2025-12-31T00:00:00Z")
	fromStart := e.GetViewportState().Start

	targetStart := msOf(t, "2025-06-01T00:00:00Z")
	targetEnd := msOf(t, "2025-07-01T00:00:00Z")
	e.AnimateToRange(targetStart, targetEnd, time.Second, nil)

	// At t=0.25 the ease-in-out curve gives 2*0.25^2 = 0.125.
	clock.advance(250 * time.Millisecond)
	require.True(t, sched.Step())

	wantStart := fromStart + int64(0.125*float64(targetStart-fromStart))
	assert.InDelta(t, float64(wantStart), float64(e.GetViewportState().Start), 2.0)
}

func TestAnimateToRangeLastWriterWins(t *testing.T) {
	e, sched, clock := newTestEngine(t, "2025-01-01T00:00:00Z", "2025-12-31T00:00:00Z")

	first := e.AnimateToRange(msOf(t, "2025-06-01T00:00:00Z"), msOf(t, "2025-07-01T00:00:00Z"), time.Second, nil)
	clock.advance(100 * time.Millisecond)
	require.True(t, sched.Step())

	second := e.AnimateToRange(msOf(t, "2025-02-01T00:00:00Z"), msOf(t, "2025-03-01T00:00:00Z"), time.Second, nil)

	select {
	case <-first:
	default:
		t.Fatal("preempted animation must complete immediately")
	}
	assert.Equal(t, 1, sched.Pending(), "only the new animation has a pending frame")

	for sched.Step() {
		clock.advance(200 * time.Millisecond)
	}
	select {
	case <-second:
	default:
		t.Fatal("second animation should run to completion")
	}
	assert.InDelta(t, float64(msOf(t, "2025-02-01T00:00:00Z")), float64(e.GetViewportState().Start), 2.0)
}

func TestAnimateToRangeInvalidInputCompletesImmediately(t *testing.T) {
	e, sched, _ := newTestEngine(t, "2025-01-01T00:00:00Z", "2025-12-31T00:00:00Z")
	vp := e.GetViewportState()

	done := e.AnimateToRange(100, 100, time.Second, nil)
	select {
	case <-done:
	default:
		t.Fatal("invalid input should complete the signal immediately")
	}
	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, vp, e.GetViewportState(), "state untouched")
}

func TestNavigateForwardStepsOneUnit(t *testing.T) {
	e, sched, clock := newTestEngine(t, "2025-03-01T00:00:00Z", "2025-03-15T00:00:00Z")
	require.Equal(t, timeunit.Day, e.FinestVisibleUnit())

	fromStart := e.GetViewportState().Start
	done := e.NavigateForward(nil)

	for sched.Step() {
		clock.advance(100 * time.Millisecond)
	}
	select {
	case <-done:
	default:
		t.Fatal("navigate should complete")
	}

	assert.InDelta(t, float64(fromStart+24*3600*1000), float64(e.GetViewportState().Start), 2.0)
}

func TestNavigateBackwardStepsOneUnit(t *testing.T) {
	e, sched, clock := newTestEngine(t, "2025-03-02T00:00:00Z", "2025-03-16T00:00:00Z")
	require.Equal(t, timeunit.Day, e.FinestVisibleUnit())

	fromStart := e.GetViewportState().Start
	e.NavigateBackward(nil)

	for sched.Step() {
		clock.advance(100 * time.Millisecond)
	}

	assert.InDelta(t, float64(fromStart-24*3600*1000), float64(e.GetViewportState().Start), 2.0)
}

func TestHeaderAndGridDelegation(t *testing.T) {
	e, _, _ := newTestEngine(t, "2025-01-01T00:00:00Z", "2025-12-31T00:00:00Z")

	rows := e.GetHeaderCells()
	require.NotEmpty(t, rows)
	lines := e.GetVisibleGridLines()
	require.NotEmpty(t, lines)

	for _, line := range lines {
		assert.GreaterOrEqual(t, line.Position, 0.0)
		assert.LessOrEqual(t, line.Position, 1000.0+1e-6)
	}
}
