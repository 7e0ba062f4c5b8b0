package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoview/go-timeline-engine/internal/aggregate"
	"github.com/chronoview/go-timeline-engine/internal/config"
	"github.com/chronoview/go-timeline-engine/internal/core/engine"
	"github.com/chronoview/go-timeline-engine/internal/core/grid"
)

func resetFlags() {
	startStr, endStr, spanStr = "", "", "1w"
	itemsFile = ""
	forceAggregate = false
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "date only", input: "2025-03-14", want: time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)},
		{name: "date and time", input: "2025-03-14 09:26:53", want: time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)},
		{name: "rfc3339", input: "2025-03-14T09:26:53Z", want: time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTime(tt.input, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.want.UnixMilli(), got)
		})
	}

	_, err := parseTime("14/03/2025", time.UTC)
	assert.Error(t, err)
}

func TestResolveRange(t *testing.T) {
	defer resetFlags()
	now := func() time.Time {
		return time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
	}

	t.Run("explicit range", func(t *testing.T) {
		startStr, endStr, spanStr = "2025-03-01", "2025-03-15", "1w"
		start, end, err := resolveRange(time.UTC, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), start)
		assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC).UnixMilli(), end)
	})

	t.Run("start plus span", func(t *testing.T) {
		startStr, endStr, spanStr = "2025-03-01", "", "2w"
		start, end, err := resolveRange(time.UTC, now)
		require.NoError(t, err)
		assert.Equal(t, int64(14)*24*60*60*1000, end-start)
	})

	t.Run("default centers on now", func(t *testing.T) {
		startStr, endStr, spanStr = "", "", "1d"
		start, end, err := resolveRange(time.UTC, now)
		require.NoError(t, err)
		assert.Equal(t, now().UnixMilli(), (start+end)/2)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		startStr, endStr, spanStr = "2025-03-15", "2025-03-01", "1w"
		_, _, err := resolveRange(time.UTC, now)
		assert.Error(t, err)
	})

	t.Run("bad span rejected", func(t *testing.T) {
		startStr, endStr, spanStr = "", "", "eventually"
		_, _, err := resolveRange(time.UTC, now)
		assert.Error(t, err)
	})
}

func TestBuildSnapshotAggregationGate(t *testing.T) {
	defer resetFlags()

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	end := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	eng := engine.New(start, end, 1000, engine.Config{MinZoom: 1e-10, MaxZoom: 10})

	cfg := config.Default()
	cfg.Aggregation.ViewportThreshold = "1m"
	cfg.Aggregation.MinItemCount = 1

	env := &environment{
		cfg:          cfg,
		locale:       grid.DefaultLocale(),
		location:     time.UTC,
		timezoneName: "UTC",
		items: []aggregate.Item{
			{ID: "a", Type: "booking", StartTime: start, EndTime: start + 86400000},
			{ID: "b", Type: "booking", StartTime: start, EndTime: start + 86400000},
		},
	}

	snap := buildSnapshot(eng, env)
	assert.NotEmpty(t, snap.Periods, "three months and two items trip the thresholds")
	assert.NotEmpty(t, snap.HeaderRows)
	assert.NotEmpty(t, snap.GridLines)

	// Raising the item floor closes the gate.
	cfg.Aggregation.MinItemCount = 10
	snap = buildSnapshot(eng, env)
	assert.Empty(t, snap.Periods)

	// Unless aggregation is forced.
	forceAggregate = true
	snap = buildSnapshot(eng, env)
	assert.NotEmpty(t, snap.Periods)
}
