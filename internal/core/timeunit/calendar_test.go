package timeunit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMs(t *testing.T, value string) int64 {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts.UnixMilli()
}

func TestFloorCalendarBoundaries(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		in   string
		want string
	}{
		{"second", Second, "2025-03-14T09:26:53.589Z", "2025-03-14T09:26:53Z"},
		{"quarterminute", QuarterMinute, "2025-03-14T09:26:53Z", "2025-03-14T09:26:45Z"},
		{"halfminute", HalfMinute, "2025-03-14T09:26:53Z", "2025-03-14T09:26:30Z"},
		{"minute", Minute, "2025-03-14T09:26:53Z", "2025-03-14T09:26:00Z"},
		{"quarterhour", QuarterHour, "2025-03-14T09:26:53Z", "2025-03-14T09:15:00Z"},
		{"halfhour", HalfHour, "2025-03-14T09:26:53Z", "2025-03-14T09:00:00Z"},
		{"hour", Hour, "2025-03-14T09:26:53Z", "2025-03-14T09:00:00Z"},
		{"quarterday", QuarterDay, "2025-03-14T09:26:53Z", "2025-03-14T06:00:00Z"},
		{"halfday", HalfDay, "2025-03-14T09:26:53Z", "2025-03-14T00:00:00Z"},
		{"day", Day, "2025-03-14T09:26:53Z", "2025-03-14T00:00:00Z"},
		{"month", Month, "2025-03-14T09:26:53Z", "2025-03-01T00:00:00Z"},
		{"year", Year, "2025-03-14T09:26:53Z", "2025-01-01T00:00:00Z"},
		{"decade", Decade, "2025-03-14T09:26:53Z", "2020-01-01T00:00:00Z"},
		{"century", Century, "2025-03-14T09:26:53Z", "2000-01-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Floor(mustMs(t, tt.in), tt.unit, time.UTC)
			assert.Equal(t, mustMs(t, tt.want), got)
		})
	}
}

func TestFloorWeekStartsMonday(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		// 2025-03-14 is a Friday; the ISO week begins Monday 2025-03-10.
		{"friday", "2025-03-14T09:26:53Z", "2025-03-10T00:00:00Z"},
		{"monday_is_fixed_point", "2025-03-10T00:00:00Z", "2025-03-10T00:00:00Z"},
		{"sunday_goes_back_six_days", "2025-03-16T23:59:59Z", "2025-03-10T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Floor(mustMs(t, tt.in), Week, time.UTC)
			assert.Equal(t, mustMs(t, tt.want), got)
		})
	}
}

func TestAddCalendarExact(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		n    int
		in   string
		want string
	}{
		{"month_length_varies", Month, 1, "2025-01-01T00:00:00Z", "2025-02-01T00:00:00Z"},
		{"february_is_short", Month, 1, "2025-02-01T00:00:00Z", "2025-03-01T00:00:00Z"},
		{"leap_year", Year, 1, "2024-01-01T00:00:00Z", "2025-01-01T00:00:00Z"},
		{"week_is_seven_days", Week, 1, "2025-03-10T00:00:00Z", "2025-03-17T00:00:00Z"},
		{"decade", Decade, 1, "2020-01-01T00:00:00Z", "2030-01-01T00:00:00Z"},
		{"century", Century, 1, "2000-01-01T00:00:00Z", "2100-01-01T00:00:00Z"},
		{"hour_is_fixed_duration", Hour, 3, "2025-03-14T09:00:00Z", "2025-03-14T12:00:00Z"},
		{"negative_step", Day, -1, "2025-03-01T00:00:00Z", "2025-02-28T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Add(mustMs(t, tt.in), tt.n, tt.unit, time.UTC)
			assert.Equal(t, mustMs(t, tt.want), got)
		})
	}
}

func TestCeil(t *testing.T) {
	boundary := mustMs(t, "2025-03-01T00:00:00Z")
	assert.Equal(t, boundary, Ceil(boundary, Month, time.UTC), "a boundary is its own ceiling")

	inside := mustMs(t, "2025-03-14T12:00:00Z")
	assert.Equal(t, mustMs(t, "2025-04-01T00:00:00Z"), Ceil(inside, Month, time.UTC))
}

func TestAddAcrossDSTKeepsDayBoundary(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST starts 2025-03-09 in New York; the day is only 23 hours long.
	start := time.Date(2025, time.March, 9, 0, 0, 0, 0, loc).UnixMilli()
	next := Add(start, 1, Day, loc)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, loc).UnixMilli(), next)
	assert.Equal(t, next, Floor(next, Day, loc), "stepping lands on a day boundary")
}

func TestUnitOrderingAndNames(t *testing.T) {
	assert.Len(t, All, 16)
	for i := 1; i < len(All); i++ {
		assert.Greater(t, All[i].DurationMs(), All[i-1].DurationMs(),
			"%s should be coarser than %s", All[i], All[i-1])
	}
	assert.Equal(t, "quarterhour", QuarterHour.String())
	assert.Equal(t, "century", Century.String())
}
