package timeunit

import "time"

// Calendar-exact boundary math. Timestamps are Unix milliseconds; the
// location decides where day and coarser boundaries fall. Weeks are ISO
// weeks and start on Monday.

// Floor returns the latest boundary of the unit that is <= ts.
func Floor(ts int64, u Unit, loc *time.Location) int64 {
	if loc == nil {
		loc = time.UTC
	}

	switch u {
	case Millisecond:
		return ts
	case Second:
		return floorMs(ts, msPerSecond)
	case QuarterMinute:
		return floorMs(ts, 15*msPerSecond)
	case HalfMinute:
		return floorMs(ts, 30*msPerSecond)
	case Minute:
		return floorMs(ts, msPerMinute)
	case QuarterHour:
		return floorMs(ts, 15*msPerMinute)
	case HalfHour:
		return floorMs(ts, 30*msPerMinute)
	}

	t := time.UnixMilli(ts).In(loc)
	year, month, day := t.Date()

	switch u {
	case Hour:
		return time.Date(year, month, day, t.Hour(), 0, 0, 0, loc).UnixMilli()
	case QuarterDay:
		return time.Date(year, month, day, t.Hour()-t.Hour()%6, 0, 0, 0, loc).UnixMilli()
	case HalfDay:
		return time.Date(year, month, day, t.Hour()-t.Hour()%12, 0, 0, 0, loc).UnixMilli()
	case Day:
		return time.Date(year, month, day, 0, 0, 0, 0, loc).UnixMilli()
	case Week:
		// Monday start; Go's Weekday has Sunday == 0.
		back := (int(t.Weekday()) + 6) % 7
		return time.Date(year, month, day-back, 0, 0, 0, 0, loc).UnixMilli()
	case Month:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc).UnixMilli()
	case Year:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc).UnixMilli()
	case Decade:
		return time.Date(year-mod(year, 10), time.January, 1, 0, 0, 0, 0, loc).UnixMilli()
	case Century:
		return time.Date(year-mod(year, 100), time.January, 1, 0, 0, 0, 0, loc).UnixMilli()
	}
	return ts
}

// Add advances ts by n units. Sub-day units advance by fixed durations;
// day and coarser follow the calendar, so stepping from one boundary
// always lands on the next boundary even across DST shifts, month length
// changes and leap years.
func Add(ts int64, n int, u Unit, loc *time.Location) int64 {
	if loc == nil {
		loc = time.UTC
	}

	switch u {
	case Millisecond, Second, QuarterMinute, HalfMinute, Minute, QuarterHour, HalfHour, Hour, QuarterDay, HalfDay:
		return ts + int64(n)*u.DurationMs()
	}

	t := time.UnixMilli(ts).In(loc)
	switch u {
	case Day:
		return t.AddDate(0, 0, n).UnixMilli()
	case Week:
		return t.AddDate(0, 0, 7*n).UnixMilli()
	case Month:
		return t.AddDate(0, n, 0).UnixMilli()
	case Year:
		return t.AddDate(n, 0, 0).UnixMilli()
	case Decade:
		return t.AddDate(10*n, 0, 0).UnixMilli()
	case Century:
		return t.AddDate(100*n, 0, 0).UnixMilli()
	}
	return ts
}

// Ceil returns the earliest boundary of the unit that is >= ts.
func Ceil(ts int64, u Unit, loc *time.Location) int64 {
	floored := Floor(ts, u, loc)
	if floored == ts {
		return ts
	}
	return Add(floored, 1, u, loc)
}

func floorMs(ts, step int64) int64 {
	r := ts % step
	if r < 0 {
		r += step
	}
	return ts - r
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
