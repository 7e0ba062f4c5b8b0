package timeunit

// Unit is one granularity of the time axis, ordered from finest to coarsest.
// The ordering is load-bearing: redundancy elision in the grid calculator
// drops a coarser unit once a finer one that subsumes it is visible.
type Unit int

const (
	Millisecond Unit = iota
	Second
	QuarterMinute
	HalfMinute
	Minute
	QuarterHour
	HalfHour
	Hour
	QuarterDay
	HalfDay
	Day
	Week
	Month
	Year
	Decade
	Century
)

// All lists every unit in ascending (finest-first) order.
var All = []Unit{
	Millisecond, Second, QuarterMinute, HalfMinute, Minute,
	QuarterHour, HalfHour, Hour, QuarterDay, HalfDay,
	Day, Week, Month, Year, Decade, Century,
}

var unitNames = map[Unit]string{
	Millisecond:   "millisecond",
	Second:        "second",
	QuarterMinute: "quarterminute",
	HalfMinute:    "halfminute",
	Minute:        "minute",
	QuarterHour:   "quarterhour",
	HalfHour:      "halfhour",
	Hour:          "hour",
	QuarterDay:    "quarterday",
	HalfDay:       "halfday",
	Day:           "day",
	Week:          "week",
	Month:         "month",
	Year:          "year",
	Decade:        "decade",
	Century:       "century",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "unknown"
}

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// durationMs holds the nominal duration of each unit in milliseconds.
// Calendar units (month and coarser) are approximations used only for
// on-screen spacing estimates; boundary walking is calendar-exact.
var durationMs = map[Unit]int64{
	Millisecond:   1,
	Second:        msPerSecond,
	QuarterMinute: 15 * msPerSecond,
	HalfMinute:    30 * msPerSecond,
	Minute:        msPerMinute,
	QuarterHour:   15 * msPerMinute,
	HalfHour:      30 * msPerMinute,
	Hour:          msPerHour,
	QuarterDay:    6 * msPerHour,
	HalfDay:       12 * msPerHour,
	Day:           msPerDay,
	Week:          7 * msPerDay,
	Month:         30 * msPerDay,
	Year:          365 * msPerDay,
	Decade:        3650 * msPerDay,
	Century:       36500 * msPerDay,
}

// DurationMs returns the nominal duration of the unit in milliseconds.
func (u Unit) DurationMs() int64 {
	return durationMs[u]
}
