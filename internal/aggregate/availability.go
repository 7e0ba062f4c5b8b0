package aggregate

import (
	"time"
)

// WeeklyRule marks an hour band on selected weekdays as available or not.
// Hours are local clock hours; EndHour is exclusive, so 9..17 is a
// working day ending at 17:00.
type WeeklyRule struct {
	Weekdays  []time.Weekday `json:"weekdays"`
	StartHour int            `json:"startHour"`
	EndHour   int            `json:"endHour"`
	Available bool           `json:"available"`
}

// SimpleRule marks a daily repeating hour band, every day of the week.
type SimpleRule struct {
	StartHour int  `json:"startHour"`
	EndHour   int  `json:"endHour"`
	Available bool `json:"available"`
}

// SpecificRule marks one absolute half-open range in Unix milliseconds,
// for one-off exceptions like holidays or maintenance windows.
type SpecificRule struct {
	StartTime int64 `json:"startTime"`
	EndTime   int64 `json:"endTime"`
	Available bool  `json:"available"`
}

// AvailabilityConfig is the rule set fed into occupancy computation.
// Rules are evaluated weekly first, then simple, then specific; the
// first rule matching a sampled instant decides it. An instant no rule
// matches is available, and so is everything when the config is nil.
type AvailabilityConfig struct {
	Weekly   []WeeklyRule   `json:"weekly,omitempty"`
	Simple   []SimpleRule   `json:"simple,omitempty"`
	Specific []SpecificRule `json:"specific,omitempty"`
}

// IsAvailable evaluates the rule set at one instant.
func (c *AvailabilityConfig) IsAvailable(ts int64, loc *time.Location) bool {
	if c == nil {
		return true
	}
	if loc == nil {
		loc = time.UTC
	}
	t := time.UnixMilli(ts).In(loc)
	hour := t.Hour()
	weekday := t.Weekday()

	for _, rule := range c.Weekly {
		if !matchesWeekday(rule.Weekdays, weekday) {
			continue
		}
		if hour >= rule.StartHour && hour < rule.EndHour {
			return rule.Available
		}
	}
	for _, rule := range c.Simple {
		if hour >= rule.StartHour && hour < rule.EndHour {
			return rule.Available
		}
	}
	for _, rule := range c.Specific {
		if ts >= rule.StartTime && ts < rule.EndTime {
			return rule.Available
		}
	}
	return true
}

func matchesWeekday(days []time.Weekday, day time.Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
