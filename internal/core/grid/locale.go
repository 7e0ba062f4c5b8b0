package grid

import "time"

// Locale is the pure-data contract the calculator consumes for captions.
// The surrounding application owns and loads it; callers that pass nil get
// the English defaults.
type Locale struct {
	MonthsShort   []string `json:"monthsShort"`
	MonthsLong    []string `json:"monthsLong"`
	WeekdaysShort []string `json:"weekdaysShort"`
	WeekAbbrev    string   `json:"weekAbbrev"`
}

// DefaultLocale returns the built-in English caption table.
func DefaultLocale() *Locale {
	return &Locale{
		MonthsShort: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		MonthsLong: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		WeekdaysShort: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		WeekAbbrev:    "W",
	}
}

// MonthShort returns the abbreviated month name, falling back to the Go
// formatting name when the table is incomplete.
func (l *Locale) MonthShort(m time.Month) string {
	idx := int(m) - 1
	if l != nil && idx >= 0 && idx < len(l.MonthsShort) {
		return l.MonthsShort[idx]
	}
	return m.String()[:3]
}

// WeekdayShort returns the abbreviated weekday name. Indexing follows Go's
// time.Weekday with Sunday at zero.
func (l *Locale) WeekdayShort(d time.Weekday) string {
	if l != nil && int(d) < len(l.WeekdaysShort) {
		return l.WeekdaysShort[int(d)]
	}
	return d.String()[:3]
}

// Week returns the week caption abbreviation ("W" in the default table).
func (l *Locale) Week() string {
	if l != nil && l.WeekAbbrev != "" {
		return l.WeekAbbrev
	}
	return "W"
}
