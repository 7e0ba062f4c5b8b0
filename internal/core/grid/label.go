package grid

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/chronoview/go-timeline-engine/internal/core/timeunit"
)

// Caption width heuristic, in pixels. Primary captions render slightly
// wider than the secondary sub-captions of combined cells.
const (
	primaryCharPx   = 8.0
	secondaryCharPx = 7.0
	captionPadPx    = 16.0
)

// estimateCaptionWidth estimates the rendered pixel width of a caption.
// Character counting goes through runewidth so wide runes (CJK month names
// in a custom locale) count double.
func estimateCaptionWidth(caption string, primary bool) float64 {
	perChar := secondaryCharPx
	if primary {
		perChar = primaryCharPx
	}
	return float64(runewidth.StringWidth(caption))*perChar + captionPadPx
}

// Label formats the caption for a boundary timestamp at the given unit.
func (c *Calculator) Label(ts int64, u timeunit.Unit) string {
	t := time.UnixMilli(ts).In(c.loc)

	switch u {
	case timeunit.Millisecond:
		return fmt.Sprintf(".%03d", t.Nanosecond()/int(time.Millisecond))
	case timeunit.Second, timeunit.QuarterMinute, timeunit.HalfMinute:
		return t.Format("15:04:05")
	case timeunit.Minute, timeunit.QuarterHour, timeunit.HalfHour,
		timeunit.Hour, timeunit.QuarterDay, timeunit.HalfDay:
		return t.Format("15:04")
	case timeunit.Day:
		return fmt.Sprintf("%s %d", c.locale.WeekdayShort(t.Weekday()), t.Day())
	case timeunit.Week:
		_, week := t.ISOWeek()
		return fmt.Sprintf("%s %d", c.locale.Week(), week)
	case timeunit.Month:
		return c.locale.MonthShort(t.Month())
	case timeunit.Year:
		return fmt.Sprintf("%d", t.Year())
	case timeunit.Decade:
		return fmt.Sprintf("%ds", t.Year()-t.Year()%10)
	case timeunit.Century:
		return fmt.Sprintf("%d00s", (t.Year()-t.Year()%100)/100)
	}
	return ""
}
