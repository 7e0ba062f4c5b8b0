package util

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// FormatDuration renders a duration as "7d 12h" / "2h 5m" / "5m" for
// display, picking the two most significant components.
func FormatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatTimestamp renders a Unix-millisecond timestamp in the given
// location for display.
func FormatTimestamp(ms int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(ms).In(loc).Format("2006-01-02 15:04:05")
}

var durationPattern = regexp.MustCompile(`(\d+)([hdwmy])`)

// ParseDurationString parses compound human-readable spans such as "12h",
// "7d", "2w3d" or "1d12h". Months and years are approximated as 30 and 365
// days. Malformed input is a hard error: silently guessing a wrong span
// would corrupt the layout downstream.
func ParseDurationString(durationStr string) (time.Duration, error) {
	matches := durationPattern.FindAllStringSubmatch(durationStr, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("invalid duration format: %s", durationStr)
	}

	consumed := 0
	var total time.Duration
	for _, match := range matches {
		consumed += len(match[0])
		value, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, fmt.Errorf("invalid number in duration: %s", match[1])
		}

		switch match[2] {
		case "h":
			total += time.Duration(value) * time.Hour
		case "d":
			total += time.Duration(value) * 24 * time.Hour
		case "w":
			total += time.Duration(value) * 7 * 24 * time.Hour
		case "m":
			total += time.Duration(value) * 30 * 24 * time.Hour
		case "y":
			total += time.Duration(value) * 365 * 24 * time.Hour
		}
	}

	if consumed != len(durationStr) {
		return 0, fmt.Errorf("invalid duration format: %s", durationStr)
	}
	return total, nil
}
