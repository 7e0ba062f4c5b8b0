// Package layout holds the pure item-layout algorithms: sub-row stacking
// of overlapping ranges, pixel clustering of point markers, and the row
// registry that turns row groups into absolute positions. Everything here
// is a function of its inputs; nothing retains state between calls except
// the explicit registry.
package layout

import "sort"

// TimeRangeItem is one item of a logical row, in Unix milliseconds.
// Items with StartTime == EndTime are point items.
type TimeRangeItem struct {
	ID        string `json:"id"`
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime"`
}

// SubRowAssignment places one item into a vertical sub-lane. SubRowCount
// is shared by every item of the processed set: the total number of lanes
// the row needs.
type SubRowAssignment struct {
	ID          string `json:"id"`
	SubRow      int    `json:"subRow"`
	SubRowCount int    `json:"subRowCount"`
}

// HasTimeOverlap reports whether two half-open ranges truly overlap.
// Touching ranges ([0,100) and [100,200)) do not overlap; a point item
// overlaps a range only when it lies strictly inside it, and two
// coincident point items never overlap each other.
func HasTimeOverlap(start1, end1, start2, end2 int64) bool {
	return start1 < end2 && start2 < end1
}

// AssignSubRows stacks the items of one logical row into the minimum
// number of parallel sub-rows. Greedy interval partitioning: sorted by
// (start, end), each item goes into the first sub-row that has ended by
// the item's start, or opens a new one. Interval graphs make this greedy
// coloring exact, so the lane count is minimal, not just heuristic.
func AssignSubRows(items []TimeRangeItem) map[string]SubRowAssignment {
	assignments := make(map[string]SubRowAssignment, len(items))
	if len(items) == 0 {
		return assignments
	}

	sorted := make([]TimeRangeItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartTime != sorted[j].StartTime {
			return sorted[i].StartTime < sorted[j].StartTime
		}
		return sorted[i].EndTime < sorted[j].EndTime
	})

	// lastEnd[i] is the end time of the latest item placed in sub-row i.
	var lastEnd []int64
	for _, item := range sorted {
		placed := -1
		for i, end := range lastEnd {
			if end <= item.StartTime {
				placed = i
				break
			}
		}
		if placed < 0 {
			placed = len(lastEnd)
			lastEnd = append(lastEnd, 0)
		}
		lastEnd[placed] = item.EndTime

		assignments[item.ID] = SubRowAssignment{ID: item.ID, SubRow: placed}
	}

	subRowCount := len(lastEnd)
	for id, a := range assignments {
		a.SubRowCount = subRowCount
		assignments[id] = a
	}
	return assignments
}
