package layout

import "fmt"

// RowGroup is one registered group of rows with its collapse state.
type RowGroup struct {
	ID         string `json:"id"`
	RowCount   int    `json:"rowCount"`
	IsExpanded bool   `json:"isExpanded"`
	Order      int    `json:"order"`
}

// RowRegistry is the explicit registry of row groups, replacing any
// implicit mount-order bookkeeping: callers register groups in display
// order and query absolute positions. A collapsed group still occupies a
// single summary row.
type RowRegistry struct {
	groups map[string]*RowGroup
	order  []string
}

// NewRowRegistry returns an empty registry.
func NewRowRegistry() *RowRegistry {
	return &RowRegistry{groups: make(map[string]*RowGroup)}
}

// Register adds a group at the end of the display order, or updates the
// row count of an existing group in place.
func (r *RowRegistry) Register(id string, rowCount int, expanded bool) {
	if g, ok := r.groups[id]; ok {
		g.RowCount = rowCount
		g.IsExpanded = expanded
		return
	}

	r.groups[id] = &RowGroup{
		ID:         id,
		RowCount:   rowCount,
		IsExpanded: expanded,
		Order:      len(r.order),
	}
	r.order = append(r.order, id)
}

// Unregister removes a group and closes the gap in the display order.
func (r *RowRegistry) Unregister(id string) {
	if _, ok := r.groups[id]; !ok {
		return
	}
	delete(r.groups, id)

	for i, gid := range r.order {
		if gid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	for i, gid := range r.order {
		r.groups[gid].Order = i
	}
}

// Toggle flips a group's collapse state and returns the new state.
func (r *RowRegistry) Toggle(id string) (bool, error) {
	g, ok := r.groups[id]
	if !ok {
		return false, fmt.Errorf("unknown row group: %s", id)
	}
	g.IsExpanded = !g.IsExpanded
	return g.IsExpanded, nil
}

// CalculatedPosition returns the absolute row index where a group starts:
// the sum of the heights of every group before it in display order.
func (r *RowRegistry) CalculatedPosition(id string) (int, error) {
	g, ok := r.groups[id]
	if !ok {
		return 0, fmt.Errorf("unknown row group: %s", id)
	}

	position := 0
	for _, gid := range r.order[:g.Order] {
		position += r.groups[gid].visibleRows()
	}
	return position, nil
}

// TotalRows returns the number of rows the registered groups occupy.
func (r *RowRegistry) TotalRows() int {
	total := 0
	for _, gid := range r.order {
		total += r.groups[gid].visibleRows()
	}
	return total
}

// Groups returns the groups in display order.
func (r *RowRegistry) Groups() []RowGroup {
	out := make([]RowGroup, 0, len(r.order))
	for _, gid := range r.order {
		out = append(out, *r.groups[gid])
	}
	return out
}

// AbsoluteRow resolves an item's row index within its group to a global
// row index, honoring collapse state: items in a collapsed group all map
// onto the group's summary row.
func (r *RowRegistry) AbsoluteRow(groupID string, rowInGroup int) (int, error) {
	base, err := r.CalculatedPosition(groupID)
	if err != nil {
		return 0, err
	}
	if !r.groups[groupID].IsExpanded {
		return base, nil
	}
	return base + rowInGroup, nil
}

func (g *RowGroup) visibleRows() int {
	if !g.IsExpanded {
		return 1
	}
	if g.RowCount < 1 {
		return 1
	}
	return g.RowCount
}
