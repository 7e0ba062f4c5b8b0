package layout

import "sort"

// Pinpoint is a point marker already mapped to pixel space.
type Pinpoint struct {
	ID            string  `json:"id"`
	PixelPosition float64 `json:"pixelPosition"`
	Timestamp     int64   `json:"timestamp"`
}

// PinpointCluster groups markers that sit too close together to draw
// individually. Position and timestamp are the means of the members.
type PinpointCluster struct {
	ID            string     `json:"id"`
	PixelPosition float64    `json:"pixelPosition"`
	Timestamp     int64      `json:"timestamp"`
	Count         int        `json:"count"`
	Items         []Pinpoint `json:"items"`
	IsClustered   bool       `json:"isClustered"`
}

// ClusterPinpoints runs a single left-to-right pass over the markers,
// chaining a marker onto the current cluster when its gap to the previous
// marker is at most clusterDistance. Chaining is transitive: a cluster can
// span more than clusterDistance end to end as long as each consecutive
// gap is small.
func ClusterPinpoints(points []Pinpoint, clusterDistance float64) []PinpointCluster {
	if len(points) == 0 {
		return nil
	}

	sorted := make([]Pinpoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PixelPosition < sorted[j].PixelPosition
	})

	var clusters []PinpointCluster
	current := []Pinpoint{sorted[0]}
	for _, p := range sorted[1:] {
		if p.PixelPosition-current[len(current)-1].PixelPosition <= clusterDistance {
			current = append(current, p)
			continue
		}
		clusters = append(clusters, finishCluster(current))
		current = []Pinpoint{p}
	}
	clusters = append(clusters, finishCluster(current))
	return clusters
}

func finishCluster(members []Pinpoint) PinpointCluster {
	var pixelSum float64
	var tsSum int64
	for _, m := range members {
		pixelSum += m.PixelPosition
		tsSum += m.Timestamp
	}

	count := len(members)
	return PinpointCluster{
		ID:            members[0].ID,
		PixelPosition: pixelSum / float64(count),
		Timestamp:     tsSum / int64(count),
		Count:         count,
		Items:         members,
		IsClustered:   count > 1,
	}
}
