package routing

import (
	da "github.com/sitelayout/planner/pkg/datastructure"
	"github.com/sitelayout/planner/pkg/geo"
)

// FindNearestNode locates the cost-graph vertex nearest to (lon, lat) by
// linear scan over the grid. Ties break to the first node found in row-major
// order. Returns false when the graph has no usable vertex at all.
func FindNearestNode(grid *da.Grid, graph *da.CostGraph, lon, lat float64) (da.Index, bool) {
	nearest := da.INVALID_INDEX
	minDist := 0.0

	grid.ForNodes(func(idx da.Index, node *da.GridNode) {
		if !node.IsRoutable() || !graph.HasVertex(idx) {
			return
		}

		dist := geo.CalculateHaversineDistance(lat, lon, node.GetLat(), node.GetLon())
		if nearest == da.INVALID_INDEX || dist < minDist {
			minDist = dist
			nearest = idx
		}
	})

	return nearest, nearest != da.INVALID_INDEX
}
