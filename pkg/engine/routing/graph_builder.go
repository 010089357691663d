package routing

import (
	"github.com/sitelayout/planner/pkg/costfunction"
	da "github.com/sitelayout/planner/pkg/datastructure"
	"github.com/sitelayout/planner/pkg/geo"
)

// 8-connectivity: cardinal then diagonal neighbors.
var neighborDirections = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// BuildCostGraph connects every routable grid node to its routable lattice
// neighbors. Edges whose grade exceeds maxGrade are omitted entirely (hard
// constraint, not a penalty); surviving edges are weighted by the selected
// cost function. Both directions of each undirected edge are added, one per
// visiting order.
func BuildCostGraph(grid *da.Grid, maxGrade float64, costFn costfunction.CostFunction) *da.CostGraph {
	graph := da.NewCostGraph()

	grid.ForNodes(func(idx da.Index, node *da.GridNode) {
		if !node.IsRoutable() {
			return
		}
		graph.AddVertex(idx)

		elev, _ := node.GetElevation()

		for _, dir := range neighborDirections {
			row := node.GetRow() + dir[0]
			col := node.GetCol() + dir[1]
			if !grid.InBounds(row, col) {
				continue
			}

			neighbor := grid.AtRowCol(row, col)
			if !neighbor.IsRoutable() {
				continue
			}
			neighborElev, _ := neighbor.GetElevation()

			distance := geo.CalculateHaversineDistance(node.GetLat(), node.GetLon(),
				neighbor.GetLat(), neighbor.GetLon())
			grade := geo.CalculateGrade(node.GetLat(), node.GetLon(), elev,
				neighbor.GetLat(), neighbor.GetLon(), neighborElev)

			if grade > maxGrade {
				continue
			}

			weight := costFn.Weight(distance, grade)
			graph.AddArc(idx, grid.Index(row, col), weight, distance, grade)
		}
	})

	return graph
}
