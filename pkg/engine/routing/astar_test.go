package routing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitelayout/planner/pkg/costfunction"
	da "github.com/sitelayout/planner/pkg/datastructure"
)

// flatGrid small lattice with every node at elevation 0.
func flatGrid(t *testing.T) *da.Grid {
	t.Helper()
	grid := da.BuildGrid(0, 0, 0.003, 0.003, 50)
	require.Greater(t, grid.NumNodes(), 9)
	grid.ForNodes(func(_ da.Index, node *da.GridNode) {
		node.SetElevation(0)
	})
	return grid
}

func TestBuildCostGraphFlat(t *testing.T) {
	grid := flatGrid(t)
	graph := BuildCostGraph(grid, 10, costfunction.NewCostFunction(costfunction.BALANCED))

	assert.Equal(t, grid.NumNodes(), graph.NumVertices())
	assert.Greater(t, graph.NumEdges(), 0)

	// flat terrain: weight equals distance under every policy
	graph.ForAllArcs(func(_ da.Index, edge *da.GraphEdge) {
		assert.Equal(t, 0.0, edge.GetGrade())
		assert.InDelta(t, edge.GetDistance(), edge.GetWeight(), 1e-9)
	})
}

// grade constraint property: no stored edge ever exceeds maxGrade, and no
// policy ever discounts below plain distance
func TestBuildCostGraphGradeConstraint(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	criterias := []costfunction.OptimizationCriteria{
		costfunction.MINIMAL_LENGTH,
		costfunction.MINIMAL_EARTHWORK,
		costfunction.BALANCED,
		costfunction.MINIMAL_GRADE,
	}

	for trial := 0; trial < 5; trial++ {
		grid := da.BuildGrid(0, 0, 0.003, 0.003, 50)
		grid.ForNodes(func(_ da.Index, node *da.GridNode) {
			node.SetElevation(rng.Float64() * 20)
		})
		maxGrade := 2 + rng.Float64()*15

		for _, criteria := range criterias {
			graph := BuildCostGraph(grid, maxGrade, costfunction.NewCostFunction(criteria))
			graph.ForAllArcs(func(_ da.Index, edge *da.GraphEdge) {
				require.LessOrEqual(t, edge.GetGrade(), maxGrade)
				require.GreaterOrEqual(t, edge.GetWeight(), edge.GetDistance())
			})
		}
	}
}

func TestBuildCostGraphSkipsUnroutableNodes(t *testing.T) {
	grid := flatGrid(t)
	grid.AtRowCol(1, 1).Invalidate()

	graph := BuildCostGraph(grid, 10, costfunction.NewCostFunction(costfunction.BALANCED))

	assert.Equal(t, grid.NumNodes()-1, graph.NumVertices())
	assert.False(t, graph.HasVertex(grid.Index(1, 1)))
}

func TestAstarShortestPathFlat(t *testing.T) {
	grid := flatGrid(t)
	graph := BuildCostGraph(grid, 10, costfunction.NewCostFunction(costfunction.MINIMAL_LENGTH))

	source := grid.Index(0, 0)
	target := grid.Index(grid.NumRows()-1, grid.NumCols()-1)

	search := NewAstarSearch(graph, grid)
	path, found := search.ShortestPath(source, target)

	require.True(t, found)
	require.NotEmpty(t, path)
	assert.Equal(t, source, path[0])
	assert.Equal(t, target, path[len(path)-1])
	assert.Greater(t, search.NumSettledNodes(), 0)

	// consecutive path nodes must be lattice neighbors
	for i := 0; i < len(path)-1; i++ {
		a, b := grid.At(path[i]), grid.At(path[i+1])
		dr := a.GetRow() - b.GetRow()
		dc := a.GetCol() - b.GetCol()
		assert.LessOrEqual(t, dr*dr, 1)
		assert.LessOrEqual(t, dc*dc, 1)
	}
}

func TestAstarNoPathAcrossBarrier(t *testing.T) {
	grid := flatGrid(t)

	// invalidate a full column: left and right halves disconnect
	barrierCol := grid.NumCols() / 2
	for row := 0; row < grid.NumRows(); row++ {
		grid.AtRowCol(row, barrierCol).Invalidate()
	}

	graph := BuildCostGraph(grid, 10, costfunction.NewCostFunction(costfunction.BALANCED))

	search := NewAstarSearch(graph, grid)
	_, found := search.ShortestPath(grid.Index(0, 0), grid.Index(0, grid.NumCols()-1))
	assert.False(t, found)
}

func TestAstarSourceEqualsTarget(t *testing.T) {
	grid := flatGrid(t)
	graph := BuildCostGraph(grid, 10, costfunction.NewCostFunction(costfunction.BALANCED))

	idx := grid.Index(1, 1)
	search := NewAstarSearch(graph, grid)
	path, found := search.ShortestPath(idx, idx)

	require.True(t, found)
	assert.Equal(t, []da.Index{idx}, path)
}

func TestFindNearestNode(t *testing.T) {
	grid := flatGrid(t)
	graph := BuildCostGraph(grid, 10, costfunction.NewCostFunction(costfunction.BALANCED))

	// a point just off the origin corner snaps to node (0, 0)
	idx, ok := FindNearestNode(grid, graph, 0.0001, 0.0001)
	require.True(t, ok)
	assert.Equal(t, grid.Index(0, 0), idx)

	// no routable nodes at all
	grid.ForNodes(func(_ da.Index, node *da.GridNode) {
		node.Invalidate()
	})
	empty := BuildCostGraph(grid, 10, costfunction.NewCostFunction(costfunction.BALANCED))
	_, ok = FindNearestNode(grid, empty, 0, 0)
	assert.False(t, ok)
}
