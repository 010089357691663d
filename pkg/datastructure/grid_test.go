package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGridNodeCount(t *testing.T) {
	grid := BuildGrid(-0.001, -0.001, 0.011, 0.001, 30)

	require.Greater(t, grid.NumRows(), 0)
	require.Greater(t, grid.NumCols(), 0)
	assert.Equal(t, grid.NumRows()*grid.NumCols(), grid.NumNodes())
}

func TestBuildGridNodesWithinBounds(t *testing.T) {
	minLon, minLat, maxLon, maxLat := 106.7, -6.3, 106.9, -6.1
	grid := BuildGrid(minLon, minLat, maxLon, maxLat, 100)

	grid.ForNodes(func(idx Index, node *GridNode) {
		assert.GreaterOrEqual(t, node.GetLon(), minLon)
		assert.Less(t, node.GetLon(), maxLon)
		assert.GreaterOrEqual(t, node.GetLat(), minLat)
		assert.Less(t, node.GetLat(), maxLat)

		// identity: arena offset matches the (row, col) pair
		assert.Equal(t, grid.Index(node.GetRow(), node.GetCol()), idx)
	})
}

func TestGridRowColAccess(t *testing.T) {
	grid := BuildGrid(0, 0, 0.01, 0.01, 200)

	node := grid.AtRowCol(2, 3)
	assert.Equal(t, 2, node.GetRow())
	assert.Equal(t, 3, node.GetCol())

	assert.True(t, grid.InBounds(0, 0))
	assert.False(t, grid.InBounds(-1, 0))
	assert.False(t, grid.InBounds(grid.NumRows(), 0))
}

func TestGridNodeLifecycle(t *testing.T) {
	node := NewGridNode(106.8, -6.2, 0, 0)

	assert.True(t, node.IsValid())
	assert.False(t, node.IsRoutable()) // unsampled

	_, sampled := node.GetElevation()
	assert.False(t, sampled)

	node.SetElevation(412.5)
	elev, sampled := node.GetElevation()
	assert.True(t, sampled)
	assert.Equal(t, 412.5, elev)
	assert.True(t, node.IsRoutable())

	node.Invalidate()
	assert.False(t, node.IsRoutable())
}

func TestBuildGridDegenerateBounds(t *testing.T) {
	grid := BuildGrid(0.01, 0.01, 0.01, 0.01, 30)
	assert.Equal(t, 0, grid.NumNodes())
}
