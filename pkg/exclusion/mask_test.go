package exclusion

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sitelayout/planner/pkg/datastructure"
)

func squareZone(minLon, minLat, maxLon, maxLat float64) orb.Geometry {
	return orb.Polygon{orb.Ring{
		{minLon, minLat},
		{maxLon, minLat},
		{maxLon, maxLat},
		{minLon, maxLat},
		{minLon, minLat},
	}}
}

func TestMaskApplyInvalidatesContainedNodes(t *testing.T) {
	grid := datastructure.BuildGrid(0, 0, 0.01, 0.001, 30)
	zone := squareZone(0.004, -0.01, 0.006, 0.01)

	mask := NewMask([]orb.Geometry{zone}, 0, zap.NewNop())
	require.Equal(t, 1, mask.NumZones())

	invalidated := mask.Apply(grid)
	assert.Greater(t, invalidated, 0)

	grid.ForNodes(func(_ datastructure.Index, node *datastructure.GridNode) {
		inside := node.GetLon() > 0.004 && node.GetLon() < 0.006
		assert.Equal(t, !inside, node.IsValid(),
			"node lon=%v lat=%v", node.GetLon(), node.GetLat())
	})
}

func TestMaskBufferExtendsZone(t *testing.T) {
	zone := squareZone(0.002, 0.002, 0.004, 0.004)

	// ~55 m outside the east boundary
	lon, lat := 0.0045, 0.003

	noBuffer := NewMask([]orb.Geometry{zone}, 0, zap.NewNop())
	assert.False(t, noBuffer.Contains(lon, lat))

	buffered := NewMask([]orb.Geometry{zone}, 100, zap.NewNop())
	assert.True(t, buffered.Contains(lon, lat))

	// well outside even the buffered region
	assert.False(t, buffered.Contains(0.01, 0.003))
}

func TestMaskMultiPolygon(t *testing.T) {
	zone := orb.MultiPolygon{
		{orb.Ring{{0, 0}, {0.001, 0}, {0.001, 0.001}, {0, 0.001}, {0, 0}}},
		{orb.Ring{{0.005, 0}, {0.006, 0}, {0.006, 0.001}, {0.005, 0.001}, {0.005, 0}}},
	}

	mask := NewMask([]orb.Geometry{zone}, 0, zap.NewNop())
	assert.True(t, mask.Contains(0.0005, 0.0005))
	assert.True(t, mask.Contains(0.0055, 0.0005))
	assert.False(t, mask.Contains(0.003, 0.0005))
}

func TestMaskSkipsNonAreaGeometry(t *testing.T) {
	zones := []orb.Geometry{
		orb.LineString{{0, 0}, {1, 1}},
		nil,
		orb.Point{0, 0},
	}

	mask := NewMask(zones, 50, zap.NewNop())
	assert.Equal(t, 0, mask.NumZones())

	grid := datastructure.BuildGrid(0, 0, 0.01, 0.001, 30)
	assert.Equal(t, 0, mask.Apply(grid))
}

func TestMaskNoZonesIsNoOp(t *testing.T) {
	grid := datastructure.BuildGrid(0, 0, 0.01, 0.001, 30)
	mask := NewMask(nil, 100, zap.NewNop())

	assert.Equal(t, 0, mask.Apply(grid))
	grid.ForNodes(func(_ datastructure.Index, node *datastructure.GridNode) {
		assert.True(t, node.IsValid())
	})
}
