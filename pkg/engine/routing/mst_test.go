package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitelayout/planner/pkg/geo"
)

func TestBuildMinimumSpanningTreeCardinality(t *testing.T) {
	testCases := []struct {
		name      string
		assets    []geo.Coordinate
		wantEdges int
	}{
		{name: "no assets", assets: nil, wantEdges: 0},
		{
			name:      "single asset",
			assets:    []geo.Coordinate{geo.NewCoordinate(0, 0)},
			wantEdges: 0,
		},
		{
			name: "two assets",
			assets: []geo.Coordinate{
				geo.NewCoordinate(0, 0),
				geo.NewCoordinate(0, 0.01),
			},
			wantEdges: 1,
		},
		{
			name: "five assets",
			assets: []geo.Coordinate{
				geo.NewCoordinate(0, 0),
				geo.NewCoordinate(0.01, 0.002),
				geo.NewCoordinate(0.005, 0.013),
				geo.NewCoordinate(-0.004, 0.007),
				geo.NewCoordinate(0.002, -0.009),
			},
			wantEdges: 4,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			mst := BuildMinimumSpanningTree(tt.assets)
			assert.Len(t, mst, tt.wantEdges)
		})
	}
}

func TestBuildMinimumSpanningTreeCollinear(t *testing.T) {
	// three collinear assets: the long 0-2 edge must never be picked
	assets := []geo.Coordinate{
		geo.NewCoordinate(0, 0),
		geo.NewCoordinate(0, 0.01),
		geo.NewCoordinate(0, 0.02),
	}

	mst := BuildMinimumSpanningTree(assets)
	require.Len(t, mst, 2)
	assert.Equal(t, NewTopologyEdge(0, 1), mst[0])
	assert.Equal(t, NewTopologyEdge(1, 2), mst[1])
}

func TestBuildMinimumSpanningTreeDeterministic(t *testing.T) {
	// unit square: four equal-length sides, tie-break must be stable
	assets := []geo.Coordinate{
		geo.NewCoordinate(0, 0),
		geo.NewCoordinate(0, 0.01),
		geo.NewCoordinate(0.01, 0.01),
		geo.NewCoordinate(0.01, 0),
	}

	first := BuildMinimumSpanningTree(assets)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildMinimumSpanningTree(assets))
	}
}

func TestNearestAsset(t *testing.T) {
	assets := []geo.Coordinate{
		geo.NewCoordinate(0, 0),
		geo.NewCoordinate(0, 0.01),
	}

	assert.Equal(t, 0, NearestAsset(geo.NewCoordinate(0, -0.01), assets))
	assert.Equal(t, 1, NearestAsset(geo.NewCoordinate(0, 0.02), assets))
	assert.Equal(t, -1, NearestAsset(geo.NewCoordinate(0, 0), nil))

	// equidistant: first found wins
	assert.Equal(t, 0, NearestAsset(geo.NewCoordinate(0, 0.005), assets))
}
