package datastructure

import (
	"math"

	"github.com/sitelayout/planner/pkg"
	"github.com/sitelayout/planner/pkg/util"
)

type Index int32

const INVALID_INDEX Index = -1

// GridNode is one candidate point on the pathfinding lattice. Identity is the
// (row, col) pair; position is WGS84 degrees.
type GridNode struct {
	lon float64
	lat float64

	row int
	col int

	elevation float64
	sampled   bool

	valid bool // false once the node falls inside a buffered exclusion zone
}

func NewGridNode(lon, lat float64, row, col int) GridNode {
	return GridNode{
		lon:   lon,
		lat:   lat,
		row:   row,
		col:   col,
		valid: true,
	}
}

func (n *GridNode) GetLon() float64 {
	return n.lon
}

func (n *GridNode) GetLat() float64 {
	return n.lat
}

func (n *GridNode) GetRow() int {
	return n.row
}

func (n *GridNode) GetCol() int {
	return n.col
}

// GetElevation returns the sampled elevation and whether it is present at all.
func (n *GridNode) GetElevation() (float64, bool) {
	return n.elevation, n.sampled
}

func (n *GridNode) SetElevation(elevation float64) {
	n.elevation = elevation
	n.sampled = true
}

func (n *GridNode) IsValid() bool {
	return n.valid
}

func (n *GridNode) Invalidate() {
	n.valid = false
}

// IsRoutable reports whether the node may become a cost-graph vertex.
func (n *GridNode) IsRoutable() bool {
	return n.valid && n.sampled
}

// Grid is the row-major arena of candidate nodes covering the padded site
// bounds. Offsets are Index(row*numCols + col). The arena is request scoped and
// never shared between invocations.
type Grid struct {
	nodes   []GridNode
	numRows int
	numCols int
}

// BuildGrid discretizes the bounding box [minLon, maxLon) x [minLat, maxLat)
// into a lattice with the given physical resolution (meters). Degree steps use
// the meters-per-degree approximation at the center latitude.
func BuildGrid(minLon, minLat, maxLon, maxLat, resolutionM float64) *Grid {
	centerLat := (minLat + maxLat) / 2.0

	metersPerDegreeLon := pkg.METERS_PER_DEGREE_LAT * math.Cos(util.DegreeToRadians(centerLat))
	dx := resolutionM / metersPerDegreeLon
	dy := resolutionM / pkg.METERS_PER_DEGREE_LAT

	numCols := countSteps(minLon, maxLon, dx)
	numRows := countSteps(minLat, maxLat, dy)

	nodes := make([]GridNode, 0, numRows*numCols)
	for row := 0; row < numRows; row++ {
		lat := minLat + dy*float64(row)
		for col := 0; col < numCols; col++ {
			lon := minLon + dx*float64(col)
			nodes = append(nodes, NewGridNode(lon, lat, row, col))
		}
	}

	return &Grid{
		nodes:   nodes,
		numRows: numRows,
		numCols: numCols,
	}
}

// countSteps. number of lattice coordinates min + k*step strictly below max.
func countSteps(min, max, step float64) int {
	if max <= min || step <= 0 {
		return 0
	}
	n := int(math.Ceil((max - min) / step))
	// guard against float fuzz putting the last coordinate on/over max
	for n > 0 && min+step*float64(n-1) >= max {
		n--
	}
	return n
}

func (g *Grid) NumRows() int {
	return g.numRows
}

func (g *Grid) NumCols() int {
	return g.numCols
}

func (g *Grid) NumNodes() int {
	return len(g.nodes)
}

func (g *Grid) Index(row, col int) Index {
	return Index(row*g.numCols + col)
}

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.numRows && col >= 0 && col < g.numCols
}

func (g *Grid) At(idx Index) *GridNode {
	return &g.nodes[idx]
}

func (g *Grid) AtRowCol(row, col int) *GridNode {
	return &g.nodes[g.Index(row, col)]
}

// ForNodes visits every node in row-major order.
func (g *Grid) ForNodes(fn func(idx Index, node *GridNode)) {
	for i := range g.nodes {
		fn(Index(i), &g.nodes[i])
	}
}
