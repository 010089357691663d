package routing

import (
	"sort"

	"github.com/sitelayout/planner/pkg/geo"
)

// TopologyEdge is a required connection between two asset indexes, independent
// of the physical path later routed for it.
type TopologyEdge struct {
	From int
	To   int
}

func NewTopologyEdge(from, to int) TopologyEdge {
	return TopologyEdge{From: from, To: to}
}

type assetEdge struct {
	from, to int
	distance float64
}

// BuildMinimumSpanningTree computes the MST of the complete graph over the
// asset points with great-circle distance weights (Kruskal). Exactly N-1 edges
// for N >= 2, none for N <= 1. Stable sort keeps the tie-break deterministic
// by insertion order.
func BuildMinimumSpanningTree(assets []geo.Coordinate) []TopologyEdge {
	n := len(assets)
	if n < 2 {
		return []TopologyEdge{}
	}

	edges := make([]assetEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := geo.CalculateHaversineDistance(assets[i].GetLat(), assets[i].GetLon(),
				assets[j].GetLat(), assets[j].GetLon())
			edges = append(edges, assetEdge{from: i, to: j, distance: dist})
		}
	}

	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].distance < edges[b].distance
	})

	uf := newUnionFind(n)
	mst := make([]TopologyEdge, 0, n-1)
	for _, e := range edges {
		if uf.union(e.from, e.to) {
			mst = append(mst, NewTopologyEdge(e.from, e.to))
			if len(mst) == n-1 {
				break
			}
		}
	}

	return mst
}

// NearestAsset linear scan for the asset geographically nearest to point.
// Returns -1 when assets is empty; ties break to the first found.
func NearestAsset(point geo.Coordinate, assets []geo.Coordinate) int {
	nearest := -1
	minDist := 0.0
	for i, a := range assets {
		dist := geo.CalculateHaversineDistance(point.GetLat(), point.GetLon(),
			a.GetLat(), a.GetLon())
		if nearest == -1 || dist < minDist {
			minDist = dist
			nearest = i
		}
	}
	return nearest
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{
		parent: parent,
		rank:   make([]int, n),
	}
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}
	return x
}

// union returns false when x and y were already connected.
func (uf *unionFind) union(x, y int) bool {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return false
	}
	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
	return true
}
