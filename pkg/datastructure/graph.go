package datastructure

// GraphEdge is one directed arc of the cost graph. The graph is logically
// undirected: every stored arc has a mirror with identical weight, distance and
// grade.
type GraphEdge struct {
	to       Index
	weight   float64
	distance float64
	grade    float64
}

func NewGraphEdge(to Index, weight, distance, grade float64) GraphEdge {
	return GraphEdge{
		to:       to,
		weight:   weight,
		distance: distance,
		grade:    grade,
	}
}

func (e *GraphEdge) GetTo() Index {
	return e.to
}

func (e *GraphEdge) GetWeight() float64 {
	return e.weight
}

func (e *GraphEdge) GetDistance() float64 {
	return e.distance
}

func (e *GraphEdge) GetGrade() float64 {
	return e.grade
}

// CostGraph is the weighted undirected graph over routable grid nodes, keyed by
// grid index. Invariant: every stored edge satisfies grade <= maxGrade of the
// request that built it. Rebuilt from scratch per invocation.
type CostGraph struct {
	adjacency map[Index][]GraphEdge
	numArcs   int
}

func NewCostGraph() *CostGraph {
	return &CostGraph{
		adjacency: make(map[Index][]GraphEdge),
	}
}

func (g *CostGraph) AddVertex(idx Index) {
	if _, ok := g.adjacency[idx]; !ok {
		g.adjacency[idx] = nil
	}
}

func (g *CostGraph) HasVertex(idx Index) bool {
	_, ok := g.adjacency[idx]
	return ok
}

// AddArc append a single directed arc. Callers add both directions of an
// undirected edge exactly once each.
func (g *CostGraph) AddArc(from, to Index, weight, distance, grade float64) {
	g.adjacency[from] = append(g.adjacency[from], NewGraphEdge(to, weight, distance, grade))
	g.numArcs++
}

func (g *CostGraph) NumVertices() int {
	return len(g.adjacency)
}

// NumEdges undirected edge count.
func (g *CostGraph) NumEdges() int {
	return g.numArcs / 2
}

// ForEdgesOf visits the outgoing arcs of idx.
func (g *CostGraph) ForEdgesOf(idx Index, fn func(edge *GraphEdge)) {
	edges := g.adjacency[idx]
	for i := range edges {
		fn(&edges[i])
	}
}

// ForAllArcs visits every directed arc of the graph.
func (g *CostGraph) ForAllArcs(fn func(from Index, edge *GraphEdge)) {
	for from, edges := range g.adjacency {
		for i := range edges {
			fn(from, &edges[i])
		}
	}
}
