package routing

import (
	da "github.com/sitelayout/planner/pkg/datastructure"
	"github.com/sitelayout/planner/pkg/geo"
	"github.com/sitelayout/planner/pkg/util"
)

// AstarSearch uni-directional A* over the cost graph. The heuristic is the
// great-circle distance to the target, admissible because every weight policy
// yields weight >= distance. One instance serves one ShortestPath call.
type AstarSearch struct {
	graph *da.CostGraph
	grid  *da.Grid

	pq         *da.MinHeap[da.Index]
	queueNodes map[da.Index]*da.PriorityQueueNode[da.Index]

	travelCosts map[da.Index]float64
	parents     map[da.Index]da.Index
	settled     map[da.Index]struct{}

	numSettledNodes int
}

func NewAstarSearch(graph *da.CostGraph, grid *da.Grid) *AstarSearch {
	return &AstarSearch{
		graph:       graph,
		grid:        grid,
		pq:          da.NewFourAryHeap[da.Index](),
		queueNodes:  make(map[da.Index]*da.PriorityQueueNode[da.Index]),
		travelCosts: make(map[da.Index]float64),
		parents:     make(map[da.Index]da.Index),
		settled:     make(map[da.Index]struct{}),
	}
}

func (a *AstarSearch) NumSettledNodes() int {
	return a.numSettledNodes
}

// ShortestPath returns the least-cost grid node sequence from source to target
// under the graph's weight policy, or false when the two are disconnected.
func (a *AstarSearch) ShortestPath(source, target da.Index) ([]da.Index, bool) {
	if !a.graph.HasVertex(source) || !a.graph.HasVertex(target) {
		return nil, false
	}

	a.travelCosts[source] = 0
	a.parents[source] = da.INVALID_INDEX

	sourceNode := da.NewPriorityQueueNode(a.heuristic(source, target), source)
	a.queueNodes[source] = sourceNode
	a.pq.Insert(sourceNode)

	for !a.pq.IsEmpty() {
		queueNode, err := a.pq.ExtractMin()
		if err != nil {
			break
		}
		uId := queueNode.GetItem()

		if _, done := a.settled[uId]; done {
			continue
		}
		a.settled[uId] = struct{}{}
		a.numSettledNodes++

		if uId == target {
			return a.extractPath(source, target), true
		}

		uCost := a.travelCosts[uId]

		a.graph.ForEdgesOf(uId, func(edge *da.GraphEdge) {
			vId := edge.GetTo()
			if _, done := a.settled[vId]; done {
				return
			}

			newCost := uCost + edge.GetWeight()

			prevCost, visited := a.travelCosts[vId]
			if visited && newCost >= prevCost {
				// newCost is not better, do nothing
				return
			}

			a.travelCosts[vId] = newCost
			a.parents[vId] = uId

			priority := newCost + a.heuristic(vId, target)
			if visited {
				// key already in the priority queue, decrease its key
				if err := a.pq.DecreaseKey(a.queueNodes[vId], priority); err != nil {
					vNode := da.NewPriorityQueueNode(priority, vId)
					a.queueNodes[vId] = vNode
					a.pq.Insert(vNode)
				}
			} else {
				vNode := da.NewPriorityQueueNode(priority, vId)
				a.queueNodes[vId] = vNode
				a.pq.Insert(vNode)
			}
		})
	}

	return nil, false
}

func (a *AstarSearch) heuristic(vId, target da.Index) float64 {
	v := a.grid.At(vId)
	t := a.grid.At(target)
	return geo.CalculateHaversineDistance(v.GetLat(), v.GetLon(), t.GetLat(), t.GetLon())
}

func (a *AstarSearch) extractPath(source, target da.Index) []da.Index {
	path := make([]da.Index, 0, 16)
	for cur := target; cur != da.INVALID_INDEX; cur = a.parents[cur] {
		path = append(path, cur)
		if cur == source {
			break
		}
	}
	return util.ReverseG(path)
}
