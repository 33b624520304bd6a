package routesearch

import (
	"time"

	"github.com/pdrpinto/routesearch/internal"
)

// BFS runs a level-order search from start to goal that ignores edge weights, so
// the returned path has the fewest edges rather than the lowest cost. Nodes are
// marked visited when enqueued, so each node enters the queue at most once.
// The Result never carries a cost.
func BFS[N comparable](graph Graph[N], start N, goal N, options ...Option[N]) Result[N] {
	began := time.Now()
	observer := buildOptions(options).observer()

	queue := []N{start}
	hops := map[N]int{start: 0}
	cameFrom := make(map[N]N)
	var order []N

	res := Result[N]{Algorithm: AlgorithmBFS}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)

		depth := hops[current]
		observer.NodeSettled(SettleEvent[N]{
			Node:         current,
			G:            float64(depth),
			Priority:     float64(depth),
			Step:         len(order),
			FrontierSize: len(queue),
		})

		if current == goal {
			res.Found = true
			res.Path = internal.ReconstructPath(cameFrom, goal, start)
			break
		}

		for _, neighbor := range graph.Neighbors(current) {
			if _, visited := hops[neighbor.ID]; visited {
				continue
			}
			hops[neighbor.ID] = depth + 1
			cameFrom[neighbor.ID] = current
			queue = append(queue, neighbor.ID)
			observer.NeighborRelaxed(RelaxEvent[N]{
				From:     current,
				To:       neighbor.ID,
				EdgeCost: neighbor.Cost,
				G:        float64(depth + 1),
				Priority: float64(depth + 1),
				Sequence: uint64(len(hops) - 1),
			})
		}
	}

	res.SettledCount = len(order)
	res.SettledOrder = order
	res.Discovered = len(hops)
	res.Elapsed = time.Since(began)
	return res
}
