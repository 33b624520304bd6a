package routesearch

import (
	"errors"
	"fmt"
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrInvalidWeight is returned when an edge weight is negative, NaN or infinite.
var ErrInvalidWeight = errors.New("edge weight must be a finite non-negative number")

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
type Graph[N comparable] interface {
	// Neighbors returns the outgoing edges of node, or nothing for unknown nodes.
	Neighbors(node N) []Neighbor[N]
}

// Neighbor represents a reachable node with a cost.
type Neighbor[N comparable] struct {
	ID   N
	Cost float64
}

// Adjacency is one bulk-load entry: a node and its ordered neighbor list.
type Adjacency[N comparable] struct {
	Node      N
	Neighbors []Neighbor[N]
}

// Edge is a weighted connection between two nodes.
type Edge[N comparable] struct {
	From   N
	To     N
	Weight float64
}

// AdjacencyList is an in-memory Graph that remembers the order in which nodes and
// edges were added. It is meant to be filled once and then only read.
type AdjacencyList[N comparable] struct {
	nodes *orderedmap.OrderedMap[N, []Neighbor[N]]
}

// NewAdjacencyList builds a graph from bulk-load entries, keeping their order.
func NewAdjacencyList[N comparable](entries ...Adjacency[N]) (*AdjacencyList[N], error) {
	g := &AdjacencyList[N]{nodes: orderedmap.New[N, []Neighbor[N]]()}
	for _, entry := range entries {
		if err := g.Add(entry.Node, entry.Neighbors...); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Add registers node (if new) and appends the given directed edges to its list.
func (g *AdjacencyList[N]) Add(node N, neighbors ...Neighbor[N]) error {
	for _, nb := range neighbors {
		if !validWeight(nb.Cost) {
			return fmt.Errorf("edge %v -> %v (%v): %w", node, nb.ID, nb.Cost, ErrInvalidWeight)
		}
	}
	existing, _ := g.nodes.Get(node)
	g.nodes.Set(node, append(existing, neighbors...))
	return nil
}

// AddUndirected adds the edge in both directions.
func (g *AdjacencyList[N]) AddUndirected(u, v N, weight float64) error {
	if err := g.Add(u, Neighbor[N]{ID: v, Cost: weight}); err != nil {
		return err
	}
	return g.Add(v, Neighbor[N]{ID: u, Cost: weight})
}

// Neighbors returns the adjacency list of node. The slice must not be modified.
func (g *AdjacencyList[N]) Neighbors(node N) []Neighbor[N] {
	neighbors, _ := g.nodes.Get(node)
	return neighbors
}

// Has reports whether node is a key of the graph.
func (g *AdjacencyList[N]) Has(node N) bool {
	_, ok := g.nodes.Get(node)
	return ok
}

// Len returns the number of nodes with an adjacency entry.
func (g *AdjacencyList[N]) Len() int { return g.nodes.Len() }

// Nodes returns every node in insertion order.
func (g *AdjacencyList[N]) Nodes() []N {
	out := make([]N, 0, g.nodes.Len())
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Edges lists each undirected edge once, in the order it was first seen. A pair
// declared in both directions with the same weight is reported a single time.
func (g *AdjacencyList[N]) Edges() []Edge[N] {
	pending := make(map[Edge[N]]int)
	var out []Edge[N]
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		for _, nb := range pair.Value {
			mirror := Edge[N]{From: nb.ID, To: pair.Key, Weight: nb.Cost}
			if pending[mirror] > 0 {
				pending[mirror]--
				continue
			}
			e := Edge[N]{From: pair.Key, To: nb.ID, Weight: nb.Cost}
			pending[e]++
			out = append(out, e)
		}
	}
	return out
}

// Asymmetric returns the directed edges that have no mirror entry with the same
// weight. An empty result means the graph satisfies the undirected invariant.
func (g *AdjacencyList[N]) Asymmetric() []Edge[N] {
	var out []Edge[N]
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		for _, nb := range pair.Value {
			if !g.hasEdge(nb.ID, pair.Key, nb.Cost) {
				out = append(out, Edge[N]{From: pair.Key, To: nb.ID, Weight: nb.Cost})
			}
		}
	}
	return out
}

func (g *AdjacencyList[N]) hasEdge(from, to N, weight float64) bool {
	for _, nb := range g.Neighbors(from) {
		if nb.ID == to && nb.Cost == weight {
			return true
		}
	}
	return false
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1)
}
