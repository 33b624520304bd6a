package routesearch

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrMissingCoordinate matches any *MissingCoordinateError.
	ErrMissingCoordinate = errors.New("missing coordinate")
	// ErrInvalidEstimate is returned when a heuristic yields a negative or NaN value.
	ErrInvalidEstimate = errors.New("heuristic estimate must be a non-negative number")
)

// Heuristic returns the estimated cost from node a to node b. It must never
// overestimate the true remaining cost for A* results to be optimal.
type Heuristic[N comparable] func(from N, to N) (float64, error)

// MissingCoordinateError reports a node that has no entry in a coordinate table.
type MissingCoordinateError[N comparable] struct {
	Node N
}

func (e *MissingCoordinateError[N]) Error() string {
	return fmt.Sprintf("missing coordinate for node %v", e.Node)
}

// Is lets errors.Is(err, ErrMissingCoordinate) match regardless of N.
func (e *MissingCoordinateError[N]) Is(target error) bool {
	return target == ErrMissingCoordinate
}

// Coordinates maps nodes to 2D points. Nodes without an entry are allowed in the
// graph but make coordinate-based heuristics fail.
type Coordinates[N comparable] map[N]r2.Vec

// Lookup returns the point of node or a *MissingCoordinateError.
func (c Coordinates[N]) Lookup(node N) (r2.Vec, error) {
	p, ok := c[node]
	if !ok {
		return r2.Vec{}, &MissingCoordinateError[N]{Node: node}
	}
	return p, nil
}

func (c Coordinates[N]) delta(a, b N) (r2.Vec, error) {
	pa, err := c.Lookup(a)
	if err != nil {
		return r2.Vec{}, err
	}
	pb, err := c.Lookup(b)
	if err != nil {
		return r2.Vec{}, err
	}
	return r2.Sub(pa, pb), nil
}

// Euclidean estimates the straight-line distance between two nodes.
func Euclidean[N comparable](coords Coordinates[N]) Heuristic[N] {
	return func(from, to N) (float64, error) {
		d, err := coords.delta(from, to)
		if err != nil {
			return 0, err
		}
		return r2.Norm(d), nil
	}
}

// Manhattan estimates the sum of absolute coordinate differences.
func Manhattan[N comparable](coords Coordinates[N]) Heuristic[N] {
	return func(from, to N) (float64, error) {
		d, err := coords.delta(from, to)
		if err != nil {
			return 0, err
		}
		return math.Abs(d.X) + math.Abs(d.Y), nil
	}
}

// Zero never estimates any remaining cost, which turns A* into uniform-cost search.
func Zero[N comparable]() Heuristic[N] {
	return func(N, N) (float64, error) { return 0, nil }
}

// estimate calls h and rejects values A* cannot order by.
func estimate[N comparable](h Heuristic[N], from, to N) (float64, error) {
	v, err := h(from, to)
	if err != nil {
		return 0, fmt.Errorf("estimate %v -> %v: %w", from, to, err)
	}
	if v < 0 || math.IsNaN(v) {
		return 0, fmt.Errorf("estimate %v -> %v = %v: %w", from, to, v, ErrInvalidEstimate)
	}
	return v, nil
}
