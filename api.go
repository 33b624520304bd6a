package routesearch

import (
	"time"
)

// Algorithm names recorded in Result.Algorithm.
const (
	AlgorithmAStar = "A*"
	AlgorithmBFS   = "BFS"
)

// Result contains the outcome of a search.
type Result[N comparable] struct {
	Algorithm string
	// Path runs from start to goal; nil when no path was found.
	Path  []N
	Found bool
	// TotalCost is the summed edge weight of Path. HasCost is false when no path
	// was found and always false for BFS, which ignores weights.
	TotalCost float64
	HasCost   bool
	// SettledCount is the number of nodes expanded; SettledOrder lists them in
	// the order they were expanded.
	SettledCount int
	SettledOrder []N
	// Discovered is the number of distinct nodes that were ever put on the frontier.
	Discovered int
	Elapsed    time.Duration
}

// Options defines parameters for the search.
type Options[N comparable] struct {
	Observers []Observer[N]
}

// Option is a function that modifies Options.
type Option[N comparable] func(*Options[N])

// WithObserver registers observers notified when nodes are settled and neighbors
// relaxed. Observers run in registration order.
func WithObserver[N comparable](observers ...Observer[N]) Option[N] {
	return func(options *Options[N]) {
		for _, o := range observers {
			if o != nil {
				options.Observers = append(options.Observers, o)
			}
		}
	}
}

func buildOptions[N comparable](options []Option[N]) Options[N] {
	var searchOptions Options[N]
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

func (o Options[N]) observer() Observer[N] {
	switch len(o.Observers) {
	case 0:
		return nopObserver[N]{}
	case 1:
		return o.Observers[0]
	default:
		return multiObserver[N](o.Observers)
	}
}

// AStar runs A* from start to goal. Equal priorities are broken by insertion
// order, so identical inputs always settle nodes in the same sequence.
//
// An unreachable or unknown goal is not an error: the Result has Found == false.
// Errors come only from the heuristic and abort the search.
func AStar[N comparable](
	graph Graph[N],
	start N,
	goal N,
	heuristic Heuristic[N],
	options ...Option[N],
) (Result[N], error) {
	began := time.Now()

	stepper, err := NewStepper(graph, start, goal, heuristic, options...)
	if err != nil {
		return Result[N]{}, err
	}
	for !stepper.Done() {
		if _, err := stepper.Step(); err != nil {
			return Result[N]{}, err
		}
	}

	res := stepper.Result()
	res.Elapsed = time.Since(began)
	return res, nil
}
