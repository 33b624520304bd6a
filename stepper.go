package routesearch

import (
	"container/heap"
	"slices"
	"time"

	"github.com/pdrpinto/routesearch/internal"
)

// StepSnapshot exposes the state of the search after one settlement.
type StepSnapshot[N comparable] struct {
	// Current is the node settled by this step. It is the zero value when the step
	// found the frontier already empty.
	Current  N
	G        float64
	Priority float64
	// Discarded counts stale frontier entries skipped before Current was popped.
	Discarded    int
	FrontierSize int
	SettledCount int
	StepIndex    int
	Done         bool
	Found        bool
	// Path is set on the step that settles the goal.
	Path []N
}

// Stepper runs an A* search one settled node at a time. Search state belongs to
// the Stepper and must not be shared between goroutines.
type Stepper[N comparable] struct {
	graph     Graph[N]
	start     N
	goal      N
	heuristic Heuristic[N]
	observer  Observer[N]

	frontier PriorityQueue[N]
	sequence uint64
	gScore   map[N]float64
	cameFrom map[N]N
	settled  map[N]bool
	order    []N

	stepCount int
	elapsed   time.Duration
	done      bool
	found     bool
	err       error
}

// NewStepper prepares an A* search from start to goal. It fails only when the
// heuristic cannot estimate the start node.
func NewStepper[N comparable](
	graph Graph[N],
	start N,
	goal N,
	heuristic Heuristic[N],
	options ...Option[N],
) (*Stepper[N], error) {
	began := time.Now()
	opts := buildOptions(options)

	s := &Stepper[N]{
		graph:     graph,
		start:     start,
		goal:      goal,
		heuristic: heuristic,
		observer:  opts.observer(),
		frontier:  make(PriorityQueue[N], 0),
		gScore:    map[N]float64{start: 0},
		cameFrom:  make(map[N]N),
		settled:   make(map[N]bool),
	}

	h, err := estimate(heuristic, start, goal)
	if err != nil {
		return nil, err
	}
	heap.Init(&s.frontier)
	heap.Push(&s.frontier, PriorityQueueItem[N]{Priority: h, Sequence: s.sequence, Node: start})

	s.elapsed = time.Since(began)
	return s, nil
}

// Done reports whether the search has finished, successfully or not.
func (s *Stepper[N]) Done() bool { return s.done }

// Step pops frontier entries until one settles a new node, then expands it.
// After the search is done, Step keeps returning the final state.
func (s *Stepper[N]) Step() (StepSnapshot[N], error) {
	if s.done {
		return StepSnapshot[N]{
			Done:         true,
			Found:        s.found,
			FrontierSize: s.frontier.Len(),
			SettledCount: len(s.order),
			StepIndex:    s.stepCount,
		}, s.err
	}

	began := time.Now()
	defer func() { s.elapsed += time.Since(began) }()

	discarded := 0
	for s.frontier.Len() > 0 {
		item := heap.Pop(&s.frontier).(PriorityQueueItem[N])
		current := item.Node

		// Skip stale entries left behind by later, cheaper relaxations.
		if s.settled[current] {
			discarded++
			continue
		}
		s.settled[current] = true
		s.order = append(s.order, current)
		s.stepCount++

		currentG := s.gScore[current]
		s.observer.NodeSettled(SettleEvent[N]{
			Node:         current,
			G:            currentG,
			Priority:     item.Priority,
			Step:         len(s.order),
			FrontierSize: s.frontier.Len(),
		})

		snapshot := StepSnapshot[N]{
			Current:   current,
			G:         currentG,
			Priority:  item.Priority,
			Discarded: discarded,
			StepIndex: s.stepCount,
		}

		if current == s.goal {
			s.done = true
			s.found = true
			snapshot.Done = true
			snapshot.Found = true
			snapshot.Path = internal.ReconstructPath(s.cameFrom, current, s.start)
			snapshot.FrontierSize = s.frontier.Len()
			snapshot.SettledCount = len(s.order)
			return snapshot, nil
		}

		if err := s.expand(current, currentG); err != nil {
			s.done = true
			s.err = err
			snapshot.Done = true
			snapshot.FrontierSize = s.frontier.Len()
			snapshot.SettledCount = len(s.order)
			return snapshot, err
		}

		snapshot.FrontierSize = s.frontier.Len()
		snapshot.SettledCount = len(s.order)
		return snapshot, nil
	}

	s.done = true
	return StepSnapshot[N]{
		Discarded:    discarded,
		SettledCount: len(s.order),
		StepIndex:    s.stepCount,
		Done:         true,
	}, nil
}

// expand relaxes every edge leaving current. Old frontier entries are left in
// place; a cheaper path simply pushes a new entry.
func (s *Stepper[N]) expand(current N, currentG float64) error {
	for _, neighbor := range s.graph.Neighbors(current) {
		tentativeG := currentG + neighbor.Cost
		if previousG, known := s.gScore[neighbor.ID]; known && tentativeG >= previousG {
			continue
		}
		h, err := estimate(s.heuristic, neighbor.ID, s.goal)
		if err != nil {
			return err
		}
		s.gScore[neighbor.ID] = tentativeG
		s.cameFrom[neighbor.ID] = current

		s.sequence++
		f := tentativeG + h
		heap.Push(&s.frontier, PriorityQueueItem[N]{Priority: f, Sequence: s.sequence, Node: neighbor.ID})
		s.observer.NeighborRelaxed(RelaxEvent[N]{
			From:     current,
			To:       neighbor.ID,
			EdgeCost: neighbor.Cost,
			G:        tentativeG,
			H:        h,
			Priority: f,
			Sequence: s.sequence,
		})
	}
	return nil
}

// Result returns the outcome accumulated so far. Path and cost are only set once
// the goal has been settled.
func (s *Stepper[N]) Result() Result[N] {
	res := Result[N]{
		Algorithm:    AlgorithmAStar,
		SettledCount: len(s.order),
		SettledOrder: slices.Clone(s.order),
		Discovered:   len(s.gScore),
		Elapsed:      s.elapsed,
	}
	if s.found {
		res.Found = true
		res.Path = internal.ReconstructPath(s.cameFrom, s.goal, s.start)
		res.TotalCost = s.gScore[s.goal]
		res.HasCost = true
	}
	return res
}
