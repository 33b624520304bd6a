package routesearch

// SettleEvent is emitted when a node is popped from the frontier and finalized.
type SettleEvent[N comparable] struct {
	Node N
	// G is the cost from the start; for BFS it is the hop count.
	G float64
	// Priority is the frontier key the node was popped with (g+h for A*).
	Priority float64
	// Step is the 1-based position of Node in the settled order.
	Step int
	// FrontierSize is the number of entries left in the frontier after the pop.
	FrontierSize int
}

// RelaxEvent is emitted when a neighbor receives a better cost and a new frontier
// entry is pushed for it.
type RelaxEvent[N comparable] struct {
	From     N
	To       N
	EdgeCost float64
	// G is the new cost of To from the start; for BFS it is the hop count.
	G float64
	// H is the heuristic estimate from To to the goal; always 0 for BFS.
	H        float64
	Priority float64
	Sequence uint64
}

// Observer receives search progress. Calls happen synchronously on the search
// goroutine, in the order the events occur.
type Observer[N comparable] interface {
	NodeSettled(SettleEvent[N])
	NeighborRelaxed(RelaxEvent[N])
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs[N comparable] struct {
	OnSettle func(SettleEvent[N])
	OnRelax  func(RelaxEvent[N])
}

func (o ObserverFuncs[N]) NodeSettled(e SettleEvent[N]) {
	if o.OnSettle != nil {
		o.OnSettle(e)
	}
}

func (o ObserverFuncs[N]) NeighborRelaxed(e RelaxEvent[N]) {
	if o.OnRelax != nil {
		o.OnRelax(e)
	}
}

type multiObserver[N comparable] []Observer[N]

func (m multiObserver[N]) NodeSettled(e SettleEvent[N]) {
	for _, o := range m {
		o.NodeSettled(e)
	}
}

func (m multiObserver[N]) NeighborRelaxed(e RelaxEvent[N]) {
	for _, o := range m {
		o.NeighborRelaxed(e)
	}
}

type nopObserver[N comparable] struct{}

func (nopObserver[N]) NodeSettled(SettleEvent[N])     {}
func (nopObserver[N]) NeighborRelaxed(RelaxEvent[N]) {}
