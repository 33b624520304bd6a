package routesearch

// PriorityQueueItem is a frontier entry. Entries order lexicographically by
// (Priority, Sequence); Sequence is the insertion counter, so equal priorities pop
// in the order they were pushed.
type PriorityQueueItem[N comparable] struct {
	Priority float64
	Sequence uint64
	Node     N
}

// PriorityQueue is a min-heap of frontier entries for use with container/heap.
// Stale entries are never removed early; the search discards them when popped.
type PriorityQueue[N comparable] []PriorityQueueItem[N]

func (queue PriorityQueue[N]) Len() int { return len(queue) }

func (queue PriorityQueue[N]) Less(i, j int) bool {
	if queue[i].Priority != queue[j].Priority {
		return queue[i].Priority < queue[j].Priority
	}
	return queue[i].Sequence < queue[j].Sequence
}

func (queue PriorityQueue[N]) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue[N]) Push(x any) {
	*queue = append(*queue, x.(PriorityQueueItem[N]))
}

func (queue *PriorityQueue[N]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = PriorityQueueItem[N]{}
	*queue = oldQueue[:n-1]
	return item
}
