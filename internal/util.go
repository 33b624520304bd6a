package internal

// ReconstructPath follows predecessor links from goal back to start and returns
// the nodes in start-to-goal order. The start node has no entry in predecessors.
// The walk also stops at any node without a predecessor, so a broken chain yields
// a path that does not begin at start; callers check the first element.
func ReconstructPath[NodeType comparable](
	predecessors map[NodeType]NodeType,
	goal NodeType,
	start NodeType,
) []NodeType {
	path := []NodeType{goal}
	current := goal
	for current != start {
		previousNode, exists := predecessors[current]
		if !exists || len(path) > len(predecessors) {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
