package walker

import (
	"cmp"

	"github.com/joshuapare/treekit/tree"
)

// ShortestPaths computes BFS distances from startKey over the tree's
// parent→child edges only (never upward or across siblings), with every edge
// weighted 1, then reconstructs the shortest paths from startKey to endKey
// by walking predecessor chains backward.
//
// The result maps path length (in nodes) to one root-to-end path of that
// length. While relaxing, every predecessor achieving the current best
// distance is recorded, so equal-length paths each get reconstructed — but
// because the result is keyed by length, only the last path reconstructed
// for a given length survives. That overwrite-on-tie contract is deliberate
// and kept as-is; callers needing every tied path must key differently.
//
// ok=false means endKey is unreachable from startKey by downward edges.
func ShortestPaths[K cmp.Ordered, T any](t *tree.Tree[K, T], startKey, endKey K) (map[int][]K, bool) {
	distances := map[K]int{startKey: 0}
	predecessors := make(map[K][]K)

	queue := make([]K, 0, initialStackCapacity)
	queue = append(queue, startKey)

	for head := 0; head < len(queue); head++ {
		currentKey := queue[head]
		currentDistance := distances[currentKey]

		node, ok := t.Find(currentKey)
		if !ok {
			continue
		}
		for _, child := range node.Children() {
			childKey := child.Key()
			newDistance := currentDistance + 1

			childDistance, seen := distances[childKey]
			switch {
			case !seen || newDistance < childDistance:
				distances[childKey] = newDistance
				predecessors[childKey] = []K{currentKey}
				queue = append(queue, childKey)
			case newDistance == childDistance:
				// Additional predecessor for a tied shortest path.
				predecessors[childKey] = append(predecessors[childKey], currentKey)
			}
		}
	}

	if _, reachable := distances[endKey]; !reachable {
		return nil, false
	}

	paths := make(map[int][]K)
	tracePaths(endKey, predecessors, nil, paths)
	return paths, true
}

// tracePaths walks predecessor chains backward from key; each chain that
// reaches a node with no recorded predecessor is reversed into start-to-end
// order and recorded under its length.
func tracePaths[K cmp.Ordered](key K, predecessors map[K][]K, current []K, paths map[int][]K) {
	current = append(current, key)

	preds, ok := predecessors[key]
	if !ok {
		path := make([]K, len(current))
		for i, k := range current {
			path[len(current)-1-i] = k
		}
		paths[len(path)] = path
		return
	}
	for _, pred := range preds {
		tracePaths(pred, predecessors, current, paths)
	}
}
