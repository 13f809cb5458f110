package plan

import "github.com/shrdlite/core/world"

// envisionEdge is one transition in a bounded envisionment.
type envisionEdge struct {
	from   string
	action byte
	to     string
}

// envision performs a bounded breadth-first enumeration of every state
// reachable from start within limit actions, returning every edge seen.
// It exists for the plan package's own tests, to cross-check A*'s
// optimal cost against exhaustive search on small worlds — it has no
// heuristic and no goal test, so it doesn't scale past toy fixtures.
func envision(start world.World, limit int) []envisionEdge {
	startKey := world.NodeKey(start)
	visited := map[string]bool{startKey: true}
	frontier := []world.World{start}
	var edges []envisionEdge

	for depth := 0; depth < limit && len(frontier) > 0; depth++ {
		var next []world.World
		for _, state := range frontier {
			fromKey := world.NodeKey(state)
			for _, e := range Successors(state) {
				toKey := world.NodeKey(e.State)
				edges = append(edges, envisionEdge{from: fromKey, action: e.Action, to: toKey})
				if !visited[toKey] {
					visited[toKey] = true
					next = append(next, e.State)
				}
			}
		}
		frontier = next
	}
	return edges
}
