package plan

import (
	"container/heap"
	"time"

	"github.com/shrdlite/core/world"
)

// Status is the outcome of a Search call.
type Status int

const (
	StatusSuccess Status = iota
	StatusTimeout
	StatusFailure
)

// SearchResult is what Search returns: the outcome, the reconstructed
// action string on success, its cost, and the bookkeeping stats §4.7/§7
// ask the planner to report.
type SearchResult struct {
	Status    Status
	Actions   string
	Cost      int
	NodesSeen int
	Reopened  int
}

type searchNode struct {
	state     world.World
	g         int
	action    byte
	parentKey string
}

// pqItem is a frontier entry; stale entries (superseded by a cheaper
// reopen of the same key) are detected and skipped on pop rather than
// removed from the heap, since container/heap has no efficient decrease-key.
type pqItem struct {
	key string
	f   int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Search runs §4.7's A* engine from start to any state satisfying goal,
// reopening nodes as needed since the heuristic bank isn't guaranteed
// consistent, and bailing out to StatusTimeout once deadline passes.
func Search(start world.World, goal world.DNFFormula, timeout time.Duration) SearchResult {
	deadline := time.Now().Add(timeout)

	nodes := map[string]*searchNode{}
	bestF := map[string]int{}
	hCache := map[string]int{}

	startKey := world.NodeKey(start)
	h0 := cachedHeuristic(hCache, start, startKey, goal)
	nodes[startKey] = &searchNode{state: start, g: 0}
	bestF[startKey] = h0

	frontier := &priorityQueue{{key: startKey, f: h0}}
	heap.Init(frontier)

	reopened := 0

	for frontier.Len() > 0 {
		if time.Now().After(deadline) {
			return SearchResult{Status: StatusTimeout, NodesSeen: len(nodes), Reopened: reopened}
		}

		item := heap.Pop(frontier).(*pqItem)
		if item.f > bestF[item.key] {
			continue // stale: this key was reopened with a better f since this entry was pushed
		}
		cur := nodes[item.key]

		if goalSatisfied(cur.state, goal) {
			return SearchResult{
				Status:    StatusSuccess,
				Actions:   reconstruct(nodes, item.key),
				Cost:      cur.g,
				NodesSeen: len(nodes),
				Reopened:  reopened,
			}
		}

		for _, edge := range Successors(cur.state) {
			childKey := world.NodeKey(edge.State)
			gPrime := cur.g + edge.Cost
			h := cachedHeuristic(hCache, edge.State, childKey, goal)
			fPrime := gPrime + h

			prevF, seen := bestF[childKey]
			if seen && fPrime >= prevF {
				continue
			}
			if seen {
				reopened++
			}
			bestF[childKey] = fPrime
			nodes[childKey] = &searchNode{state: edge.State, g: gPrime, action: edge.Action, parentKey: item.key}
			heap.Push(frontier, &pqItem{key: childKey, f: fPrime})
		}
	}

	return SearchResult{Status: StatusFailure, NodesSeen: len(nodes), Reopened: reopened}
}

func cachedHeuristic(cache map[string]int, state world.World, key string, goal world.DNFFormula) int {
	if v, ok := cache[key]; ok {
		return v
	}
	v := formulaHeuristic(state, goal)
	cache[key] = v
	return v
}

// reconstruct walks parent pointers from the goal node back to the start
// (parentKey == "" marks the start) and reverses the collected actions.
func reconstruct(nodes map[string]*searchNode, key string) string {
	var actions []byte
	for {
		n := nodes[key]
		if n.parentKey == "" {
			break
		}
		actions = append(actions, n.action)
		key = n.parentKey
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return string(actions)
}
