// Package plan implements §4.5-4.8's planner: the implicit world-state
// graph, the goal test, an A* search engine and its per-relation
// heuristic bank.
package plan

import (
	"github.com/shrdlite/core/physics"
	"github.com/shrdlite/core/resolve"
	"github.com/shrdlite/core/world"
)

// Edge is one successor of a world state: the action character that
// produces it and its cost (always 1, per §4.5).
type Edge struct {
	Action byte
	State  world.World
	Cost   int
}

// Successors returns every legal l/r/p/d move out of w.
func Successors(w world.World) []Edge {
	var edges []Edge
	if w.Arm > 0 {
		edges = append(edges, Edge{Action: 'l', State: moveArm(w, -1), Cost: 1})
	}
	if w.Arm < len(w.Stacks)-1 {
		edges = append(edges, Edge{Action: 'r', State: moveArm(w, 1), Cost: 1})
	}
	if w.Holding == "" && len(w.Stacks[w.Arm]) > 0 {
		edges = append(edges, Edge{Action: 'p', State: pick(w), Cost: 1})
	}
	if w.Holding != "" {
		if child, ok := drop(w); ok {
			edges = append(edges, Edge{Action: 'd', State: child, Cost: 1})
		}
	}
	return edges
}

func moveArm(w world.World, delta int) world.World {
	child := w.Clone()
	child.Arm += delta
	return child
}

func pick(w world.World) world.World {
	child := w.Clone()
	stack := child.Stacks[child.Arm]
	top := stack[len(stack)-1]
	child.Stacks[child.Arm] = stack[:len(stack)-1]
	child.Holding = top
	return child
}

// drop reports whether the arm may release whatever it's holding onto
// the top of its current stack (or the floor, for an empty stack), and
// if so the resulting state.
func drop(w world.World) (world.World, bool) {
	held := w.Holding
	a, ok := w.Lookup(held)
	if !ok {
		return world.World{}, false
	}
	stack := w.Stacks[w.Arm]
	targetID := world.FloorID
	if len(stack) > 0 {
		targetID = stack[len(stack)-1]
	}
	b, ok := w.Lookup(targetID)
	if !ok {
		return world.World{}, false
	}
	if err := physics.LegalDrop(a, held, b, targetID); err != nil {
		return world.World{}, false
	}
	child := w.Clone()
	child.Stacks[child.Arm] = append(child.Stacks[child.Arm], held)
	child.Holding = ""
	return child, true
}

// goalSatisfied implements §4.6: a state satisfies the DNF iff some
// conjunction's every literal is satisfied.
func goalSatisfied(w world.World, goal world.DNFFormula) bool {
	for _, conj := range goal {
		if conjunctionSatisfied(w, conj) {
			return true
		}
	}
	return false
}

func conjunctionSatisfied(w world.World, conj world.Conjunction) bool {
	for _, lit := range conj {
		if !literalHolds(w, lit) {
			return false
		}
	}
	return true
}

func literalHolds(w world.World, lit world.Literal) bool {
	var holds bool
	if lit.Relation == world.Holding {
		holds = w.Holding == lit.A
	} else {
		holds = resolve.Positional(w, lit.Relation, lit.A, lit.B)
	}
	if lit.Negated {
		return !holds
	}
	return holds
}
