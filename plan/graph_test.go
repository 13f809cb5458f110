package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrdlite/core/world"
)

func TestSuccessors_ArmBounds(t *testing.T) {
	w := world.SmallWorld()
	w.Arm = 0
	edges := Successors(w)
	actions := actionSet(edges)
	assert.False(t, actions['l'])
	assert.True(t, actions['r'])

	w.Arm = len(w.Stacks) - 1
	edges = Successors(w)
	actions = actionSet(edges)
	assert.True(t, actions['l'])
	assert.False(t, actions['r'])
}

func TestSuccessors_PickRequiresEmptyHandAndNonemptyStack(t *testing.T) {
	w := world.SmallWorld()
	w.Arm = 0 // table1 column, non-empty, hand empty
	edges := Successors(w)
	assert.True(t, actionSet(edges)['p'])

	w.Stacks[0] = w.Stacks[0][:0]
	w.Holding = "table1"
	edges = Successors(w)
	assert.False(t, actionSet(edges)['p'])
}

func TestSuccessors_DropRequiresHoldingAndLegalTarget(t *testing.T) {
	w := world.SmallWorld()
	w.Arm = 0
	edges := Successors(w)
	assert.False(t, actionSet(edges)['d'], "can't drop while holding nothing")

	// Hold a large ball over the small blue box (col2) — illegal (too large).
	w.Stacks[1] = w.Stacks[1][:0]
	w.Holding = "ball1"
	w.Arm = 2
	edges = Successors(w)
	assert.False(t, actionSet(edges)['d'])

	// Move to column 1, emptied above by lifting ball1 — a drop onto the floor is legal.
	w.Arm = 1 // now-empty column
	edges = Successors(w)
	assert.True(t, actionSet(edges)['d'])
}

func TestPick_MovesTopOfStackIntoHolding(t *testing.T) {
	w := world.SmallWorld()
	w.Arm = 3 // box2, ball2
	child := pick(w)
	require.Equal(t, "ball2", child.Holding)
	assert.Equal(t, []string{"box2"}, child.Stacks[3])
}

func TestGoalSatisfied_HoldingLiteral(t *testing.T) {
	w := world.SmallWorld()
	w.Holding = "ball1"
	goal := world.DNFFormula{{{Relation: world.Holding, A: "ball1"}}}
	assert.True(t, goalSatisfied(w, goal))

	goal = world.DNFFormula{{{Relation: world.Holding, A: "ball2"}}}
	assert.False(t, goalSatisfied(w, goal))
}

func TestGoalSatisfied_PositionalLiteral(t *testing.T) {
	w := world.SmallWorld()
	goal := world.DNFFormula{{{Relation: world.Above, A: "ball2", B: "box2"}}}
	assert.True(t, goalSatisfied(w, goal))
}

func TestGoalSatisfied_AnyConjunctionSuffices(t *testing.T) {
	w := world.SmallWorld()
	goal := world.DNFFormula{
		{{Relation: world.Holding, A: "ball1"}}, // false
		{{Relation: world.Above, A: "ball2", B: "box2"}}, // true
	}
	assert.True(t, goalSatisfied(w, goal))
}

func actionSet(edges []Edge) map[byte]bool {
	set := map[byte]bool{}
	for _, e := range edges {
		set[e.Action] = true
	}
	return set
}
