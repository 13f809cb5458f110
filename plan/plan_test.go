package plan

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrdlite/core/interpret"
	"github.com/shrdlite/core/world"
)

func TestPlan_AlreadySatisfiedUsesSentinel(t *testing.T) {
	w := world.SmallWorld()
	in := interpret.Interpretation{
		Parse: interpret.Parse{Command: world.TakeCommand{}},
		Goal:  world.DNFFormula{{{Relation: world.Above, A: "ball2", B: "box2"}}},
	}
	results, err := Plan([]interpret.Interpretation{in}, w, time.Second, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, AlreadySatisfied, results[0].Plan)
	assert.Equal(t, 0, results[0].Cost)
}

func TestPlan_FindsAPlanWithPositiveCost(t *testing.T) {
	w := world.SmallWorld()
	in := interpret.Interpretation{
		Parse: interpret.Parse{Command: world.TakeCommand{}},
		Goal:  world.DNFFormula{{{Relation: world.Holding, A: "ball1"}}},
	}
	results, err := Plan([]interpret.Interpretation{in}, w, time.Second, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "rp", results[0].Plan)
	assert.Equal(t, 2, results[0].Cost)
}

func TestPlanOne_UnreachableGoalIsErrFailure(t *testing.T) {
	w := world.World{
		Stacks:  [][]string{{"a"}},
		Arm:     0,
		Objects: map[string]world.Object{"a": {Form: world.Table, Size: world.Large, Color: world.Red}},
	}
	in := interpret.Interpretation{
		Parse: interpret.Parse{Command: world.TakeCommand{}},
		Goal:  world.DNFFormula{{{Relation: world.Holding, A: "ghost"}}},
	}
	_, err := planOne(in, w, time.Second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFailure))
	assert.False(t, errors.Is(err, ErrTimeout))
}

func TestPlanOne_ExpiredBudgetIsErrTimeout(t *testing.T) {
	w := world.SmallWorld()
	in := interpret.Interpretation{
		Parse: interpret.Parse{Command: world.TakeCommand{}},
		Goal:  world.DNFFormula{{{Relation: world.Holding, A: "ball1"}}},
	}
	_, err := planOne(in, w, -time.Second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.False(t, errors.Is(err, ErrFailure))
}

func TestPlan_AllFailJoinsErrors(t *testing.T) {
	w := world.World{
		Stacks:  [][]string{{"a"}},
		Arm:     0,
		Objects: map[string]world.Object{"a": {Form: world.Table}},
	}
	in := interpret.Interpretation{
		Parse: interpret.Parse{Command: world.TakeCommand{}},
		Goal:  world.DNFFormula{{{Relation: world.Holding, A: "ghost"}}},
	}
	_, err := Plan([]interpret.Interpretation{in}, w, time.Second, nil)
	assert.Error(t, err)
}

func TestExplain_SentinelPassesThrough(t *testing.T) {
	r := Result{Plan: AlreadySatisfied}
	assert.Equal(t, AlreadySatisfied, Explain(r))
}

func TestExplain_RendersOneLinePerAction(t *testing.T) {
	r := Result{Plan: "rp"}
	explained := Explain(r)
	assert.Contains(t, explained, "move arm right")
	assert.Contains(t, explained, "pick up")
}
