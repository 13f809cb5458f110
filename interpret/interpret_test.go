package interpret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrdlite/core/world"
)

func takeBall() world.Command {
	return world.TakeCommand{Entity: world.Entity{Quantifier: world.Any, Object: world.SimpleObject{Form: world.Ball}}}
}

func TestInterpret_TakeCommand_ProducesHoldingDisjuncts(t *testing.T) {
	w := world.SmallWorld()
	results, err := Interpret([]Parse{{Command: takeBall()}}, w, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	goal := results[0].Goal
	assert.Len(t, goal, 2) // ball1, ball2
	for _, conj := range goal {
		require.Len(t, conj, 1)
		assert.Equal(t, world.Holding, conj[0].Relation)
	}
}

func TestInterpret_TakeCommand_RejectsFloor(t *testing.T) {
	w := world.SmallWorld()
	cmd := world.TakeCommand{Entity: world.Entity{Quantifier: world.Any, Object: world.SimpleObject{Form: world.Floor}}}
	_, err := Interpret([]Parse{{Command: cmd}}, w, nil)
	assert.Error(t, err)
}

func TestInterpret_TakeCommand_RejectsTheWithMultipleReferents(t *testing.T) {
	w := world.SmallWorld()
	cmd := world.TakeCommand{Entity: world.Entity{Quantifier: world.The, Object: world.SimpleObject{Form: world.Box}}}
	_, err := Interpret([]Parse{{Command: cmd}}, w, nil)
	assert.Error(t, err)
}

func TestInterpret_DropCommand_RequiresHoldingSomething(t *testing.T) {
	w := world.SmallWorld() // not holding anything
	cmd := world.DropCommand{Location: world.Location{
		Relation: world.Ontop,
		Entity:   world.Entity{Quantifier: world.Any, Object: world.SimpleObject{Form: world.Box}},
	}}
	_, err := Interpret([]Parse{{Command: cmd}}, w, nil)
	assert.Error(t, err)
}

func TestInterpret_DropCommand_Succeeds(t *testing.T) {
	w := world.SmallWorld()
	w.Stacks[3] = w.Stacks[3][:1] // pick ball2 off of box2
	w.Holding = "ball2"
	cmd := world.DropCommand{Location: world.Location{
		Relation: world.Inside,
		Entity:   world.Entity{Quantifier: world.Any, Object: world.SimpleObject{Form: world.Box}},
	}}
	results, err := Interpret([]Parse{{Command: cmd}}, w, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].Goal)
}

func TestInterpret_MoveCommand_Succeeds(t *testing.T) {
	w := world.SmallWorld()
	cmd := world.MoveCommand{
		Entity: world.Entity{Quantifier: world.The, Object: world.SimpleObject{Form: world.Box, Color: world.Blue}},
		Location: world.Location{
			Relation: world.Ontop,
			Entity:   world.Entity{Quantifier: world.The, Object: world.SimpleObject{Form: world.Table}},
		},
	}
	results, err := Interpret([]Parse{{Command: cmd}}, w, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].Goal)
}

func TestInterpret_AllParsesFail_JoinsErrors(t *testing.T) {
	w := world.SmallWorld()
	floorTake := world.TakeCommand{Entity: world.Entity{Quantifier: world.Any, Object: world.SimpleObject{Form: world.Floor}}}
	_, err := Interpret([]Parse{{Command: floorTake}, {Command: floorTake}}, w, nil)
	require.Error(t, err)
	assert.Equal(t, "I cannot take the floor", err.Error())
}
