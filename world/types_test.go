package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorld_Clone_DeepCopiesStacksSharesObjects(t *testing.T) {
	w := SmallWorld()
	clone := w.Clone()

	clone.Stacks[0] = append(clone.Stacks[0], "intruder")
	assert.NotEqual(t, w.Stacks[0], clone.Stacks[0], "mutating the clone's stack must not affect the original")

	// The catalogue must be shared, not copied.
	clone.Objects["table1"] = Object{Form: Ball}
	assert.Equal(t, Ball, w.Objects["table1"].Form, "Objects must be shared between clones")
}

func TestWorld_Lookup_Floor(t *testing.T) {
	w := SmallWorld()
	obj, ok := w.Lookup(FloorID)
	require.True(t, ok)
	assert.Equal(t, Floor, obj.Form)
}

func TestWorld_Position_FloorAndMissing(t *testing.T) {
	w := SmallWorld()
	col, row := w.Position(FloorID)
	assert.Equal(t, -1, col)
	assert.Equal(t, -1, row)

	col, row = w.Position("no-such-object")
	assert.Equal(t, -1, col)
	assert.Equal(t, -1, row)
}

func TestWorld_Position_OnStack(t *testing.T) {
	w := SmallWorld()
	col, row := w.Position("ball2")
	assert.Equal(t, 3, col)
	assert.Equal(t, 1, row)
}

func TestWorld_OnTopCount(t *testing.T) {
	w := SmallWorld()
	assert.Equal(t, 1, w.OnTopCount("box2"), "ball2 sits on top of box2")
	assert.Equal(t, 0, w.OnTopCount("ball2"), "nothing sits on top of ball2")
	assert.Equal(t, 0, w.OnTopCount(FloorID))
}
