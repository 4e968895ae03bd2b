package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerAndKeyboardProduceSameMove(t *testing.T) {
	pointer := New(Active)
	pointer.SetItems([]int{1, 2, 3, 4})
	require.True(t, pointer.Begin(1))
	require.True(t, pointer.Over(2))
	require.True(t, pointer.Over(3))
	pm, ok := pointer.Drop()
	require.True(t, ok)

	keys := New(Active)
	keys.SetItems([]int{1, 2, 3, 4})
	require.True(t, keys.Begin(1))
	keys.Step(1)
	keys.Step(1)
	km, ok := keys.Drop()
	require.True(t, ok)

	assert.Equal(t, Move{ActiveID: 1, OverID: 3}, pm)
	assert.Equal(t, pm, km)
	assert.False(t, pointer.Dragging())
}

func TestOverIgnoresOtherList(t *testing.T) {
	c := New(Completed)
	c.SetItems([]int{5, 6})
	require.True(t, c.Begin(5))
	assert.False(t, c.Over(1))
	assert.Equal(t, 5, c.OverID())

	_, ok := c.Drop()
	assert.False(t, ok, "drop on itself is not a move")
}

func TestBeginRejectsForeignID(t *testing.T) {
	c := New(Active)
	c.SetItems([]int{1, 2})
	assert.False(t, c.Begin(9))
	assert.False(t, c.Dragging())
	assert.False(t, c.Over(2))
	assert.False(t, c.Step(1))
}

func TestStepClamps(t *testing.T) {
	c := New(Active)
	c.SetItems([]int{1, 2, 3})
	require.True(t, c.Begin(2))
	c.Step(-5)
	assert.Equal(t, 1, c.OverID())
	c.Step(10)
	assert.Equal(t, 3, c.OverID())
}

func TestCancel(t *testing.T) {
	c := New(Active)
	c.SetItems([]int{1, 2})
	c.Begin(1)
	c.Over(2)
	c.Cancel()
	_, ok := c.Drop()
	assert.False(t, ok)
}

func TestSetItemsWhileDragging(t *testing.T) {
	c := New(Active)
	c.SetItems([]int{1, 2, 3})
	c.Begin(1)
	c.Over(3)

	c.SetItems([]int{1, 2})
	assert.True(t, c.Dragging())
	assert.Equal(t, 1, c.OverID(), "vanished target falls back to the dragged item")

	c.SetItems([]int{2})
	assert.False(t, c.Dragging(), "dragged item vanished")
}

func TestNudge(t *testing.T) {
	c := New(Active)
	c.SetItems([]int{1, 2, 3})

	m, ok := c.Nudge(2, -1)
	require.True(t, ok)
	assert.Equal(t, Move{ActiveID: 2, OverID: 1}, m)

	_, ok = c.Nudge(1, -1)
	assert.False(t, ok, "already first")
	assert.False(t, c.Dragging())
}

func TestPreview(t *testing.T) {
	c := New(Active)
	c.SetItems([]int{1, 2, 3, 4})
	assert.Equal(t, []int{1, 2, 3, 4}, c.Preview())

	c.Begin(1)
	c.Over(3)
	assert.Equal(t, []int{2, 3, 1, 4}, c.Preview())

	c.Begin(4)
	c.Over(2)
	assert.Equal(t, []int{1, 4, 2, 3}, c.Preview())
}

func TestPartitionString(t *testing.T) {
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "completed", Completed.String())
}
