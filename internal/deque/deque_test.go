package deque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopFrontOnEmptyDeque(t *testing.T) {
	d := New[int]()
	v, ok := d.PopFront()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 0, d.Length())
}

func TestPushBackKeepsInsertionOrder(t *testing.T) {
	d := New[string]()
	d.PushBack("a")
	d.PushBack("b")
	d.PushBack("c")
	assert.Equal(t, []string{"a", "b", "c"}, d.Values())

	v, ok := d.PopFront()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 2, d.Length())
}

func TestRemoveFromAnyPosition(t *testing.T) {
	d := New[string]()
	a := d.PushBack("a")
	b := d.PushBack("b")
	c := d.PushBack("c")

	assert.True(t, d.Remove(b))
	assert.Equal(t, []string{"a", "c"}, d.Values())

	assert.True(t, d.Remove(c))
	assert.Equal(t, []string{"a"}, d.Values())

	assert.True(t, d.Remove(a))
	assert.Empty(t, d.Values())
	assert.Equal(t, 0, d.Length())

	_, ok := d.Front()
	assert.False(t, ok)
}

func TestRemoveTwiceIsNoop(t *testing.T) {
	d := New[int]()
	n := d.PushBack(1)
	d.PushBack(2)

	assert.True(t, d.Remove(n))
	assert.False(t, d.Remove(n))
	assert.False(t, d.Contains(n))
	assert.Equal(t, 1, d.Length())
}

func TestRemoveAfterPopIsNoop(t *testing.T) {
	d := New[int]()
	n := d.PushBack(1)

	_, ok := d.PopFront()
	require.True(t, ok)
	assert.False(t, d.Remove(n))
	assert.Equal(t, 0, d.Length())
}

func TestEqualValuesAreDistinctNodes(t *testing.T) {
	d := New[string]()
	first := d.PushBack("x")
	second := d.PushBack("x")

	require.True(t, d.Remove(second))
	assert.True(t, d.Contains(first))
	assert.Equal(t, []string{"x"}, d.Values())
}

func TestNodeFromAnotherDequeIsRejected(t *testing.T) {
	d1, d2 := New[int](), New[int]()
	n := d1.PushBack(1)
	assert.False(t, d2.Remove(n))
	assert.False(t, d2.Contains(nil))
	assert.Equal(t, 1, d1.Length())
}
