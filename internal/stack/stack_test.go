package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPopEmpty(t *testing.T) {
	assert := assert.New(t)

	var stack S[int]
	_, err := stack.Pop()
	assert.ErrorIs(err, ErrEmpty)
	assert.ErrorContains(err, "empty")
}

func TestStackPeekEmpty(t *testing.T) {
	assert := assert.New(t)

	var stack S[string]
	_, err := stack.Peek()
	assert.ErrorIs(err, ErrEmpty)
}

func TestStackPushPop(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var stack S[int]
	stack.Push(6)
	stack.Push(3)
	stack.Push(9)

	assert.Equal(3, stack.Size())

	v, err := stack.Pop()
	require.NoError(err)
	assert.Equal(9, v)

	v, err = stack.Pop()
	require.NoError(err)
	assert.Equal(3, v)

	v, err = stack.Pop()
	require.NoError(err)
	assert.Equal(6, v)

	_, err = stack.Pop()
	assert.ErrorIs(err, ErrEmpty)
}

func TestStackPeekKeepsTop(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var stack S[string]
	stack.Push("first")
	stack.Push("second")

	v, err := stack.Peek()
	require.NoError(err)
	assert.Equal("second", v)
	assert.Equal(2, stack.Size())

	v, err = stack.Pop()
	require.NoError(err)
	assert.Equal("second", v)
	assert.Equal(1, stack.Size())
}

func TestStackIsEmpty(t *testing.T) {
	assert := assert.New(t)

	var stack S[int]
	assert.True(stack.IsEmpty())

	stack.Push(1)
	assert.False(stack.IsEmpty())

	_, err := stack.Pop()
	assert.NoError(err)
	assert.True(stack.IsEmpty())
}

func TestStackClear(t *testing.T) {
	assert := assert.New(t)

	var stack S[int]
	for i := 0; i < 10; i++ {
		stack.Push(i)
	}
	assert.Equal(10, stack.Size())

	stack.Clear()
	assert.Equal(0, stack.Size())
	assert.True(stack.IsEmpty())

	_, err := stack.Pop()
	assert.ErrorIs(err, ErrEmpty)

	// reusable after clearing
	stack.Push(42)
	v, err := stack.Pop()
	assert.NoError(err)
	assert.Equal(42, v)
}
