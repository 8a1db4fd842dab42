package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Peek(t *testing.T) {
	type T struct {
		Value1 int
		Value2 int
	}
	stack := NewStack[T]()
	stack.Push(
		T{
			Value1: 1,
			Value2: 2,
		},
	)

	last := stack.Peek()

	assert.Equal(t, last.Value1, 1)
	assert.Equal(t, last.Value2, 2)
}

func TestStack_PushPop(t *testing.T) {
	stack := NewStack[int]()
	stack.Push(1)
	stack.Push(2)

	assert.True(t, stack.Contains(1))
	assert.Equal(t, 2, stack.Pop())
	assert.Equal(t, 1, stack.Len())
	assert.False(t, stack.Contains(2))
	assert.Equal(t, []int{1}, stack.Items())
}
