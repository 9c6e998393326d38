package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryQueue(t *testing.T) {
	q := NewInMemoryQueue(2)

	assert.NoError(t, q.Enqueue(1))
	assert.NoError(t, q.Enqueue(2))
	assert.ErrorIs(t, q.Enqueue(3), ErrQueueFull)
	assert.Equal(t, 2, q.Size())

	assert.Equal(t, []interface{}{1, 2}, q.ReadAllMessages())
	assert.Zero(t, q.Size())
	assert.Nil(t, q.ReadAllMessages())

	assert.NoError(t, q.Enqueue("a"))
	q.ClearQueue()
	assert.Zero(t, q.Size())
}

func TestNewInMemoryQueue_defaultSize(t *testing.T) {
	q := NewInMemoryQueue(0)
	for i := 0; i < DefaultQueueBufferSize; i++ {
		assert.NoError(t, q.Enqueue(i))
	}
	assert.ErrorIs(t, q.Enqueue(-1), ErrQueueFull)
}
