package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](4)

	assert.True(t, rq.IsEmpty())
	assert.NoError(t, rq.Enqueue(1))
	assert.NoError(t, rq.Enqueue(2))
	assert.NoError(t, rq.Enqueue(3))
	assert.Equal(t, 3, rq.Len())

	v, err := rq.Dequeue()
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = rq.Dequeue()
	assert.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = rq.Dequeue()
	assert.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.True(t, rq.IsEmpty())
}

func TestRingQueueFull(t *testing.T) {
	rq := NewRingQueue[string](2)

	assert.NoError(t, rq.Enqueue("a"))
	assert.NoError(t, rq.Enqueue("b"))
	assert.True(t, rq.IsFull())
	assert.ErrorIs(t, rq.Enqueue("c"), ErrQueueFull)
}

func TestRingQueueEmpty(t *testing.T) {
	rq := NewRingQueue[int](2)

	_, err := rq.Dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)

	_, err = rq.Peek()
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestRingQueuePeek(t *testing.T) {
	rq := NewRingQueue[int](2)
	assert.NoError(t, rq.Enqueue(42))

	v, err := rq.Peek()
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, rq.Len())
}

func TestRingQueueWrapAround(t *testing.T) {
	rq := NewRingQueue[int](3)

	for round := 0; round < 5; round++ {
		assert.NoError(t, rq.Enqueue(round))
		assert.NoError(t, rq.Enqueue(round+100))

		v, err := rq.Dequeue()
		assert.NoError(t, err)
		assert.Equal(t, round, v)

		v, err = rq.Dequeue()
		assert.NoError(t, err)
		assert.Equal(t, round+100, v)
	}
	assert.True(t, rq.IsEmpty())
}
