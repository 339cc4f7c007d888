package queue_test

import (
	"testing"

	"github.com/crackvault/crackvault/pkg/queue"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	q := queue.New[string]()
	require.True(t, q.Empty())

	words := []string{"first", "second", "third", "fourth"}
	for _, w := range words {
		q.Enqueue(w)
	}
	require.Equal(t, len(words), q.Len())
	require.False(t, q.Empty())

	front, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, "first", front)
	require.Equal(t, len(words), q.Len(), "peek must not remove")

	for _, want := range words {
		got, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.True(t, q.Empty())
}

func TestQueue_EmptyErrors(t *testing.T) {
	q := queue.New[int]()

	_, err := q.Dequeue()
	require.ErrorIs(t, err, queue.ErrEmpty)

	_, err = q.Peek()
	require.ErrorIs(t, err, queue.ErrEmpty)

	// Draining back to empty must restore the error.
	q.Enqueue(1)
	_, err = q.Dequeue()
	require.NoError(t, err)
	_, err = q.Dequeue()
	require.ErrorIs(t, err, queue.ErrEmpty)
}

func TestQueue_InterleavedOps(t *testing.T) {
	q := queue.New[int]()

	q.Enqueue(1)
	q.Enqueue(2)

	v, err := q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	q.Enqueue(3)

	v, err = q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, 2, v)

	v, err = q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.Equal(t, 0, q.Len())
}

func TestQueue_All(t *testing.T) {
	q := queue.New[int]()
	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}

	var got []int
	for v := range q.All() {
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, got)
	require.Equal(t, 5, q.Len(), "All must not consume the queue")
}

func TestQueue_Drain(t *testing.T) {
	q := queue.New[int]()
	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}

	var got []int
	for v := range q.Drain() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	require.Equal(t, []int{0, 1, 2}, got)
	require.Equal(t, 2, q.Len(), "early stop leaves the rest queued")

	for v := range q.Drain() {
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, got)
	require.True(t, q.Empty())
}
