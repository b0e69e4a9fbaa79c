package bounded

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func ExampleQueue() {
	q, err := NewQueue[string](2)
	if err != nil {
		panic(err)
	}

	_ = q.Enqueue("a")
	_ = q.Enqueue("b")
	if err := q.Enqueue("c"); err != nil {
		fmt.Println(err)
	}

	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}

		fmt.Println(v)
	}
	// Output:
	// container is full
	// a
	// b
}

func TestNewQueue(t *testing.T) {
	t.Parallel()

	t.Run("negative capacity", func(t *testing.T) {
		_, err := NewQueue[int](-1)
		require.Error(t, err)
	})

	q, err := NewQueue[int](5)
	require.NoError(t, err)
	require.Equal(t, 0, q.Len())
	require.Equal(t, 5, q.Cap())

	_, ok := q.Peek()
	require.False(t, ok)
}

func TestQueueKeepsOrder(t *testing.T) {
	t.Parallel()

	q, err := NewQueue[int](5)
	require.NoError(t, err)

	for _, v := range []int{1, 2, 3, 4} {
		require.NoError(t, q.Enqueue(v))
	}

	for _, expect := range []int{1, 2, 3, 4} {
		head, ok := q.Peek()
		require.True(t, ok)
		require.Equal(t, expect, head)

		v, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, expect, v)
	}

	require.Equal(t, 0, q.Len())
	_, ok := q.Dequeue()
	require.False(t, ok)
}

func TestQueueFull(t *testing.T) {
	t.Parallel()

	q, err := NewQueue[int](5)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(i))
	}

	require.ErrorIs(t, q.Enqueue(99), ErrFull)
	require.Equal(t, 5, q.Len())

	// freeing one slot makes room again, also exercises wraparound
	for i := 0; i < 20; i++ {
		v, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, i, v)
		require.NoError(t, q.Enqueue(i+5))
	}
}

func TestQueueZeroCapacity(t *testing.T) {
	t.Parallel()

	q, err := NewQueue[int](0)
	require.NoError(t, err)

	require.ErrorIs(t, q.Enqueue(1), ErrFull)
	_, ok := q.Dequeue()
	require.False(t, ok)
	_, ok = q.Peek()
	require.False(t, ok)
	require.Equal(t, 0, q.Len())
}

func BenchmarkQueue(b *testing.B) {
	q, err := NewQueue[int](1024)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := q.Enqueue(i); err != nil {
			q.Dequeue()
			_ = q.Enqueue(i)
		}
	}
}
