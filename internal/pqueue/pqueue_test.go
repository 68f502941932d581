package pqueue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(v int) int { return v }

func drain[T comparable](q *Queue[T]) []T {
	var out []T
	for !q.IsEmpty() {
		out = append(out, q.ExtractTop())
	}
	return out
}

func TestQueue_MinOrder(t *testing.T) {
	q := NewMin(identity)
	for _, v := range []int{5, 10, 3, 8, 1, 7} {
		q.Insert(v)
	}

	assert.Equal(t, 6, q.Size())
	assert.Equal(t, 1, q.Peek())
	assert.Equal(t, []int{1, 3, 5, 7, 8, 10}, drain(q))
	assert.True(t, q.IsEmpty())
}

func TestQueue_MaxOrder(t *testing.T) {
	q := NewMax(identity)
	for _, v := range []int{5, 10, 3} {
		q.Insert(v)
	}

	assert.Equal(t, 10, q.Peek())
	assert.Equal(t, []int{10, 5, 3}, drain(q))
}

func TestQueue_InsertDuplicateIgnored(t *testing.T) {
	q := NewMin(identity)
	q.Insert(4)
	q.Insert(4)

	assert.Equal(t, 1, q.Size())
	assert.True(t, q.Contains(4))
}

func TestQueue_ExtractRemovesFromIndex(t *testing.T) {
	q := NewMin(identity)
	q.Insert(2)
	q.Insert(1)

	assert.Equal(t, 1, q.ExtractTop())
	assert.False(t, q.Contains(1))
	assert.True(t, q.Contains(2))
}

func TestQueue_UpdatePriority(t *testing.T) {
	cost := map[string]int{"a": 10, "b": 20, "c": 30, "d": 40}
	q := NewMin(func(s string) int { return cost[s] })
	for _, s := range []string{"a", "b", "c", "d"} {
		q.Insert(s)
	}

	cost["d"] = 1
	q.UpdatePriority("d")
	assert.Equal(t, "d", q.Peek())

	cost["c"] = 5
	q.UpdatePriority("c")
	q.UpdatePriority("missing") // ignored

	assert.Equal(t, []string{"d", "c", "a", "b"}, drain(q))
}

func TestQueue_EmptyPanics(t *testing.T) {
	q := NewMin(identity)

	assert.PanicsWithValue(t, ErrEmpty, func() { q.Peek() })
	assert.PanicsWithValue(t, ErrEmpty, func() { q.ExtractTop() })
}

func TestQueue_IndexConsistency(t *testing.T) {
	q := NewMin(identity)
	for _, v := range []int{9, 4, 7, 1, 3, 8, 2} {
		q.Insert(v)
	}
	q.ExtractTop()
	q.ExtractTop()

	for item, slot := range q.index {
		require.Less(t, slot, len(q.items))
		assert.Equal(t, item, q.items[slot], "index out of sync for %d", item)
	}
	assert.Len(t, q.index, len(q.items))
}

func TestQueue_RandomOperationsStayMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		keys := make(map[int]int)
		q := NewMin(func(id int) int { return keys[id] })

		for id := 0; id < 40; id++ {
			keys[id] = rng.Intn(1000)
			q.Insert(id)
		}
		// decrease a random subset of keys in place
		for i := 0; i < 20; i++ {
			id := rng.Intn(40)
			if !q.Contains(id) {
				continue
			}
			keys[id] -= rng.Intn(500)
			q.UpdatePriority(id)
		}
		// interleave extractions with further decreases
		prev := -1 << 31
		for !q.IsEmpty() {
			id := q.ExtractTop()
			require.GreaterOrEqual(t, keys[id], prev, "round %d", round)
			prev = keys[id]

			if q.IsEmpty() {
				break
			}
			other := q.Peek()
			if keys[other] > prev {
				keys[other] = prev
				q.UpdatePriority(other)
			}
		}
	}
}
