package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/frontier"
)

// drain pops every value in order.
func drain[T any](q *frontier.Queue[T]) []T {
	var out []T
	for !q.IsEmpty() {
		v, ok := q.PopMin()
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}

func TestQueue_Empty(t *testing.T) {
	var q frontier.Queue[string]
	assert.True(t, q.IsEmpty())
	assert.Zero(t, q.Len())
	v, ok := q.PopMin()
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestQueue_KeyOrder(t *testing.T) {
	q := frontier.New[string](4)
	q.Push(3, "c")
	q.Push(1, "a")
	q.Push(2, "b")
	q.Push(0.5, "z")

	assert.Equal(t, 4, q.Len())
	assert.Equal(t, []string{"z", "a", "b", "c"}, drain(q))
}

// TestQueue_TieBreakFIFO verifies equal keys pop in insertion order.
func TestQueue_TieBreakFIFO(t *testing.T) {
	q := frontier.New[int](0)
	for i := 0; i < 10; i++ {
		q.Push(5, i)
	}
	q.Push(4, 100)
	q.Push(5, 10)

	assert.Equal(t, []int{100, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, drain(q))
}

// TestQueue_Orders checks the insertion counter is monotonic from zero and
// survives pops.
func TestQueue_Orders(t *testing.T) {
	q := frontier.New[rune](0)
	assert.Equal(t, uint64(0), q.Push(1, 'a'))
	assert.Equal(t, uint64(1), q.Push(1, 'b'))
	_, _ = q.PopMin()
	assert.Equal(t, uint64(2), q.Push(0, 'c'))
	assert.Equal(t, uint64(3), q.Pushed())
}

// TestQueue_StaleDuplicates allows the same value to be queued twice.
func TestQueue_StaleDuplicates(t *testing.T) {
	q := frontier.New[string](0)
	q.Push(9, "x")
	q.Push(2, "y")
	q.Push(4, "x") // improved key; the 9 stays behind as a stale entry

	assert.Equal(t, []string{"y", "x", "x"}, drain(q))
}

// TestQueue_RandomAgainstSort compares against a stable sort on random keys
// drawn from a small range, so ties are frequent.
func TestQueue_RandomAgainstSort(t *testing.T) {
	type item struct {
		key   float64
		order int
	}
	rng := rand.New(rand.NewSource(7))
	q := frontier.New[int](0)
	var want []item
	for i := 0; i < 500; i++ {
		k := float64(rng.Intn(20))
		q.Push(k, i)
		want = append(want, item{k, i})
	}
	sort.SliceStable(want, func(i, j int) bool { return want[i].key < want[j].key })

	got := drain(q)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].order, got[i], "position %d", i)
	}
}
