package datastructure

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapExtractsInOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	h := NewFourAryHeap[int]()
	ranks := make([]float64, 0, 200)
	for i := 0; i < 200; i++ {
		rank := rng.Float64() * 1000
		ranks = append(ranks, rank)
		h.Insert(NewPriorityQueueNode(rank, i))
	}

	sort.Float64s(ranks)

	for i := 0; i < len(ranks); i++ {
		node, err := h.ExtractMin()
		require.NoError(t, err)
		assert.InDelta(t, ranks[i], node.GetRank(), 1e-12)
	}
	assert.True(t, h.IsEmpty())

	_, err := h.ExtractMin()
	assert.Error(t, err)
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := NewBinaryHeap[string]()

	a := NewPriorityQueueNode(10.0, "a")
	b := NewPriorityQueueNode(20.0, "b")
	c := NewPriorityQueueNode(30.0, "c")
	h.Insert(a)
	h.Insert(b)
	h.Insert(c)

	require.NoError(t, h.DecreaseKey(c, 5.0))

	min, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "c", min.GetItem())

	// increasing a key through DecreaseKey must be rejected
	assert.Error(t, h.DecreaseKey(a, 100.0))
}

func TestMinHeapGetMinrankEmpty(t *testing.T) {
	h := NewFourAryHeap[int]()
	assert.Greater(t, h.GetMinrank(), 1e15)

	h.Insert(NewPriorityQueueNode(3.5, 1))
	assert.Equal(t, 3.5, h.GetMinrank())
}
