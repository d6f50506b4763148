package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshpath/mtg"
	"github.com/katalvlaran/meshpath/pqueue"
)

func TestQueue_Empty(t *testing.T) {
	var q pqueue.Queue
	_, ok := q.Pop()
	assert.False(t, ok)
	e, ok := q.Peek()
	assert.False(t, ok)
	assert.Equal(t, mtg.NullNode, e.Node)
	assert.Zero(t, q.Len())
}

func TestQueue_OrderAndFIFOTies(t *testing.T) {
	q := pqueue.New(8)
	q.Push(10, 2.5)
	q.Push(11, 1.0)
	q.Push(12, 2.5)
	q.Push(13, 0.5)
	q.Push(14, 2.5)

	top, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, mtg.NodeID(13), top.Node)

	var got []mtg.NodeID
	for q.Len() > 0 {
		e, _ := q.Pop()
		got = append(got, e.Node)
	}
	assert.Equal(t, []mtg.NodeID{13, 11, 10, 12, 14}, got)
}

func TestQueue_DuplicatesAreKept(t *testing.T) {
	q := pqueue.New(0)
	q.Push(7, 5)
	q.Push(7, 3) // improved distance; old entry stays
	assert.Equal(t, 2, q.Len())

	e, _ := q.Pop()
	assert.Equal(t, pqueue.Entry{Node: 7, Distance: 3}, e)
	e, _ = q.Pop()
	assert.Equal(t, pqueue.Entry{Node: 7, Distance: 5}, e, "stale entry is still returned; caller discards it")
}

func TestQueue_RandomMatchesSort(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	q := pqueue.New(0)
	want := make([]float64, 500)
	for i := range want {
		want[i] = float64(r.Intn(100))
		q.Push(mtg.NodeID(i), want[i])
	}
	sort.Float64s(want)
	for i := range want {
		e, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want[i], e.Distance)
	}

	q.Push(1, 1)
	q.Reset()
	assert.Zero(t, q.Len())
}
