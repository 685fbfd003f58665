package astibimap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedBiMap(t *testing.T) {
	m := New[string, int](Options{Ordered: true})
	require.NoError(t, m.Put("k1", 1))
	require.NoError(t, m.Put("k2", 2))
	require.NoError(t, m.Put("k3", 3))
	_, err := m.Delete("k2")
	require.NoError(t, err)
	assert.Equal(t, []string{"k1", "k3"}, slices.Collect(m.Keys()))
	require.NoError(t, m.Put("k4", 4))
	assert.Equal(t, []string{"k1", "k3", "k4"}, slices.Collect(m.Keys()))
	assert.Equal(t, []int{1, 3, 4}, slices.Collect(m.Values()))
	var vs []int
	for v := range m.Inverse().Backward() {
		vs = append(vs, v)
	}
	assert.Equal(t, []int{4, 3, 1}, vs)
	requireConsistent(t, m)
}

func TestOrderedBiMapOverwrite(t *testing.T) {
	m, err := NewFrom(Pairs(p(1, "a"), p(2, "b"), p(3, "c")), Options{OnDup: OnDupOverwrite, Ordered: true})
	require.NoError(t, err)

	// Same association keeps its position
	require.NoError(t, m.Set(1, "a"))
	assert.Equal(t, []Pair[int, string]{p(1, "a"), p(2, "b"), p(3, "c")}, pairsOf(m.All()))

	// Key collision
	require.NoError(t, m.Set(1, "x"))
	assert.Equal(t, []Pair[int, string]{p(2, "b"), p(3, "c"), p(1, "x")}, pairsOf(m.All()))

	// Value collision
	require.NoError(t, m.Set(4, "b"))
	assert.Equal(t, []Pair[int, string]{p(3, "c"), p(1, "x"), p(4, "b")}, pairsOf(m.All()))

	// Key and value collision
	require.NoError(t, m.Set(3, "x"))
	assert.Equal(t, []Pair[int, string]{p(4, "b"), p(3, "x")}, pairsOf(m.All()))
	requireConsistent(t, m)
}

func TestOrderedBiMapMoves(t *testing.T) {
	m, err := NewFrom(Pairs(p(1, "a"), p(2, "b"), p(3, "c")), Options{Ordered: true})
	require.NoError(t, err)

	require.NoError(t, m.MoveToEnd(1))
	assert.Equal(t, []int{2, 3, 1}, slices.Collect(m.Keys()))
	require.NoError(t, m.MoveToFront(3))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(m.Keys()))
	require.NoError(t, m.Inverse().MoveToEnd("c"))
	assert.Equal(t, []int{2, 1, 3}, slices.Collect(m.Keys()))
	require.NoError(t, m.Inverse().MoveToFront("a"))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(m.Keys()))

	assert.ErrorIs(t, m.MoveToEnd(4), ErrKeyNotFound)
	assert.ErrorIs(t, m.MoveToFront(4), ErrKeyNotFound)
	assert.ErrorIs(t, m.Inverse().MoveToEnd("d"), ErrKeyNotFound)
	requireConsistent(t, m)

	u := New[int, string](Options{})
	require.NoError(t, u.Put(1, "a"))
	assert.ErrorIs(t, u.MoveToEnd(1), ErrNotOrdered)
	assert.ErrorIs(t, u.MoveToFront(1), ErrNotOrdered)
	assert.ErrorIs(t, u.Inverse().MoveToFront("a"), ErrNotOrdered)
}

func TestOrderedBiMapFrontBack(t *testing.T) {
	m := New[int, string](Options{Ordered: true})
	_, _, ok := m.Front()
	assert.False(t, ok)
	_, _, ok = m.Back()
	assert.False(t, ok)
	_, _, err := m.PopItem(true)
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, m.Update(Pairs(p(1, "a"), p(2, "b"), p(3, "c"))))
	k, v, ok := m.Front()
	require.True(t, ok)
	assert.Equal(t, p(1, "a"), p(k, v))
	k, v, ok = m.Back()
	require.True(t, ok)
	assert.Equal(t, p(3, "c"), p(k, v))
	var ps []Pair[int, string]
	for k, v := range m.Backward() {
		ps = append(ps, p(k, v))
	}
	assert.Equal(t, []Pair[int, string]{p(3, "c"), p(2, "b"), p(1, "a")}, ps)

	k, v, err = m.PopItem(true)
	require.NoError(t, err)
	assert.Equal(t, p(3, "c"), p(k, v))
	k, v, err = m.PopItem(false)
	require.NoError(t, err)
	assert.Equal(t, p(1, "a"), p(k, v))
	assert.Equal(t, []int{2}, slices.Collect(m.Keys()))
	assert.False(t, m.HasValue("a"))
	assert.False(t, m.HasValue("c"))
	requireConsistent(t, m)

	// Inverse
	vk, kv, err := m.Inverse().PopItem(false)
	require.NoError(t, err)
	assert.Equal(t, "b", vk)
	assert.Equal(t, 2, kv)
	assert.Equal(t, 0, m.Len())
	requireConsistent(t, m)

	// Unordered maps pop arbitrary items
	u, err := NewFrom(Pairs(p(1, "a")), Options{})
	require.NoError(t, err)
	k, v, err = u.PopItem(false)
	require.NoError(t, err)
	assert.Equal(t, p(1, "a"), p(k, v))
	_, _, err = u.PopItem(false)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestOrderedBiMapMaxLen(t *testing.T) {
	m := New[int, string](Options{MaxLen: 2, OnDup: OnDupOverwrite})
	assert.True(t, m.Ordered())
	require.NoError(t, m.Set(1, "a"))
	require.NoError(t, m.Set(2, "b"))
	require.NoError(t, m.Set(3, "c"))
	assert.Equal(t, []int{2, 3}, slices.Collect(m.Keys()))
	assert.False(t, m.HasValue("a"))

	// Recently moved associations are evicted last
	require.NoError(t, m.MoveToEnd(2))
	require.NoError(t, m.Set(4, "d"))
	assert.Equal(t, []int{2, 4}, slices.Collect(m.Keys()))

	// Overwrites don't grow the map
	require.NoError(t, m.Set(2, "d"))
	assert.Equal(t, []Pair[int, string]{p(2, "d")}, pairsOf(m.All()))

	// Batches are trimmed once applied
	require.NoError(t, m.Update(Pairs(p(5, "e"), p(6, "f"), p(7, "g"))))
	assert.Equal(t, []int{6, 7}, slices.Collect(m.Keys()))
	requireConsistent(t, m)
}

func TestOrderedBiMapEqualOrder(t *testing.T) {
	m1, err := NewFrom(Pairs(p(1, "a"), p(2, "b")), Options{Ordered: true})
	require.NoError(t, err)
	m2, err := NewFrom(Pairs(p(2, "b"), p(1, "a")), Options{Ordered: true})
	require.NoError(t, err)
	u, err := NewFrom(Pairs(p(1, "a"), p(2, "b")), Options{})
	require.NoError(t, err)

	assert.True(t, m1.Equal(m2))
	assert.False(t, m1.EqualOrder(m2))
	assert.False(t, m1.EqualOrder(u))
	assert.False(t, u.EqualOrder(m1))
	assert.False(t, m1.EqualOrder(nil))
	require.NoError(t, m2.MoveToEnd(2))
	assert.True(t, m1.EqualOrder(m2))
	assert.True(t, m1.Inverse().EqualOrder(m2.Inverse()))
	assert.False(t, m1.Inverse().EqualOrder(u.Inverse()))
}
