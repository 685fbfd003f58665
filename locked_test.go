package astibimap

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLocked(t *testing.T) {
	m := New[int, string](Options{Ordered: true})
	l := NewLocked(m)

	var eg errgroup.Group
	for w := 0; w < 8; w++ {
		eg.Go(func() error {
			for i := w * 100; i < (w+1)*100; i++ {
				if err := l.Put(i, strconv.Itoa(i)); err != nil {
					return err
				}
				if _, ok := l.Get(i); !ok {
					return errors.New("key not found after put")
				}
				if i%2 == 0 {
					if _, err := l.DeleteValue(strconv.Itoa(i)); err != nil {
						return err
					}
				}
			}
			return nil
		})
		eg.Go(func() error {
			l.View(func(r Reader[int, string]) {
				for k, v := range r.All() {
					if v != strconv.Itoa(k) {
						t.Errorf("expected %d, got %s", k, v)
					}
				}
			})
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	assert.Equal(t, 400, l.Len())
	k, ok := l.GetKey("1")
	require.True(t, ok)
	assert.Equal(t, 1, k)
	_, ok = l.GetKey("2")
	assert.False(t, ok)
	requireConsistent(t, m)

	// Batches and multi step operations
	require.NoError(t, l.Update(Pairs(p(1000, "a"), p(1001, "b"))))
	assert.ErrorIs(t, l.Update(Pairs(p(1002, "c"), p(1003, "a"))), ErrValueDuplication)
	assert.ErrorIs(t, l.Set(1, "a"), ErrDuplication)
	v, err := l.Delete(1001)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	require.NoError(t, l.Do(func(m *BiMap[int, string]) error {
		if err := m.MoveToFront(1000); err != nil {
			return err
		}
		_, _, err := m.PopItem(false)
		return err
	}))
	assert.Equal(t, 400, l.Len())
	_, ok = l.Get(1000)
	assert.False(t, ok)
	requireConsistent(t, m)
}
