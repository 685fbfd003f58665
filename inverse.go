package astibimap

import (
	"fmt"
	"iter"
)

// Inverse is a view of a BiMap[K, V] with keys and values swapped. It owns no storage: reads
// and writes go straight to the underlying map. OnDup policies are applied in the view's
// frame, which means a Key action governs collisions on the view's keys, that is the map's
// values.
type Inverse[K, V comparable] struct {
	m *BiMap[K, V]
}

// Inverse returns the underlying map
func (i *Inverse[K, V]) Inverse() *BiMap[K, V] { return i.m }

func (i *Inverse[K, V]) Get(v V) (K, bool) { return i.m.GetKey(v) }

func (i *Inverse[K, V]) GetKey(k K) (V, bool) { return i.m.Get(k) }

func (i *Inverse[K, V]) MustGet(v V) K { return i.m.MustGetKey(v) }

func (i *Inverse[K, V]) MustGetKey(k K) V { return i.m.MustGet(k) }

func (i *Inverse[K, V]) HasKey(v V) bool { return i.m.HasValue(v) }

func (i *Inverse[K, V]) HasValue(k K) bool { return i.m.HasKey(k) }

func (i *Inverse[K, V]) Len() int { return i.m.Len() }

func (i *Inverse[K, V]) OnDup() OnDup { return i.m.OnDup() }

func (i *Inverse[K, V]) Ordered() bool { return i.m.Ordered() }

func (i *Inverse[K, V]) Frozen() bool { return i.m.Frozen() }

func (i *Inverse[K, V]) Collision(v V, k K) Collision {
	return i.m.Collision(k, v).Swap()
}

func (i *Inverse[K, V]) Set(v V, k K) error {
	return i.PutWithOnDup(v, k, i.m.o.OnDup)
}

func (i *Inverse[K, V]) Put(v V, k K) error {
	return i.PutWithOnDup(v, k, OnDupRaise)
}

func (i *Inverse[K, V]) ForcePut(v V, k K) error {
	return i.PutWithOnDup(v, k, OnDupOverwrite)
}

func (i *Inverse[K, V]) PutWithOnDup(v V, k K, od OnDup) error {
	return swapError(i.m.put(k, v, od.Swap()))
}

func (i *Inverse[K, V]) Update(seq iter.Seq2[V, K]) error {
	return swapError(i.m.putAll(swapSeq(seq), i.m.o.OnDup.Swap(), true))
}

func (i *Inverse[K, V]) PutAll(seq iter.Seq2[V, K], od OnDup) error {
	return swapError(i.m.putAll(swapSeq(seq), od.Swap(), false))
}

func (i *Inverse[K, V]) Delete(v V) (K, error) {
	if i.m.frozen {
		var k K
		return k, ErrFrozen
	}
	k, ok := i.m.inv[v]
	if !ok {
		return k, keyNotFoundError(v)
	}
	i.m.delete(k, v)
	return k, nil
}

func (i *Inverse[K, V]) DeleteValue(k K) (V, error) {
	if i.m.frozen {
		var v V
		return v, ErrFrozen
	}
	v, ok := i.m.fwd[k]
	if !ok {
		return v, valueNotFoundError(k)
	}
	i.m.delete(k, v)
	return v, nil
}

func (i *Inverse[K, V]) Clear() error { return i.m.Clear() }

func (i *Inverse[K, V]) All() iter.Seq2[V, K] { return swapSeq(i.m.All()) }

func (i *Inverse[K, V]) Backward() iter.Seq2[V, K] { return swapSeq(i.m.Backward()) }

func (i *Inverse[K, V]) Keys() iter.Seq[V] { return i.m.Values() }

func (i *Inverse[K, V]) Values() iter.Seq[K] { return i.m.Keys() }

func (i *Inverse[K, V]) MoveToEnd(v V) error {
	if err := i.checkMove(v); err != nil {
		return err
	}
	i.m.order.moveToBack(i.m.inv[v])
	return nil
}

func (i *Inverse[K, V]) MoveToFront(v V) error {
	if err := i.checkMove(v); err != nil {
		return err
	}
	i.m.order.moveToFront(i.m.inv[v])
	return nil
}

func (i *Inverse[K, V]) checkMove(v V) error {
	if i.m.frozen {
		return ErrFrozen
	}
	if i.m.order == nil {
		return ErrNotOrdered
	}
	if _, ok := i.m.inv[v]; !ok {
		return keyNotFoundError(v)
	}
	return nil
}

func (i *Inverse[K, V]) Front() (V, K, bool) {
	k, v, ok := i.m.Front()
	return v, k, ok
}

func (i *Inverse[K, V]) Back() (V, K, bool) {
	k, v, ok := i.m.Back()
	return v, k, ok
}

func (i *Inverse[K, V]) PopItem(last bool) (V, K, error) {
	k, v, err := i.m.PopItem(last)
	return v, k, err
}

func (i *Inverse[K, V]) Equal(o Reader[V, K]) bool {
	if o == nil || i.Len() != o.Len() {
		return false
	}
	for v, k := range o.All() {
		if ik, ok := i.m.inv[v]; !ok || ik != k {
			return false
		}
	}
	return true
}

func (i *Inverse[K, V]) EqualOrder(o Reader[V, K]) bool {
	if o == nil || !i.Ordered() || !o.Ordered() || i.Len() != o.Len() {
		return false
	}
	next, stop := iter.Pull2(o.All())
	defer stop()
	for v, k := range i.All() {
		v2, k2, more := next()
		if !more || v2 != v || k2 != k {
			return false
		}
	}
	return true
}

// Copy returns the inverse of an independent copy of the underlying map
func (i *Inverse[K, V]) Copy() *Inverse[K, V] { return i.m.Copy().Inverse() }

// Freeze returns the inverse of a frozen copy of the underlying map
func (i *Inverse[K, V]) Freeze() *Inverse[K, V] { return i.m.Freeze().Inverse() }

func (i *Inverse[K, V]) String() string {
	if i.m.order == nil {
		return fmt.Sprintf("Inverse(BiMap(%v))", i.m.inv)
	}
	return "Inverse(OrderedBiMap(" + formatPairs(i.All()) + "))"
}

func swapSeq[K, V any](seq iter.Seq2[K, V]) iter.Seq2[V, K] {
	return func(yield func(V, K) bool) {
		for k, v := range seq {
			if !yield(v, k) {
				return
			}
		}
	}
}
