package astibimap

import "iter"

// MoveToEnd moves the association of the provided key to the back of the order
func (m *BiMap[K, V]) MoveToEnd(k K) error {
	if err := m.checkMove(k); err != nil {
		return err
	}
	m.order.moveToBack(k)
	return nil
}

// MoveToFront moves the association of the provided key to the front of the order
func (m *BiMap[K, V]) MoveToFront(k K) error {
	if err := m.checkMove(k); err != nil {
		return err
	}
	m.order.moveToFront(k)
	return nil
}

func (m *BiMap[K, V]) checkMove(k K) error {
	if m.frozen {
		return ErrFrozen
	}
	if m.order == nil {
		return ErrNotOrdered
	}
	if _, ok := m.fwd[k]; !ok {
		return keyNotFoundError(k)
	}
	return nil
}

// Front returns the oldest association of an ordered map. Unordered maps return an arbitrary
// association.
func (m *BiMap[K, V]) Front() (k K, v V, ok bool) {
	return first(m.All())
}

// Back returns the most recent association of an ordered map. Unordered maps return an
// arbitrary association.
func (m *BiMap[K, V]) Back() (k K, v V, ok bool) {
	return first(m.Backward())
}

func first[K, V any](seq iter.Seq2[K, V]) (k K, v V, ok bool) {
	for k, v = range seq {
		ok = true
		break
	}
	return
}

// PopItem removes and returns the most recent association if last is true, the oldest one
// otherwise. Unordered maps remove an arbitrary association.
func (m *BiMap[K, V]) PopItem(last bool) (k K, v V, err error) {
	// Frozen
	if m.frozen {
		err = ErrFrozen
		return
	}

	// Get item
	var ok bool
	if last {
		k, v, ok = m.Back()
	} else {
		k, v, ok = m.Front()
	}
	if !ok {
		err = ErrEmpty
		return
	}

	// Delete
	m.delete(k, v)
	return
}

// EqualOrder checks whether both maps are ordered and yield the same associations in the same
// order
func (m *BiMap[K, V]) EqualOrder(o Reader[K, V]) bool {
	if o == nil || m.order == nil || !o.Ordered() || m.Len() != o.Len() {
		return false
	}
	next, stop := iter.Pull2(o.All())
	defer stop()
	for k, v := range m.All() {
		k2, v2, more := next()
		if !more || k2 != k || v2 != v {
			return false
		}
	}
	return true
}

// evict drops the oldest associations until the map fits in MaxLen
func (m *BiMap[K, V]) evict() {
	if m.o.MaxLen <= 0 {
		return
	}
	for len(m.fwd) > m.o.MaxLen {
		k, v, _ := m.Front()
		m.l.Debugf("astibimap: evicting %+v => %+v", k, v)
		m.delete(k, v)
	}
}
