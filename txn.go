package astibimap

import (
	"iter"

	set "github.com/deckarep/golang-set/v2"
)

// writeResult holds what is needed to undo a write
type writeResult[K, V comparable] struct {
	dedup dedup[K, V]
	key   K
	value V
	// Order nodes, 0 when unused
	id         int
	oldKeyID   int
	oldValueID int
}

// txn applies writes to a map while logging them so that they can be undone
type txn[K, V comparable] struct {
	log []writeResult[K, V]
	m   *BiMap[K, V]
	od  OnDup
	// When nothing can raise, writes are not logged
	logged bool
	strict bool
	// Keys and values written by this txn, only tracked in strict mode
	keys   set.Set[K]
	values set.Set[V]
}

func (m *BiMap[K, V]) newTxn(od OnDup, strict bool) *txn[K, V] {
	t := &txn[K, V]{
		logged: strict || od.hasRaise(),
		m:      m,
		od:     od,
		strict: strict,
	}
	if strict {
		t.keys = set.NewThreadUnsafeSet[K]()
		t.values = set.NewThreadUnsafeSet[V]()
	}
	return t
}

func (t *txn[K, V]) put(k K, v V) error {
	// Classify
	d := classify(t.m.fwd, t.m.inv, k, v)

	// Handle collision
	switch d.collision {
	case CollisionNone:
	case CollisionSameAssociation:
		return nil
	default:
		a := t.od.action(d.collision)
		if t.strict && t.collidesWithBatch(k, v, d) {
			a = OnDupActionRaise
		}
		switch a {
		case OnDupActionRaise:
			return newDuplicationError(d.collision, k, v)
		case OnDupActionIgnore:
			t.m.l.Debugf("astibimap: ignoring %+v => %+v: %s collision", k, v, d.collision)
			return nil
		}
	}

	// Write
	w := t.m.write(k, v, d)
	if t.logged {
		t.log = append(t.log, w)
	} else {
		t.m.releaseStale(w)
	}
	if t.strict {
		t.keys.Add(k)
		t.values.Add(v)
	}
	return nil
}

// collidesWithBatch checks whether the associations v or k collide with were written by
// this txn
func (t *txn[K, V]) collidesWithBatch(k K, v V, d dedup[K, V]) bool {
	return (d.dupKey() && t.keys.Contains(k)) || (d.dupValue() && t.values.Contains(v))
}

func (t *txn[K, V]) putAll(seq iter.Seq2[K, V]) (err error) {
	for k, v := range seq {
		if err = t.put(k, v); err != nil {
			return
		}
	}
	return
}

func (t *txn[K, V]) rollback(err error) {
	if len(t.log) == 0 {
		return
	}
	t.m.l.Debugf("astibimap: rolling back %d write(s): %s", len(t.log), err)
	for i := len(t.log) - 1; i >= 0; i-- {
		t.m.undo(t.log[i])
	}
	t.log = nil
}

func (t *txn[K, V]) commit() {
	// Release stale order nodes
	for _, w := range t.log {
		t.m.releaseStale(w)
	}
	t.log = nil

	// Enforce max length
	t.m.evict()
}

func (m *BiMap[K, V]) write(k K, v V, d dedup[K, V]) (w writeResult[K, V]) {
	w = writeResult[K, V]{
		dedup: d,
		key:   k,
		value: v,
	}

	// Drop stale associations
	if d.dupKey() {
		delete(m.inv, d.oldValue)
		if m.order != nil {
			w.oldKeyID = m.order.ids[k]
			m.order.unlink(w.oldKeyID)
		}
	}
	if d.dupValue() {
		delete(m.fwd, d.oldKey)
		if m.order != nil {
			w.oldValueID = m.order.ids[d.oldKey]
			m.order.unlink(w.oldValueID)
		}
	}

	// Add new association
	m.fwd[k] = v
	m.inv[v] = k
	if m.order != nil {
		w.id = m.order.pushBack(k)
	}
	return
}

func (m *BiMap[K, V]) releaseStale(w writeResult[K, V]) {
	if m.order == nil {
		return
	}
	if w.oldKeyID != 0 {
		m.order.release(w.oldKeyID)
	}
	if w.oldValueID != 0 {
		m.order.release(w.oldValueID)
	}
}

func (m *BiMap[K, V]) undo(w writeResult[K, V]) {
	// Remove new association
	delete(m.fwd, w.key)
	delete(m.inv, w.value)
	if m.order != nil {
		m.order.unlink(w.id)
		m.order.release(w.id)
	}

	// Restore stale associations in the reverse order they were dropped
	if w.dedup.dupValue() {
		m.fwd[w.dedup.oldKey] = w.value
		m.inv[w.value] = w.dedup.oldKey
		if m.order != nil {
			m.order.relink(w.oldValueID)
		}
	}
	if w.dedup.dupKey() {
		m.fwd[w.key] = w.dedup.oldValue
		m.inv[w.dedup.oldValue] = w.key
		if m.order != nil {
			m.order.relink(w.oldKeyID)
		}
	}
}
