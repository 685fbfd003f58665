// Package astibimap provides a bidirectional map: a map whose values are as unique as its keys
// and that can be looked up, written to and deleted from by key or by value in constant time.
package astibimap

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

// Reader is the read-only side of a bidirectional map
type Reader[K, V comparable] interface {
	All() iter.Seq2[K, V]
	Backward() iter.Seq2[K, V]
	Get(k K) (V, bool)
	GetKey(v V) (K, bool)
	HasKey(k K) bool
	HasValue(v V) bool
	Keys() iter.Seq[K]
	Len() int
	Ordered() bool
	Values() iter.Seq[V]
}

// Map is a bidirectional map. It is implemented by *BiMap[K, V] and by *Inverse[V, K].
type Map[K, V comparable] interface {
	Reader[K, V]
	Clear() error
	Delete(k K) (V, error)
	DeleteValue(v V) (K, error)
	ForcePut(k K, v V) error
	Put(k K, v V) error
	PutAll(seq iter.Seq2[K, V], od OnDup) error
	PutWithOnDup(k K, v V, od OnDup) error
	Set(k K, v V) error
	Update(seq iter.Seq2[K, V]) error
}

var (
	_ Map[int, string] = (*BiMap[int, string])(nil)
	_ Map[string, int] = (*Inverse[int, string])(nil)
)

// BiMap represents a bidirectional map. It is not safe for concurrent use, see Locked.
type BiMap[K, V comparable] struct {
	frozen  bool
	fwd     map[K]V
	inv     map[V]K
	inverse *Inverse[K, V]
	l       Logger
	o       Options
	order   *orderRecord[K] // Nil when unordered
}

// Options are BiMap options
type Options struct {
	Logger Logger
	// If > 0, oldest associations are evicted once the map holds more than MaxLen of them.
	// Implies Ordered.
	MaxLen int
	// Zero value raises on every collision
	OnDup   OnDup
	Ordered bool
}

// New creates a new BiMap
func New[K, V comparable](o Options) *BiMap[K, V] {
	m := &BiMap[K, V]{
		fwd: make(map[K]V),
		inv: make(map[V]K),
		l:   o.Logger,
		o:   o,
	}
	m.inverse = &Inverse[K, V]{m: m}
	if m.l == nil {
		m.l = newNopLogger()
	}
	if o.Ordered || o.MaxLen > 0 {
		m.o.Ordered = true
		m.order = newOrderRecord[K]()
	}
	return m
}

// NewFrom creates a new BiMap and fills it with seq's associations, in order, using
// o.OnDup
func NewFrom[K, V comparable](seq iter.Seq2[K, V], o Options) (*BiMap[K, V], error) {
	m := New[K, V](o)
	t := m.newTxn(m.o.OnDup, false)
	if err := t.putAll(seq); err != nil {
		return nil, err
	}
	t.commit()
	return m, nil
}

// Get gets the value bound to the provided key
func (m *BiMap[K, V]) Get(k K) (v V, ok bool) {
	v, ok = m.fwd[k]
	return
}

// GetKey gets the key bound to the provided value
func (m *BiMap[K, V]) GetKey(v V) (k K, ok bool) {
	k, ok = m.inv[v]
	return
}

// MustGet gets the value bound to the provided key and panics if key is not found
func (m *BiMap[K, V]) MustGet(k K) V {
	v, ok := m.fwd[k]
	if !ok {
		panic(fmt.Sprintf("astibimap: key %+v not found", k))
	}
	return v
}

// MustGetKey gets the key bound to the provided value and panics if value is not found
func (m *BiMap[K, V]) MustGetKey(v V) K {
	k, ok := m.inv[v]
	if !ok {
		panic(fmt.Sprintf("astibimap: value %+v not found", v))
	}
	return k
}

func (m *BiMap[K, V]) HasKey(k K) bool {
	_, ok := m.fwd[k]
	return ok
}

func (m *BiMap[K, V]) HasValue(v V) bool {
	_, ok := m.inv[v]
	return ok
}

func (m *BiMap[K, V]) Len() int { return len(m.fwd) }

func (m *BiMap[K, V]) OnDup() OnDup { return m.o.OnDup }

func (m *BiMap[K, V]) Ordered() bool { return m.order != nil }

func (m *BiMap[K, V]) Frozen() bool { return m.frozen }

// Collision classifies the provided association against the map without modifying it
func (m *BiMap[K, V]) Collision(k K, v V) Collision {
	return classify(m.fwd, m.inv, k, v).collision
}

// Inverse returns a view of the map with keys and values swapped. The view shares the map's
// storage.
func (m *BiMap[K, V]) Inverse() *Inverse[K, V] { return m.inverse }

// Set binds k and v using the map's OnDup
func (m *BiMap[K, V]) Set(k K, v V) error { return m.put(k, v, m.o.OnDup) }

// Put binds k and v and raises on any collision
func (m *BiMap[K, V]) Put(k K, v V) error { return m.put(k, v, OnDupRaise) }

// PutWithOnDup binds k and v using the provided OnDup
func (m *BiMap[K, V]) PutWithOnDup(k K, v V, od OnDup) error { return m.put(k, v, od) }

// ForcePut binds k and v, dropping whatever associations they collide with
func (m *BiMap[K, V]) ForcePut(k K, v V) error { return m.put(k, v, OnDupOverwrite) }

func (m *BiMap[K, V]) put(k K, v V, od OnDup) error {
	if m.frozen {
		return ErrFrozen
	}
	t := m.newTxn(od, false)
	if err := t.put(k, v); err != nil {
		return err
	}
	t.commit()
	return nil
}

// Update binds every association of seq using the map's OnDup. An association colliding with
// another one written by the same call always raises. Either all associations are applied
// or the map is left untouched.
func (m *BiMap[K, V]) Update(seq iter.Seq2[K, V]) error {
	return m.putAll(seq, m.o.OnDup, true)
}

// PutAll binds every association of seq using the provided OnDup. Either all associations
// are applied or the map is left untouched.
func (m *BiMap[K, V]) PutAll(seq iter.Seq2[K, V], od OnDup) error {
	return m.putAll(seq, od, false)
}

func (m *BiMap[K, V]) putAll(seq iter.Seq2[K, V], od OnDup, strict bool) error {
	if m.frozen {
		return ErrFrozen
	}
	t := m.newTxn(od, strict)
	if err := t.putAll(seq); err != nil {
		t.rollback(err)
		return err
	}
	t.commit()
	return nil
}

// Delete removes the association of the provided key and returns its value
func (m *BiMap[K, V]) Delete(k K) (V, error) {
	if m.frozen {
		var v V
		return v, ErrFrozen
	}
	v, ok := m.fwd[k]
	if !ok {
		return v, keyNotFoundError(k)
	}
	m.delete(k, v)
	return v, nil
}

// DeleteValue removes the association of the provided value and returns its key
func (m *BiMap[K, V]) DeleteValue(v V) (K, error) {
	if m.frozen {
		var k K
		return k, ErrFrozen
	}
	k, ok := m.inv[v]
	if !ok {
		return k, valueNotFoundError(v)
	}
	m.delete(k, v)
	return k, nil
}

func (m *BiMap[K, V]) delete(k K, v V) {
	delete(m.fwd, k)
	delete(m.inv, v)
	if m.order != nil {
		m.order.remove(k)
	}
}

func (m *BiMap[K, V]) Clear() error {
	if m.frozen {
		return ErrFrozen
	}
	clear(m.fwd)
	clear(m.inv)
	if m.order != nil {
		m.order.reset()
	}
	return nil
}

// All returns an iterator over associations. Ordered maps yield them in order, the others in
// no particular order.
func (m *BiMap[K, V]) All() iter.Seq2[K, V] {
	if m.order == nil {
		return maps.All(m.fwd)
	}
	return func(yield func(K, V) bool) {
		m.order.forward(func(k K) bool { return yield(k, m.fwd[k]) })
	}
}

// Backward is like All but ordered maps yield associations from the most recent to the
// oldest
func (m *BiMap[K, V]) Backward() iter.Seq2[K, V] {
	if m.order == nil {
		return maps.All(m.fwd)
	}
	return func(yield func(K, V) bool) {
		m.order.backward(func(k K) bool { return yield(k, m.fwd[k]) })
	}
}

func (m *BiMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *BiMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal checks whether both maps hold the same associations, regardless of order
func (m *BiMap[K, V]) Equal(o Reader[K, V]) bool {
	if o == nil || m.Len() != o.Len() {
		return false
	}
	for k, v := range o.All() {
		if mv, ok := m.fwd[k]; !ok || mv != v {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of the map. The copy keeps the map's options and frozen
// state.
func (m *BiMap[K, V]) Copy() *BiMap[K, V] {
	c := &BiMap[K, V]{
		frozen: m.frozen,
		fwd:    maps.Clone(m.fwd),
		inv:    maps.Clone(m.inv),
		l:      m.l,
		o:      m.o,
	}
	c.inverse = &Inverse[K, V]{m: c}
	if m.order != nil {
		c.order = m.order.clone()
	}
	return c
}

// Freeze returns a frozen copy of the map. Every mutation of a frozen map fails with
// ErrFrozen.
func (m *BiMap[K, V]) Freeze() *BiMap[K, V] {
	c := m.Copy()
	c.frozen = true
	return c
}

func (m *BiMap[K, V]) String() string {
	if m.order == nil {
		return fmt.Sprintf("BiMap(%v)", m.fwd)
	}
	return "OrderedBiMap(" + formatPairs(m.All()) + ")"
}

// Pair is a key/value association
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Pairs returns an iterator over the provided pairs, in order
func Pairs[K, V any](ps ...Pair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range ps {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func formatPairs[K, V any](seq iter.Seq2[K, V]) string {
	var ss []string
	for k, v := range seq {
		ss = append(ss, fmt.Sprintf("%v:%v", k, v))
	}
	return "[" + strings.Join(ss, " ") + "]"
}
