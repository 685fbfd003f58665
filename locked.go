package astibimap

import (
	"iter"
	"sync"
)

// Locked wraps a BiMap with a mutex so that it can be shared between goroutines
type Locked[K, V comparable] struct {
	m  *BiMap[K, V]
	mu *sync.RWMutex
}

// NewLocked creates a new Locked. m must not be used directly afterwards.
func NewLocked[K, V comparable](m *BiMap[K, V]) *Locked[K, V] {
	return &Locked[K, V]{
		m:  m,
		mu: &sync.RWMutex{},
	}
}

func (l *Locked[K, V]) Get(k K) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.Get(k)
}

func (l *Locked[K, V]) GetKey(v V) (K, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.GetKey(v)
}

func (l *Locked[K, V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.Len()
}

func (l *Locked[K, V]) Set(k K, v V) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Set(k, v)
}

func (l *Locked[K, V]) Put(k K, v V) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Put(k, v)
}

func (l *Locked[K, V]) Delete(k K) (V, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Delete(k)
}

func (l *Locked[K, V]) DeleteValue(v V) (K, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.DeleteValue(v)
}

// Update applies seq in a single batch. seq must not use the Locked.
func (l *Locked[K, V]) Update(seq iter.Seq2[K, V]) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Update(seq)
}

// Do executes fn while holding the write lock. The map must not escape fn.
func (l *Locked[K, V]) Do(fn func(m *BiMap[K, V]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.m)
}

// View executes fn while holding the read lock. The map must not escape fn.
func (l *Locked[K, V]) View(fn func(m Reader[K, V])) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.m)
}
