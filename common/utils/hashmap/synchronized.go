package hashmap

import (
	"sync"
)

// Synchronized guards a HashMap with a sync.RWMutex so that it can be shared between goroutines.
type Synchronized[K any, V any] struct {
	m *HashMap[K, V]

	mu sync.RWMutex
}

// NewSynchronized wraps m. The caller must not use m directly afterwards.
func NewSynchronized[K any, V any](m *HashMap[K, V]) *Synchronized[K, V] {
	return &Synchronized[K, V]{m: m}
}

func (s *Synchronized[K, V]) Insert(key K, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.m.Insert(key, value)
}

func (s *Synchronized[K, V]) InsertIfAbsent(key K, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.m.InsertIfAbsent(key, value)
}

func (s *Synchronized[K, V]) Get(key K) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.Get(key)
}

func (s *Synchronized[K, V]) Set(key K, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.m.Set(key, value)
}

func (s *Synchronized[K, V]) Remove(key K) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.m.Remove(key)
}

func (s *Synchronized[K, V]) RemoveAll(key K) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.m.RemoveAll(key)
}

func (s *Synchronized[K, V]) Contains(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.Contains(key)
}

// Range holds the read lock for the whole iteration; cb must not call back into s.
func (s *Synchronized[K, V]) Range(cb func(K, V) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.m.Range(cb)
}

func (s *Synchronized[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.Len()
}

func (s *Synchronized[K, V]) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.Empty()
}

func (s *Synchronized[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m.Clear()
}

func (s *Synchronized[K, V]) Free() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m.Free()
}
