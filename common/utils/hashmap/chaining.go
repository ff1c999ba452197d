package hashmap

import (
	"fmt"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/pkg/errors"

	"github.com/scusemua/containers/common/chain"
	"github.com/scusemua/containers/common/memory"
	"github.com/scusemua/containers/common/types"
)

var (
	ErrNoHashFunction = errors.New("no hash function was given and the key type has no default")
)

// Option configures a HashMap.
type Option func(*settings)

type settings struct {
	alloc memory.Allocator
}

// WithAllocator sets the Allocator that the bucket array and the entries are reserved from.
func WithAllocator(alloc memory.Allocator) Option {
	return func(s *settings) {
		s.alloc = alloc
	}
}

type entry[K any, V any] struct {
	key   K
	value V
}

// HashMap is a separate-chaining hash map with a bucket count that is fixed for the lifetime of the map.
//
// Each bucket is a chain of entries, most recently inserted first. Insert does not check for an existing
// entry with the same key, so a key may appear several times; lookups see the newest entry.
//
// HashMap never rehashes. Callers that need O(1) access must choose a bucket count that fits the expected
// number of entries. HashMap is not safe for concurrent use; see Synchronized.
type HashMap[K any, V any] struct {
	log logger.Logger

	buckets   []chain.Chain[entry[K, V]]
	itemCount int

	hash   HashFunc[K]
	equals types.Equals[K]
	alloc  memory.Allocator
}

// New creates a new HashMap with the specified number of buckets and returns a pointer to it.
//
// A nil hash defaults to DefaultHash[K](); if K has no default, New returns ErrNoHashFunction. A nil equals
// defaults to types.Equal. If the bucket count is not positive or the bucket array cannot be reserved, New
// returns an error wrapping types.ErrAllocation.
func New[K any, V any](bucketCount int, hash HashFunc[K], equals types.Equals[K], opts ...Option) (*HashMap[K, V], error) {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	if s.alloc == nil {
		s.alloc = memory.Heap
	}

	if hash == nil {
		hash = DefaultHash[K]()
		if hash == nil {
			return nil, ErrNoHashFunction
		}
	}
	if equals == nil {
		equals = types.Equal[K]
	}

	if bucketCount < 1 {
		return nil, errors.Wrapf(types.ErrAllocation, "cannot allocate a bucket array of size %d", bucketCount)
	}

	if err := s.alloc.Reserve(bucketCount); err != nil {
		return nil, errors.Wrapf(err, "could not allocate %d bucket(s)", bucketCount)
	}

	m := &HashMap[K, V]{
		buckets: make([]chain.Chain[entry[K, V]], bucketCount),
		hash:    hash,
		equals:  equals,
		alloc:   s.alloc,
	}
	for i := range m.buckets {
		m.buckets[i].Init(false, chain.WithAllocator[entry[K, V]](s.alloc))
	}
	config.InitLogger(&m.log, m)

	return m, nil
}

// bucket returns the chain that key belongs to. An index outside [0, Buckets()) is reduced modulo Buckets().
func (m *HashMap[K, V]) bucket(key K) *chain.Chain[entry[K, V]] {
	n := len(m.buckets)

	index := m.hash(key, n)
	if index < 0 || index >= n {
		index = ((index % n) + n) % n
	}

	return &m.buckets[index]
}

func (m *HashMap[K, V]) matches(key K) func(entry[K, V]) bool {
	return func(e entry[K, V]) bool {
		return m.equals(e.key, key)
	}
}

func (m *HashMap[K, V]) Insert(key K, value V) error {
	if err := m.bucket(key).PushFront(entry[K, V]{key: key, value: value}); err != nil {
		m.log.Warn("Could not allocate an entry for key %v: %v", key, err)
		return errors.Wrapf(err, "could not insert key %v", key)
	}

	m.itemCount++
	return nil
}

// InsertIfAbsent inserts the entry only if the key's bucket holds no entry with an equal key. Otherwise it
// returns an error wrapping types.ErrDuplicateKey and the map is unchanged.
func (m *HashMap[K, V]) InsertIfAbsent(key K, value V) error {
	b := m.bucket(key)
	if _, found := b.Find(m.matches(key)); found {
		return errors.Wrapf(types.ErrDuplicateKey, "key %v", key)
	}

	if err := b.PushFront(entry[K, V]{key: key, value: value}); err != nil {
		return errors.Wrapf(err, "could not insert key %v", key)
	}

	m.itemCount++
	return nil
}

func (m *HashMap[K, V]) Get(key K) (V, error) {
	e, found := m.bucket(key).Find(m.matches(key))
	if !found {
		var zero V
		return zero, errors.Wrapf(types.ErrNotFound, "key %v", key)
	}

	return e.value, nil
}

func (m *HashMap[K, V]) Set(key K, value V) error {
	updated := m.bucket(key).Update(m.matches(key), func(e entry[K, V]) entry[K, V] {
		e.value = value
		return e
	})
	if !updated {
		return errors.Wrapf(types.ErrNotFound, "key %v", key)
	}

	return nil
}

func (m *HashMap[K, V]) Remove(key K) (V, error) {
	e, removed := m.bucket(key).RemoveFirst(m.matches(key))
	if !removed {
		var zero V
		return zero, errors.Wrapf(types.ErrNotFound, "key %v", key)
	}

	m.itemCount--
	return e.value, nil
}

func (m *HashMap[K, V]) RemoveAll(key K) int {
	removed := m.bucket(key).RemoveAll(m.matches(key))
	m.itemCount -= removed
	return removed
}

func (m *HashMap[K, V]) Contains(key K) bool {
	_, err := m.Get(key)
	return err == nil
}

func (m *HashMap[K, V]) Range(fn func(K, V) bool) {
	for i := range m.buckets {
		contd := true
		m.buckets[i].Range(func(e entry[K, V]) bool {
			contd = fn(e.key, e.value)
			return contd
		})

		if !contd {
			return
		}
	}
}

// Len returns the number of entries in the map, duplicates included.
func (m *HashMap[K, V]) Len() int {
	return m.itemCount
}

// Buckets returns the number of buckets, which never changes.
func (m *HashMap[K, V]) Buckets() int {
	return len(m.buckets)
}

// BucketLen returns the number of entries in the bucket at index.
func (m *HashMap[K, V]) BucketLen(index int) int {
	return m.buckets[index].Len()
}

// LoadFactor returns the mean number of entries per bucket.
func (m *HashMap[K, V]) LoadFactor() float64 {
	return float64(m.itemCount) / float64(len(m.buckets))
}

func (m *HashMap[K, V]) Empty() bool {
	return m.itemCount == 0
}

// Clear releases every entry. The bucket array is kept.
func (m *HashMap[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i].Clear()
	}
	m.itemCount = 0
}

// Free releases every entry and the bucket array. The map must not be used afterwards.
func (m *HashMap[K, V]) Free() {
	if m.buckets == nil {
		return
	}

	m.Clear()
	m.alloc.Release(len(m.buckets))
	m.buckets = nil

	m.log.Debug("Freed hash map.")
}

func (m *HashMap[K, V]) String() string {
	return fmt.Sprintf("HashMap[Len=%d, Buckets=%d]", m.itemCount, len(m.buckets))
}
