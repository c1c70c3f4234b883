// SPDX-License-Identifier: MIT

package immap

import (
	"iter"

	"github.com/nwca/immap/internal/trie"
)

// Map is a persistent associative map from keys K to values V. The zero
// Map is not usable; construct one with New, NewComparable, FromMap, or
// FromSeq.
type Map[K, V any] struct {
	t         trie.Trie[K, V]
	size      int
	keyHasher Hasher[K]
	valHasher Hasher[V]

	hashOnce cachedHash
}

// cachedHash holds the map's own lazily-computed Hash. Like the node hash
// cache in this corpus's mutable HAMT, concurrent first-computations may
// race; both always agree on the same deterministic value, so the race is
// benign and no lock is taken.
type cachedHash struct {
	val   uint64
	valid bool
}

// New returns an empty Map using the given key and value capabilities.
func New[K, V any](keys Hasher[K], vals Hasher[V]) *Map[K, V] {
	if keys == nil || vals == nil {
		panic("immap.New: nil Hasher")
	}
	return &Map[K, V]{
		t:         trie.Empty[K, V](keys, vals),
		keyHasher: keys,
		valHasher: vals,
	}
}

// NewComparable returns an empty Map for ordinary comparable key and value
// types, using ComparableHasher for both.
func NewComparable[K, V comparable]() *Map[K, V] {
	return New[K, V](ComparableHasher[K]{}, ComparableHasher[V]{})
}

// FromMap builds a Map from a built-in Go map, using ComparableHasher for
// the (necessarily comparable) key type and the given Hasher for values.
func FromMap[K comparable, V any](vals Hasher[V], m map[K]V) *Map[K, V] {
	out := New[K, V](ComparableHasher[K]{}, vals)
	for k, v := range m {
		out = out.With(k, v)
	}
	return out
}

// FromSeq builds a Map from an iterator of (key, value) pairs, later pairs
// overwriting earlier ones for the same key.
func FromSeq[K, V any](keys Hasher[K], vals Hasher[V], seq iter.Seq2[K, V]) *Map[K, V] {
	out := New[K, V](keys, vals)
	for k, v := range seq {
		out = out.With(k, v)
	}
	return out
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// Get returns the value bound to key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.t.Find(key)
}

// GetOr returns the value bound to key, or def if key is absent.
func (m *Map[K, V]) GetOr(key K, def V) V {
	if v, ok := m.t.Find(key); ok {
		return v
	}
	return def
}

// Contains reports whether key is bound in the map.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.t.Find(key)
	return ok
}

// At returns the value bound to key, or a *NotFoundError[K] if absent.
func (m *Map[K, V]) At(key K) (V, error) {
	if v, ok := m.t.Find(key); ok {
		return v, nil
	}
	var zero V
	return zero, &NotFoundError[K]{Key: key}
}

// With returns a Map with key bound to val, leaving the receiver untouched.
// If val is already bound to key, With returns the receiver itself.
func (m *Map[K, V]) With(key K, val V) *Map[K, V] {
	newTrie, changed, added := m.t.Assoc(key, val)
	if !changed {
		return m
	}
	size := m.size
	if added {
		size++
	}
	return &Map[K, V]{t: newTrie, size: size, keyHasher: m.keyHasher, valHasher: m.valHasher}
}

// Without returns a Map with key unbound, leaving the receiver untouched.
// If key was absent, the returned Map is equivalent to the receiver.
func (m *Map[K, V]) Without(key K) *Map[K, V] {
	newTrie, removed := m.t.Without(key)
	if !removed {
		return m
	}
	return &Map[K, V]{t: newTrie, size: m.size - 1, keyHasher: m.keyHasher, valHasher: m.valHasher}
}

// MergeMap returns a Map with every pair of other added, overwriting
// existing keys.
func (m *Map[K, V]) MergeMap(other map[K]V) *Map[K, V] {
	out := m
	for k, v := range other {
		out = out.With(k, v)
	}
	return out
}

// MergeSeq returns a Map with every pair from seq added, overwriting
// existing keys.
func (m *Map[K, V]) MergeSeq(seq iter.Seq2[K, V]) *Map[K, V] {
	out := m
	for k, v := range seq {
		out = out.With(k, v)
	}
	return out
}

// All returns an iterator over (key, value) pairs in unspecified order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.t.Each(yield)
	}
}

// Keys returns an iterator over keys in unspecified order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.t.Each(func(k K, _ V) bool { return yield(k) })
	}
}

// Values returns an iterator over values in unspecified order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.t.Each(func(_ K, v V) bool { return yield(v) })
	}
}
