// SPDX-License-Identifier: MIT

package immap

import "fmt"

// hashSeed seeds the map-level Hash the same way this system's distilled-
// from frozendict does: an arbitrary but fixed constant folded with the
// XOR of each pair's key and value hash.
const hashSeed = 0x3039

// Hash returns a hash of the map's contents: order-independent, and equal
// for any two Maps that are Equal. The result is cached after first use.
func (m *Map[K, V]) Hash() uint64 {
	if m.hashOnce.valid {
		return m.hashOnce.val
	}
	h := uint64(hashSeed)
	m.t.Each(func(k K, v V) bool {
		h += m.keyHasher.Hash(k) ^ m.valHasher.Hash(v)
		return true
	})
	m.hashOnce.val = h
	m.hashOnce.valid = true
	return h
}

// Equal reports whether m and other contain the same key/value pairs,
// using m's value Hasher to compare values. The two maps may use different
// (but compatible) key Hashers.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m == other {
		return true
	}
	if m.Len() != other.Len() {
		return false
	}
	if m.Hash() != other.Hash() {
		return false
	}
	equal := true
	m.t.Each(func(k K, v V) bool {
		ov, ok := other.Get(k)
		if !ok || !m.valHasher.Equal(v, ov) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// String returns a diagnostic representation of the map's contents.
func (m *Map[K, V]) String() string {
	s := "immap.Map{"
	first := true
	m.t.Each(func(k K, v V) bool {
		if !first {
			s += ", "
		}
		first = false
		s += fmt.Sprintf("%v: %v", k, v)
		return true
	})
	return s + "}"
}
