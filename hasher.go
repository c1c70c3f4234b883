// SPDX-License-Identifier: MIT

package immap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Hasher supplies the hash function and equality relation a Map needs for
// its key (or value) type. It is supplied explicitly by the caller at
// construction time rather than inferred through reflection or a
// comparable constraint, so Maps can hold non-comparable value types.
type Hasher[T any] interface {
	Hash(v T) uint64
	Equal(a, b T) bool
}

// ComparableHasher is the default Hasher for any comparable type, built on
// hash/maphash's generic WriteComparable. Its Equal is consistent with ==.
type ComparableHasher[T comparable] struct {
	_ [0]func(T) // disallow comparing ComparableHasher values themselves
}

var comparableSeed = maphash.MakeSeed()

func (ComparableHasher[T]) Hash(v T) uint64 {
	var h maphash.Hash
	h.SetSeed(comparableSeed)
	maphash.WriteComparable(&h, v)
	return h.Sum64()
}

func (ComparableHasher[T]) Equal(a, b T) bool { return a == b }

// StringHasher hashes strings with xxhash, matching the byte-oriented
// hashing this corpus's own HAMT implementations use for string/[]byte
// keys.
type StringHasher struct{}

func (StringHasher) Hash(v string) uint64    { return xxhash.Sum64String(v) }
func (StringHasher) Equal(a, b string) bool  { return a == b }

// BytesHasher hashes []byte with xxhash.
type BytesHasher struct{}

func (BytesHasher) Hash(v []byte) uint64      { return xxhash.Sum64(v) }
func (BytesHasher) Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Uint64Hasher hashes uint64 keys by mixing them through xxhash, avoiding
// the identity-hash pathologies a bare uint64-as-hash would have against a
// bitmap trie (consecutive keys would otherwise all collide in the same
// low bits).
type Uint64Hasher struct{}

func (Uint64Hasher) Hash(v uint64) uint64 {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	return xxhash.Sum64(buf[:])
}
func (Uint64Hasher) Equal(a, b uint64) bool { return a == b }

// UUIDHasher hashes google/uuid.UUID keys.
type UUIDHasher struct{}

func (UUIDHasher) Hash(v uuid.UUID) uint64     { return xxhash.Sum64(v[:]) }
func (UUIDHasher) Equal(a, b uuid.UUID) bool { return a == b }
