// Package trie implements the node algebra of a persistent Hash Array
// Mapped Trie: sparse bitmap-indexed nodes, dense array-indexed nodes, and
// hash-collision nodes, plus the bit arithmetic shared by all three.
package trie

import "math/bits"

const (
	// BitsPerLevel is the number of hash bits consumed at each trie level.
	BitsPerLevel = 5
	// Fanout is the maximum number of children of a node (1 << BitsPerLevel).
	Fanout = 1 << BitsPerLevel
	// LevelMask isolates the BitsPerLevel bits consumed at one level.
	LevelMask = Fanout - 1
	// DenseThreshold is the child count at or above which a sparse node is
	// promoted to a dense node.
	DenseThreshold = 16
	// SparseThreshold is the child count at or below which a dense node is
	// demoted back to a sparse node.
	SparseThreshold = 8
	// MaxDepth is the deepest level at which hash bits remain significant.
	// Beyond it every key maps to mask 0, so createNode always produces a
	// collisionNode acting as an exhausted-keyspace bucket instead of
	// recursing forever.
	MaxDepth = (64 + BitsPerLevel - 1) / BitsPerLevel
)

// mask extracts the BitsPerLevel-bit slice of h at level shift.
func mask(h uint64, shift uint) uint32 {
	return uint32((h >> shift) & LevelMask)
}

// bitpos is the single-bit position in a 32-bit bitmap corresponding to the
// slice of h at level shift.
func bitpos(h uint64, shift uint) uint32 {
	return 1 << mask(h, shift)
}

// index returns the popcount-based array position of bit within bitmap.
func index(bitmap, bit uint32) int {
	return bits.OnesCount32(bitmap & (bit - 1))
}

// popcount counts the set bits of a bitmap.
func popcount(bitmap uint32) int {
	return bits.OnesCount32(bitmap)
}
