package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskAndBitpos(t *testing.T) {
	h := uint64(0b10101_00001)
	assert.Equal(t, uint32(0b00001), mask(h, 0))
	assert.Equal(t, uint32(0b10101), mask(h, 5))
	assert.Equal(t, uint32(1)<<1, bitpos(h, 0))
}

func TestIndexIsPopcountOfLowerBits(t *testing.T) {
	bitmap := uint32(0b10110)
	assert.Equal(t, 0, index(bitmap, 1<<1))
	assert.Equal(t, 1, index(bitmap, 1<<2))
	assert.Equal(t, 2, index(bitmap, 1<<4))
}

func TestPopcount(t *testing.T) {
	assert.Equal(t, 0, popcount(0))
	assert.Equal(t, 3, popcount(0b1011))
	assert.Equal(t, 32, popcount(0xFFFFFFFF))
}
