package trie

// createNode builds the replacement for a leaf slot that a second key wants
// to occupy. If the two keys truly share a hash, or the trie has run out of
// bits to subdivide on (shift has reached MaxDepth levels), they are folded
// into one collisionNode instead of being nested indefinitely. Otherwise
// they only coincide in this level's bit window, so both are re-inserted
// one level deeper via an empty sparse node, letting their hashes diverge.
func createNode[K, V any](ctx *opCtx[K, V], shift uint, keyA K, valA V, hashB uint64, keyB K, valB V) node[K, V] {
	hashA := ctx.keys.Hash(keyA)
	if hashA == hashB || shift >= MaxDepth*BitsPerLevel {
		return &collisionNode[K, V]{
			hash: hashA,
			entries: []collisionEntry[K, V]{
				{key: keyA, val: valA},
				{key: keyB, val: valB},
			},
		}
	}
	n := emptySparse[K, V]()
	n1, _ := n.assoc(ctx, shift, hashA, keyA, valA)
	n2, _ := n1.assoc(ctx, shift, hashB, keyB, valB)
	return n2
}
