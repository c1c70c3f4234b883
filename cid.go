// SPDX-License-Identifier: MIT

package immap

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// CID returns a content identifier over the map's canonical CBOR
// snapshot. The snapshot lists pairs in trie iteration order, so two Maps
// with the same contents get the same CID when their keys hash alike and
// no two keys share a full hash. Keys held together in a collision node
// are listed in insertion order, and ComparableHasher uses a per-process
// seed, so in those cases equal Maps can have different CIDs.
func (m *Map[K, V]) CID() (cid.Cid, error) {
	data, err := m.MarshalCBOR()
	if err != nil {
		return cid.Undef, err
	}
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.DagCBOR, mh), nil
}
