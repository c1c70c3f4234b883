// SPDX-License-Identifier: MIT

package immap

import (
	"bytes"

	"github.com/fxamacker/cbor/v2"
)

// pairDTO is the wire shape of one map entry: a fixed-size CBOR array
// rather than a map, matching the toarray convention this corpus's CBOR
// types use for compactness.
type pairDTO[K, V any] struct {
	_   struct{} `cbor:",toarray"`
	Key K
	Val V
}

func cborEncMode() (cbor.EncMode, error) {
	opts := cbor.CanonicalEncOptions()
	opts.BigIntConvert = cbor.BigIntConvertShortest
	opts.Time = cbor.TimeRFC3339
	return opts.EncMode()
}

func cborDecMode() (cbor.DecMode, error) {
	opts := cbor.DecOptions{
		BinaryUnmarshaler: cbor.BinaryUnmarshalerByteString,
	}
	return opts.DecMode()
}

// MarshalCBOR encodes the map as a canonical CBOR array of key/value
// pairs. The trie structure itself (sparse/dense/collision node shape) is
// not part of the wire format: it is rebuilt on load by re-inserting every
// pair, so two maps built in different orders serialize to pair lists that
// may differ but always decode back to equal maps.
func (m *Map[K, V]) MarshalCBOR() ([]byte, error) {
	pairs := make([]pairDTO[K, V], 0, m.Len())
	m.t.Each(func(k K, v V) bool {
		pairs = append(pairs, pairDTO[K, V]{Key: k, Val: v})
		return true
	})

	mode, err := cborEncMode()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := mode.NewEncoder(&buf)
	if err := enc.Encode(pairs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadCBOR decodes a snapshot written by MarshalCBOR into a new Map using
// the given key/value capabilities.
func LoadCBOR[K, V any](data []byte, keys Hasher[K], vals Hasher[V]) (*Map[K, V], error) {
	mode, err := cborDecMode()
	if err != nil {
		return nil, err
	}
	var pairs []pairDTO[K, V]
	if err := mode.NewDecoder(bytes.NewReader(data)).Decode(&pairs); err != nil {
		return nil, err
	}
	out := New[K, V](keys, vals)
	for _, p := range pairs {
		out = out.With(p.Key, p.Val)
	}
	return out, nil
}
