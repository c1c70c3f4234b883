// SPDX-License-Identifier: MIT

// Package immap implements a persistent, immutable associative map backed
// by a Hash Array Mapped Trie. Every mutating operation (With, Without,
// MergeMap, MergeSeq) returns a new Map sharing unmodified structure with
// its receiver; no operation ever modifies a Map already handed to a
// caller. A Map value is therefore safe to share across goroutines without
// external synchronization.
package immap
