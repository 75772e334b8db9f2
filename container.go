// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

import "sync/atomic"

// owns flag bits (spec.md §3 Container: "a 2-bit owns flag (bit 0: tail,
// bit 1: root)").
const (
	ownsTail uint8 = 1 << 0
	ownsRoot uint8 = 1 << 1
)

// nextForkID hands out the monotonically increasing generation tokens
// used for fork_id. Grounded on the teacher's persist.transientID
// (robpike-ivy value/persist/slice.go): a single package-level counter,
// incremented once per fork, cheap enough that rotating it on every Fork
// call is free and collision-free across lineages.
var nextForkID atomic.Uint64

func newForkID() uint64 { return nextForkID.Add(1) }

// Vector is an ordered, index-addressed sequence supporting O(1)
// whole-sequence fork, O(log n) range fork, O(log n) amortized join,
// and O(log n) get/set/insert/remove (spec.md §6).
//
// Vector's mutating methods update the vector in place whenever it
// exclusively owns the nodes on the write path, and transparently clone
// on write otherwise — see the owns field. This is not a
// persistent-by-default structure (spec.md §1 Non-goals); call Fork to
// snapshot before a mutation that must not be observed elsewhere.
//
// The zero Vector is an empty, ready-to-use sequence.
type Vector[T any] struct {
	size      int // total element count
	tailSize  int // 0..Span elements held in tail
	rootShift int // height*Shift; 0 means root is a leaf (or root is nil)
	root      *node[T]
	tail      *node[T] // leaf node; nil means "no elements owned, zero-length"
	owns      uint8    // ownsRoot | ownsTail
	forkID    uint64
	modCount  uint64
}

// New returns a Vector containing items, in order.
func New[T any](items ...T) *Vector[T] {
	v := &Vector[T]{forkID: newForkID()}
	if len(items) > 0 {
		v.BulkAppend(items...)
	}
	return v
}

// Len returns the number of elements in v.
func (v *Vector[T]) Len() int { return v.size }

// tailOffset is the index of the first element held in the tail: spec.md
// §3 invariant "tail_offset = size − tail_size".
func (v *Vector[T]) tailOffset() int { return v.size - v.tailSize }

func (v *Vector[T]) tailValues() []T {
	if v.tail == nil {
		return nil
	}
	return v.tail.values
}

// claimRoot returns v's root, cloning it for write first if v does not
// already own it. No-op (returns nil) if the trie is empty.
func (v *Vector[T]) claimRoot() *node[T] {
	if v.root != nil && v.owns&ownsRoot == 0 {
		v.root = v.root.shallowClone()
		v.owns |= ownsRoot
	}
	return v.root
}

// claimTail returns v's tail, cloning it for write first if v does not
// already own it.
func (v *Vector[T]) claimTail() *node[T] {
	if v.owns&ownsTail == 0 {
		values := make([]T, v.tailSize, Span)
		copy(values, v.tailValues())
		v.tail = newLeaf(values)
		v.owns |= ownsTail
	}
	return v.tail
}

// bumpModCount marks v as structurally modified, invalidating any
// Cursor watching it (spec.md §4.10, §7).
func (v *Vector[T]) bumpModCount() { v.modCount++ }
