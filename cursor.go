// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// Cursor implements spec.md §4.10's leaf-granularity traversal: a
// bottom-up walk that hands the caller a whole leaf slice at a time
// rather than one element per call, and that detects invalidation
// (spec.md §7 "concurrent modification") by comparing a snapshot of the
// owning Vector's fork_id and mod_count against its current values.
//
// A Cursor is forward- and backward-iterable but is not safe to share
// across goroutines, matching the single-writer-per-lineage model of
// spec.md §5.
type Cursor[T any] struct {
	v        *Vector[T]
	forkID   uint64
	modCount uint64
	leaf     *node[T]
	leafBase int
}

// Cursor returns a Cursor positioned at the leaf containing index i
// (spec.md §4.10 leaf_cursor).
func (v *Vector[T]) Cursor(i int) *Cursor[T] {
	checkIndex("cursor", i, v.size)
	c := &Cursor[T]{v: v, forkID: v.forkID, modCount: v.modCount}
	c.seek(i)
	return c
}

// checkValid panics with a *CursorError if v's fork_id or mod_count has
// changed since c was created: a structural change to v, or v being
// emptied by Join into another vector. Forking v changes neither, so a
// cursor survives a Fork of the vector it walks.
func (c *Cursor[T]) checkValid(op string) {
	if c.v.forkID != c.forkID || c.v.modCount != c.modCount {
		panic(&CursorError{Op: op})
	}
}

// seek repositions the cursor at the leaf containing global index i,
// descending from the root (or pointing straight at the tail when i
// falls in it).
func (c *Cursor[T]) seek(i int) {
	v := c.v
	if i >= v.tailOffset() {
		c.leaf = v.tail
		c.leafBase = v.tailOffset()
		return
	}
	n := v.root
	base := 0
	idx := i
	for shift := v.rootShift; shift > 0; shift -= Shift {
		slot, local := descendSlot(n, shift, idx)
		base += idx - local
		idx = local
		n = n.children[slot]
	}
	c.leaf = n
	c.leafBase = base
}

// Leaf returns the elements of the leaf the cursor currently sits on.
// The slice must not be retained past the next structural change to the
// owning Vector.
func (c *Cursor[T]) Leaf() []T {
	c.checkValid("leaf")
	if c.leaf == nil {
		return nil
	}
	return c.leaf.values
}

// LeafBase returns the global index of the first element of the
// current leaf.
func (c *Cursor[T]) LeafBase() int {
	c.checkValid("leaf_base")
	return c.leafBase
}

// Next advances the cursor to the following leaf, returning false (and
// leaving the cursor positioned on the last leaf) if there is none.
func (c *Cursor[T]) Next() bool {
	c.checkValid("next")
	next := c.leafBase + len(c.leaf.values)
	if next >= c.v.size {
		return false
	}
	c.seek(next)
	return true
}

// Prev moves the cursor to the preceding leaf, returning false (and
// leaving the cursor positioned on the first leaf) if there is none.
func (c *Cursor[T]) Prev() bool {
	c.checkValid("prev")
	if c.leafBase == 0 {
		return false
	}
	c.seek(c.leafBase - 1)
	return true
}
