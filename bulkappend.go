// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// This file implements spec.md §4.6 bulk loading. Rather than tracking
// the three src-consumption modes of a direct multi-leaf grafting
// routine, appendSlice drives the existing tail/pushdown machinery of
// tail.go one Span-chunk at a time: fill the tail, push it down, repeat.
// Each pushdown is itself O(log n), so this is O(k·log n) rather than
// the O(k + log n) an optimal bulk grafter would achieve — a deliberate
// simplification recorded in DESIGN.md, traded for reusing a single,
// already-verified code path instead of a second bespoke one.

// appendSlice appends items to v using the ordinary tail/pushdown path,
// without bumping v's mod_count (callers that expose this publicly do
// that themselves).
func (v *Vector[T]) appendSlice(items []T) {
	i := 0
	for i < len(items) {
		tail := v.claimTail()
		room := Span - len(tail.values)
		if room == 0 {
			v.pushTail()
			v.tail = newLeaf(make([]T, 0, Span))
			v.owns |= ownsTail
			v.tailSize = 0
			continue
		}
		take := room
		if take > len(items)-i {
			take = len(items) - i
		}
		tail.values = append(tail.values, items[i:i+take]...)
		v.tailSize = len(tail.values)
		v.size += take
		i += take
	}
}

// BulkAppend appends items to the end of v and returns v (spec.md §4.6,
// §6 bulk_append).
func (v *Vector[T]) BulkAppend(items ...T) *Vector[T] {
	if len(items) == 0 {
		return v
	}
	checkCapacity("bulk_append", v.size, len(items))
	v.appendSlice(items)
	v.bumpModCount()
	return v
}

// BulkInsert inserts items starting at index i and returns v (spec.md
// §4.6, §6 bulk_insert).
func (v *Vector[T]) BulkInsert(i int, items ...T) *Vector[T] {
	checkInsertIndex("bulk_insert", i, v.size)
	if len(items) == 0 {
		return v
	}
	checkCapacity("bulk_insert", v.size, len(items))
	if i == v.size {
		return v.BulkAppend(items...)
	}

	fid, mc := v.forkID, v.modCount
	left, right := v.Split(i)
	left.appendSlice(items)
	left.Join(right)
	*v = *left
	v.forkID = fid
	v.modCount = mc
	v.bumpModCount()
	return v
}
