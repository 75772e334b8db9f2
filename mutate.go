// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// This file implements spec.md §4.4: indexed insert and remove, split
// into the cheap tail-boundary cases and the trie-interior cases that
// fall back to split+append+join (§4.5, §4.6, §4.7).

// Append adds x to the end of v and returns v (spec.md §6 append).
func (v *Vector[T]) Append(x T) *Vector[T] {
	checkCapacity("append", v.size, 1)
	tail := v.claimTail()
	if len(tail.values) < Span {
		tail.values = append(tail.values, x)
		v.tailSize++
		v.size++
		v.bumpModCount()
		return v
	}

	v.pushTail()
	v.tail = newLeaf(append(make([]T, 0, Span), x))
	v.owns |= ownsTail
	v.tailSize = 1
	v.size++
	v.bumpModCount()
	return v
}

// Insert inserts x at index i, shifting everything from i onward one
// place to the right, and returns v (spec.md §4.4, §6 insert).
func (v *Vector[T]) Insert(i int, x T) *Vector[T] {
	checkInsertIndex("insert", i, v.size)
	checkCapacity("insert", v.size, 1)

	to := v.tailOffset()
	switch {
	case i == v.size:
		return v.Append(x)
	case i >= to:
		v.insertIntoTail(i-to, x)
	default:
		v.insertInTrie(i, x)
	}
	v.bumpModCount()
	return v
}

// insertIntoTail shifts tail elements right by one to make room for x
// at local position p. If the tail is already full, the shift overflows
// it: the (still Span-length) front of the shifted array is pushed down
// into the trie, and a single-element tail is re-seeded with the
// displaced last element (spec.md §4.4).
func (v *Vector[T]) insertIntoTail(p int, x T) {
	tail := v.claimTail()
	if len(tail.values) < Span {
		oldLen := len(tail.values)
		tail.values = append(tail.values, x)
		copy(tail.values[p+1:], tail.values[p:oldLen])
		tail.values[p] = x
		v.tailSize++
		v.size++
		return
	}

	full := make([]T, Span+1)
	copy(full[:p], tail.values[:p])
	full[p] = x
	copy(full[p+1:], tail.values[p:])
	displaced := full[Span]

	tail.values = full[:Span]
	v.pushTail()
	v.tail = newLeaf(append(make([]T, 0, Span), displaced))
	v.owns |= ownsTail
	v.tailSize = 1
	v.size++
}

// insertInTrie inserts x at an index strictly inside the trie (spec.md
// §4.4: "split the root at the target index into left/right subtrees;
// append the new element to the left; concatenate the right onto the
// result").
func (v *Vector[T]) insertInTrie(i int, x T) {
	fid, mc := v.forkID, v.modCount
	left, right := v.Split(i)
	left.Append(x)
	left.Join(right)
	*v = *left
	v.forkID = fid
	v.modCount = mc
}

// Remove deletes the element at index i, shifting everything after it
// one place to the left, and returns the removed value (spec.md §4.4,
// §6 remove).
func (v *Vector[T]) Remove(i int) T {
	checkIndex("remove", i, v.size)

	to := v.tailOffset()
	var removed T
	if i >= to {
		removed = v.removeFromTail(i - to)
	} else {
		removed = v.removeFromTrie(i)
	}
	v.bumpModCount()
	return removed
}

func (v *Vector[T]) removeFromTail(p int) T {
	tail := v.claimTail()
	removed := tail.values[p]
	tail.values = append(tail.values[:p], tail.values[p+1:]...)
	v.tailSize--
	v.size--
	if v.tailSize == 0 {
		if v.size > 0 {
			v.pullTail()
		} else {
			v.tail = nil
			v.owns &^= ownsTail
		}
	}
	return removed
}

// removeFromTrie deletes an index strictly inside the trie: equivalent
// to join(prefix, suffix) where prefix/suffix are the two edges of a
// split around the removed element (spec.md §4.4).
func (v *Vector[T]) removeFromTrie(i int) T {
	removed := v.Get(i)
	fid, mc := v.forkID, v.modCount
	left, right := v.Split(i)
	_, rest := right.Split(1)
	left.Join(rest)
	*v = *left
	v.forkID = fid
	v.modCount = mc
	return removed
}

// RemoveRange deletes the half-open range [lo, hi) and returns v
// (spec.md §4.4 remove_range). It is implemented as join(prefix, suffix):
// one Split at lo, a second Split of the rest at hi-lo, then a Join.
func (v *Vector[T]) RemoveRange(lo, hi int) *Vector[T] {
	if lo < 0 || hi < lo || hi > v.size {
		panic(&IndexError{Op: "remove_range", Index: hi, Size: v.size})
	}
	if lo == hi {
		return v
	}

	fid, mc := v.forkID, v.modCount
	prefix, rest := v.Split(lo)
	_, suffix := rest.Split(hi - lo)
	prefix.Join(suffix)
	*v = *prefix
	v.forkID = fid
	v.modCount = mc
	v.bumpModCount()
	return v
}
