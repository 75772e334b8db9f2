// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// This file implements spec.md §4.7 (concatenation with rebalancing)
// and §4.8 (join / join_at). Like split.go, concatSubtree and its
// helpers never mutate their inputs: they read two existing tries and
// build an entirely new merged structure, reusing untouched subtrees by
// pointer. See DESIGN.md for why this trades a little extra cloning on
// the first subsequent write for a single, always-safe implementation.
//
// The algorithm follows the standard RRB-tree concatenation shape
// (Bagwell & Rompf): descend along the taller side's boundary child
// until both sides are at the same shift, merge their boundary children
// (or fuse two short leaves), then rebalance the combined child list so
// no more nodes remain than the search-step invariant allows, climbing
// back up one level at a time. A level may need to hand back two nodes
// instead of one if rebalancing still leaves more than Span children;
// the caller folds that into its own child list, and only the outermost
// call wraps a leftover pair under a fresh root.

// concatTrie merges two tries. Neither needs a full rightmost leaf: Join
// pushes each side's tail, full or not, into its trie first.
// Either side may be nil (empty).
func concatTrie[T any](left *node[T], leftShift int, right *node[T], rightShift int) (*node[T], int) {
	if left == nil {
		return right, rightShift
	}
	if right == nil {
		return left, leftShift
	}
	result, resultShift := concatSubtree(left, leftShift, right, rightShift)
	if len(result) == 1 {
		return result[0], resultShift
	}
	root := buildFromChildren(result, resultShift+Shift)
	return root, resultShift + Shift
}

// concatSubtree merges left and right, returning one or two nodes — at
// shift resultShift — ready to be spliced into the caller's own child
// list. Two nodes come back only when rebalancing could not bring the
// merged child count down to Span or fewer.
func concatSubtree[T any](left *node[T], leftShift int, right *node[T], rightShift int) (result []*node[T], resultShift int) {
	if leftShift == 0 && rightShift == 0 {
		if len(left.values)+len(right.values) <= Span {
			fused := newLeaf(append(append(make([]T, 0, Span), left.values...), right.values...))
			return []*node[T]{fused}, 0
		}
		return []*node[T]{left, right}, 0
	}

	switch {
	case leftShift > rightShift:
		lastIdx := len(left.children) - 1
		mid, _ := concatSubtree(left.children[lastIdx], leftShift-Shift, right, rightShift)
		combined := append(append([]*node[T]{}, left.children[:lastIdx]...), mid...)
		return finishLevel(combined, leftShift, leftShift-Shift)

	case leftShift < rightShift:
		mid, _ := concatSubtree(left, leftShift, right.children[0], rightShift-Shift)
		combined := append(append([]*node[T]{}, mid...), right.children[1:]...)
		return finishLevel(combined, rightShift, rightShift-Shift)

	default:
		lastIdx := len(left.children) - 1
		mid, _ := concatSubtree(left.children[lastIdx], leftShift-Shift, right.children[0], rightShift-Shift)
		combined := append(append(append([]*node[T]{}, left.children[:lastIdx]...), mid...), right.children[1:]...)
		return finishLevel(combined, leftShift, leftShift-Shift)
	}
}

// finishLevel rebalances a combined child list (at childShift) and
// wraps the result into one or two parent nodes at parentShift.
func finishLevel[T any](combined []*node[T], parentShift, childShift int) ([]*node[T], int) {
	balanced := redistribute(combined, childShift)
	if len(balanced) <= Span {
		return []*node[T]{buildFromChildren(balanced, parentShift)}, parentShift
	}
	left := buildFromChildren(balanced[:Span], parentShift)
	right := buildFromChildren(balanced[Span:], parentShift)
	return []*node[T]{left, right}, parentShift
}

// redistribute implements the rebalancing pass of spec.md §4.7: given a
// list of same-shift nodes produced by merging two subtrees, it ensures
// no more entries remain than ceil(total/Span)+Margin by filling each
// short node up to Span with grandchildren taken from the nodes after
// it. Nodes already at or above doNotRedistribute are left untouched;
// no minimum width is enforced on the nodes it returns.
func redistribute[T any](list []*node[T], shift int) []*node[T] {
	if len(list) <= 1 {
		return list
	}
	total := 0
	for _, n := range list {
		total += n.numChildren()
	}
	minLen := (total + Span - 1) / Span
	maxLen := minLen + Margin
	if len(list) <= maxLen {
		return list
	}

	out := make([]*node[T], 0, maxLen)
	i := 0
	for i < len(list) {
		cur := list[i]
		if cur.numChildren() >= doNotRedistribute {
			out = append(out, cur)
			i++
			continue
		}
		merged := cur.shallowClone()
		j := i + 1
		for merged.numChildren() < Span && j < len(list) {
			rest := donate(merged, list[j], shift)
			if rest == nil {
				j++
			} else {
				list[j] = rest
			}
		}
		if shift > 0 {
			rebuildParent(merged, shift)
		}
		out = append(out, merged)
		i = j
	}
	return out
}

// donate moves grandchildren from the front of src into dst (dst is
// already a private clone being filled) until dst reaches Span entries
// or src is exhausted. src is never mutated; the returned remainder, if
// any, is a fresh node reading the untaken tail of src's backing slice,
// with its own size table (re)computed from its actual children so it
// is correctly tagged strict/relaxed no matter what src was — shift is
// the level dst/src themselves live at, matching redistribute's own
// shift parameter, needed because this remainder may later be emitted
// directly by redistribute's passthrough branch without going through
// another rebuildParent call.
func donate[T any](dst, src *node[T], shift int) *node[T] {
	room := Span - dst.numChildren()
	n := src.numChildren()
	take := room
	if take > n {
		take = n
	}
	if dst.isLeaf() {
		dst.values = append(dst.values, src.values[:take]...)
		if take == n {
			return nil
		}
		return newLeaf(src.values[take:])
	}
	dst.children = append(dst.children, src.children[:take]...)
	if take == n {
		return nil
	}
	remainder := &node[T]{children: src.children[take:]}
	rebuildParent(remainder, shift)
	return remainder
}

// Join appends other's entire contents onto v in place and returns v
// (spec.md §4.7, §4.8, §6 join). other is left empty afterward.
func (v *Vector[T]) Join(other *Vector[T]) *Vector[T] {
	if other.size == 0 {
		return v
	}
	if v.size == 0 {
		fid, mc := v.forkID, v.modCount
		*v = *other
		v.forkID = fid
		v.modCount = mc
		*other = Vector[T]{forkID: newForkID()}
		v.bumpModCount()
		return v
	}

	newSize := v.size + other.size

	if v.tailSize > 0 {
		v.pushTail()
	}
	leftRoot, leftShift := v.root, v.rootShift

	rightRoot, rightShift := other.root, other.rootShift
	if other.tailSize > 0 {
		tailLeaf := newLeaf(append(make([]T, 0, Span), other.tailValues()...))
		if rightRoot == nil {
			rightRoot, rightShift = tailLeaf, 0
		} else {
			rightRoot, rightShift = concatTrie(rightRoot, rightShift, tailLeaf, 0)
		}
	}

	merged, mergedShift := concatTrie(leftRoot, leftShift, rightRoot, rightShift)

	*other = Vector[T]{forkID: newForkID()}

	v.root = merged
	v.rootShift = mergedShift
	v.tail = nil
	v.tailSize = 0
	v.owns = 0
	v.size = newSize
	v.pullTail()
	v.bumpModCount()
	return v
}

// JoinAt inserts other's entire contents at index i and returns v
// (spec.md §4.8 join_at: "split v at i, join(left, other), then
// join(result, right)"). other is left empty afterward.
func (v *Vector[T]) JoinAt(i int, other *Vector[T]) *Vector[T] {
	checkInsertIndex("join_at", i, v.size)
	if i == v.size {
		return v.Join(other)
	}
	fid, mc := v.forkID, v.modCount
	left, right := v.Split(i)
	left.Join(other)
	left.Join(right)
	*v = *left
	v.forkID = fid
	v.modCount = mc
	v.bumpModCount()
	return v
}
