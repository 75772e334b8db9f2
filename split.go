// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// This file implements spec.md §4.5: splitting a trie into an
// independent prefix/suffix pair. splitTrie and its helpers never
// mutate their inputs — they only read existing nodes and allocate new
// ones for the result, reusing untouched subtrees by pointer. This is a
// deliberate simplification over spec.md's "claim ownership while
// descending" framing: every freshly built parent node starts
// unowned (see node.go's shallowClone / claimChild), so the first write
// through a split result will transparently clone one extra layer where
// a subtree was reused by pointer rather than rebuilt. See DESIGN.md for
// the rationale (a single, always-safe implementation of split/concat
// rather than separate claiming and non-claiming variants).

// splitTrie splits the trie rooted at (root, shift), which holds
// elements [0, total), into a left part holding [0, i) and a right part
// holding [i, total). Either part may come back nil (meaning empty).
func splitTrie[T any](root *node[T], shift int, i int) (left *node[T], leftShift int, right *node[T], rightShift int) {
	if shift == 0 {
		if i <= 0 {
			return nil, 0, root, 0
		}
		if i >= len(root.values) {
			return root, 0, nil, 0
		}
		l := newLeaf(append([]T(nil), root.values[:i]...))
		r := newLeaf(append([]T(nil), root.values[i:]...))
		return l, 0, r, 0
	}

	slot, local := descendSlot(root, shift, i)
	childShift := shift - Shift
	lChild, _, rChild, _ := splitTrie(root.children[slot], childShift, local)

	leftChildren := append(append([]*node[T]{}, root.children[:slot]...), nonNil(lChild)...)
	rightChildren := append(append([]*node[T]{}, nonNil(rChild)...), root.children[slot+1:]...)

	left = buildFromChildren(leftChildren, shift)
	right = buildFromChildren(rightChildren, shift)
	return left, shift, right, shift
}

func nonNil[T any](n *node[T]) []*node[T] {
	if n == nil {
		return nil
	}
	return []*node[T]{n}
}

// buildFromChildren wraps a (possibly empty) list of same-shift
// children into a parent node at parentShift, choosing strict vs
// relaxed per spec.md §3. Returns nil for an empty list.
func buildFromChildren[T any](children []*node[T], parentShift int) *node[T] {
	if len(children) == 0 {
		return nil
	}
	n := &node[T]{children: children}
	rebuildParent(n, parentShift)
	return n
}

// containerFromTrie wraps a raw (root, shift) trie — with no separate
// tail — into a freshly independent Vector, pulling the rightmost leaf
// back out into the tail as every Vector invariant requires (spec.md §3:
// "tail_size > 0 whenever size > 0"). root may be read-only-shared with
// other lineages; pullTail's use of claimRoot/claimChild clones exactly
// the nodes that need to change, leaving any untouched subtree shared.
func containerFromTrie[T any](root *node[T], shift int) *Vector[T] {
	v := &Vector[T]{forkID: newForkID()}
	if root == nil {
		return v
	}
	v.root = root
	v.rootShift = shift
	v.size = subtreeSize(root, shift)
	v.pullTail()
	return v
}

// Split returns two new, independent vectors holding v[0:i) and v[i:size)
// (spec.md §4.5, §6's fork/fork_range use this to carve out a range).
// v itself is left unmodified and remains valid.
func (v *Vector[T]) Split(i int) (left, right *Vector[T]) {
	checkInsertIndex("split", i, v.size)

	switch {
	case i == 0:
		return New[T](), v.Clone()
	case i == v.size:
		return v.Clone(), New[T]()
	}

	// Both results may reuse v's trie nodes by pointer, so v gives up its
	// claim on them, as Clone does.
	v.owns &^= ownsRoot

	to := v.tailOffset()
	if i >= to {
		p := i - to
		left = containerFromTrie(v.root, v.rootShift)
		left.appendSlice(v.tailValues()[:p])
		right = New(v.tailValues()[p:]...)
		return left, right
	}

	var lRoot, rRoot *node[T]
	var lShift, rShift int
	if v.root != nil {
		lRoot, lShift, rRoot, rShift = splitTrie(v.root, v.rootShift, i)
	}
	left = containerFromTrie(lRoot, lShift)
	right = containerFromTrie(rRoot, rShift)
	right.appendSlice(v.tailValues())
	return left, right
}

// ForkRange returns an independent vector holding v[lo:hi) (spec.md §6
// fork_range). v itself is left unmodified and remains valid.
func (v *Vector[T]) ForkRange(lo, hi int) *Vector[T] {
	if lo < 0 || hi < lo || hi > v.size {
		panic(&IndexError{Op: "fork_range", Index: hi, Size: v.size})
	}
	_, rest := v.Split(lo)
	middle, _ := rest.Split(hi - lo)
	return middle
}

// Clone returns a new Vector sharing v's current structure (an O(1)
// whole-sequence fork; spec.md §4.5, §6 fork, §9 Fork).
func (v *Vector[T]) Clone() *Vector[T] {
	c := *v
	c.forkID = newForkID()
	v.owns = 0
	c.owns = 0
	return &c
}

// Fork is an alias for Clone matching spec.md §6's operation name.
func (v *Vector[T]) Fork() *Vector[T] { return v.Clone() }
