// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// sizeTable holds the cumulative child-subtree sizes for a relaxed parent
// node (spec.md §3 "Size table"). Entry i is the total element count of
// children[0..i]. Per spec.md §9 "Size-table narrowing", values are stored
// as (cumulative size - 1) in the narrowest integer width that can hold
// the maximum possible cumulative size at this node's position in the
// trie, so a node one level above the leaves needs only a handful of bits
// per entry rather than a full machine word.
type sizeTable struct {
	width sizeWidth
	b8    []uint8
	b16   []uint16
	b32   []uint32
}

type sizeWidth uint8

const (
	width8 sizeWidth = iota
	width16
	width32
)

// capacityAtShift returns the maximum number of elements a fully dense
// subtree rooted at the given shift can hold: SPAN for a leaf (shift 0),
// SPAN^2 one level up, and so on.
func capacityAtShift(shift int) int {
	c := 1
	for s := 0; s <= shift; s += Shift {
		c *= Span
	}
	return c
}

// chooseWidth returns the narrowest width that can represent maxValueMinus1.
func chooseWidth(maxValueMinus1 uint64) sizeWidth {
	switch {
	case maxValueMinus1 <= 0xFF:
		return width8
	case maxValueMinus1 <= 0xFFFF:
		return width16
	default:
		return width32
	}
}

// newSizeTable creates an empty size table sized for a parent node at the
// given shift (the parent's own shift, i.e. the shift used to index into
// its children slice).
func newSizeTable(shift int, capHint int) *sizeTable {
	maxCumulative := uint64(capacityAtShift(shift)) - 1
	st := &sizeTable{width: chooseWidth(maxCumulative)}
	switch st.width {
	case width8:
		st.b8 = make([]uint8, 0, capHint)
	case width16:
		st.b16 = make([]uint16, 0, capHint)
	default:
		st.b32 = make([]uint32, 0, capHint)
	}
	return st
}

func (st *sizeTable) len() int {
	switch st.width {
	case width8:
		return len(st.b8)
	case width16:
		return len(st.b16)
	default:
		return len(st.b32)
	}
}

// get returns the cumulative size of children[0..i].
func (st *sizeTable) get(i int) int {
	switch st.width {
	case width8:
		return int(st.b8[i]) + 1
	case width16:
		return int(st.b16[i]) + 1
	default:
		return int(st.b32[i]) + 1
	}
}

// appendCumulative appends a new cumulative-size entry.
func (st *sizeTable) appendCumulative(cumulative int) {
	v := uint64(cumulative - 1)
	switch st.width {
	case width8:
		st.b8 = append(st.b8, uint8(v))
	case width16:
		st.b16 = append(st.b16, uint16(v))
	default:
		st.b32 = append(st.b32, uint32(v))
	}
}

// set overwrites entry i with a new cumulative size.
func (st *sizeTable) set(i, cumulative int) {
	v := uint64(cumulative - 1)
	switch st.width {
	case width8:
		st.b8[i] = uint8(v)
	case width16:
		st.b16[i] = uint16(v)
	default:
		st.b32[i] = uint32(v)
	}
}

// setLast overwrites the final entry with a new cumulative size; used
// when only the rightmost child's subtree size changed.
func (st *sizeTable) setLast(cumulative int) { st.set(st.len()-1, cumulative) }

// truncate drops all but the first n entries.
func (st *sizeTable) truncate(n int) {
	switch st.width {
	case width8:
		st.b8 = st.b8[:n]
	case width16:
		st.b16 = st.b16[:n]
	default:
		st.b32 = st.b32[:n]
	}
}

// total returns the cumulative size of all children, i.e. get(len-1).
func (st *sizeTable) total() int {
	n := st.len()
	if n == 0 {
		return 0
	}
	return st.get(n - 1)
}

// clone returns an independent copy, used when a relaxed parent is
// cloned for write.
func (st *sizeTable) clone() *sizeTable {
	c := &sizeTable{width: st.width}
	switch st.width {
	case width8:
		c.b8 = append([]uint8(nil), st.b8...)
	case width16:
		c.b16 = append([]uint16(nil), st.b16...)
	default:
		c.b32 = append([]uint32(nil), st.b32...)
	}
	return c
}

// buildSizeTable computes a fresh, fully populated size table for a
// relaxed parent whose children are given, at the parent's own shift.
func buildSizeTable[T any](children []*node[T], shift int) *sizeTable {
	st := newSizeTable(shift, len(children))
	total := 0
	for _, c := range children {
		total += subtreeSize(c, shift-Shift)
		st.appendCumulative(total)
	}
	return st
}
