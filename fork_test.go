// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

import (
	"slices"
	"testing"
	"unsafe"

	set3 "github.com/TomTonic/Set3"
)

// leafAddrs collects the identity of every leaf node reachable from v
// (trie leaves plus the tail, if any), used to detect accidental
// aliasing between lineages that should be independent.
func leafAddrs[T any](v *Vector[T]) *set3.Set3[uintptr] {
	s := set3.Empty[uintptr]()
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		if n.isLeaf() {
			s.Add(uintptr(unsafe.Pointer(n)))
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(v.root)
	if v.tail != nil {
		s.Add(uintptr(unsafe.Pointer(v.tail)))
	}
	return s
}

// TestForkIsolation is spec.md §8 scenario S1: writes through a fork
// must never be observed through the original, or any sibling fork.
func TestForkIsolation(t *testing.T) {
	base := New[int]()
	for i := range 500 {
		base.Append(i)
	}

	a := base.Fork()
	b := base.Fork()
	beforeB := leafAddrs(b)

	for i := 0; i < a.Len(); i += 7 {
		a.Set(i, -1)
	}
	a.Insert(100, -2)
	a.RemoveRange(10, 20)

	afterB := leafAddrs(b)
	if !beforeB.Equals(afterB) {
		t.Fatalf("forking and mutating one sibling changed another sibling's leaf set — ownership soundness violated")
	}
	for i := range b.Len() {
		if b.Get(i) != i {
			t.Fatalf("sibling fork corrupted at %d: got %d, want %d", i, b.Get(i), i)
		}
	}
	for i := range base.Len() {
		if base.Get(i) != i {
			t.Fatalf("original vector corrupted at %d: got %d, want %d", i, base.Get(i), i)
		}
	}
}

// TestPrependLoop is spec.md §8 scenario S2: repeatedly inserting at
// index 0 must behave like an ordinary prepend, regardless of the tail
// boundary's shifting location.
func TestPrependLoop(t *testing.T) {
	v := New[int]()
	const n = 600
	for i := range n {
		v.Insert(0, n-1-i)
	}
	want := seq(n)
	if got := collect(v); !slices.Equal(got, want) {
		t.Fatalf("prepend loop: got %v, want %v", got[:10], want[:10])
	}
}

// TestForkRangeEqualsFreshBuild is spec.md §8 scenario S3: forking a
// sub-range must equal independently constructing that same sub-range.
func TestForkRangeEqualsFreshBuild(t *testing.T) {
	for n := 1; n < 300; n += 17 {
		v := New[int]()
		for i := range n {
			v.Append(i)
		}
		for lo := 0; lo <= n; lo += 5 {
			for hi := lo; hi <= n; hi += 5 {
				sub := v.ForkRange(lo, hi)
				want := seqFrom(lo, hi)
				if got := collect(sub); !slices.Equal(got, want) {
					t.Fatalf("n=%d [%d:%d): ForkRange got %v, want %v", n, lo, hi, got, want)
				}
			}
		}
	}
}

// TestSplitJoinIdentity is spec.md §8 scenario S4: splitting at any
// point and joining the halves back together reproduces the original.
func TestSplitJoinIdentity(t *testing.T) {
	for n := 0; n < 300; n += 13 {
		want := seq(n)
		for at := 0; at <= n; at++ {
			v := New[int]()
			for i := range n {
				v.Append(i)
			}
			left, right := v.Split(at)
			left.Join(right)
			if got := collect(left); !slices.Equal(got, want) {
				t.Fatalf("n=%d at=%d: split/join got %v, want %v", n, at, got, want)
			}
		}
	}
}

// TestJoinNonFullTails is spec.md §8 scenario S5: joining two vectors
// whose tails are partially filled must not lose or duplicate elements.
func TestJoinNonFullTails(t *testing.T) {
	for ln := 1; ln < 70; ln += 3 {
		for rn := 1; rn < 70; rn += 5 {
			left := New[int]()
			for i := range ln {
				left.Append(i)
			}
			right := New[int]()
			for i := range rn {
				right.Append(1000 + i)
			}
			want := append(seq(ln), seqOffset(rn, 1000)...)
			left.Join(right)
			if got := collect(left); !slices.Equal(got, want) {
				t.Fatalf("ln=%d rn=%d: join got %v, want %v", ln, rn, got, want)
			}
			if right.Len() != 0 {
				t.Fatalf("ln=%d rn=%d: right should be emptied by Join, has len %d", ln, rn, right.Len())
			}
		}
	}
}

func seqOffset(n, offset int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = offset + i
	}
	return out
}

func TestJoinAt(t *testing.T) {
	for n := 0; n < 120; n += 11 {
		for at := 0; at <= n; at++ {
			v := New[int]()
			for i := range n {
				v.Append(i)
			}
			mid := New(-1, -2, -3)
			v.JoinAt(at, mid)
			want := append(append(seq(at), -1, -2, -3), seqFrom(at, n)...)
			if got := collect(v); !slices.Equal(got, want) {
				t.Fatalf("n=%d at=%d: JoinAt got %v, want %v", n, at, got, want)
			}
		}
	}
}
