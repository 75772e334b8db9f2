// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

import (
	"slices"
	"testing"
)

func TestBulkAppend(t *testing.T) {
	for n := 0; n < 40; n++ {
		for chunk := 1; chunk < 40; chunk += 3 {
			v := New[int]()
			var want []int
			for len(want) < n {
				items := seqOffset(chunk, len(want))
				if len(want)+chunk > n {
					items = items[:n-len(want)]
				}
				v.BulkAppend(items...)
				want = append(want, items...)
			}
			if got := collect(v); !slices.Equal(got, want) {
				t.Fatalf("n=%d chunk=%d: BulkAppend got %v, want %v", n, chunk, got, want)
			}
		}
	}
}

func TestBulkInsert(t *testing.T) {
	for n := 0; n < 80; n += 5 {
		for at := 0; at <= n; at++ {
			v := New[int]()
			for i := range n {
				v.Append(i)
			}
			ins := []int{-1, -2, -3, -4, -5}
			v.BulkInsert(at, ins...)
			want := append(append(seq(at), ins...), seqFrom(at, n)...)
			if got := collect(v); !slices.Equal(got, want) {
				t.Fatalf("n=%d at=%d: BulkInsert got %v, want %v", n, at, got, want)
			}
		}
	}
}

func TestNewFromItems(t *testing.T) {
	v := New(1, 2, 3, 4, 5)
	if got := collect(v); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("New(...) got %v", got)
	}
}
