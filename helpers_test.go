// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

import (
	"fmt"
	"strings"
	"testing"
)

// wantPanic runs f and checks that it panics with a value whose string
// form contains text. Grounded on the teacher's
// value/persist/slice_test.go helper of the same name.
func wantPanic(t *testing.T, text string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		e := recover()
		if e == nil {
			t.Fatalf("no panic, wanted %q", text)
		}
		s := fmt.Sprint(e)
		if !strings.Contains(s, text) {
			t.Fatalf("panic(%q), wanted %q", s, text)
		}
	}()
	f()
}

// collect copies v's elements into a plain slice for comparison against
// a model, leaving v unchanged.
func collect[T any](v *Vector[T]) []T {
	out := make([]T, v.Len())
	for i := range out {
		out[i] = v.Get(i)
	}
	return out
}
