// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rrb implements a Relaxed Radix Balanced (RRB) trie: an
// ordered, index-addressed sequence that supports O(1) whole-sequence
// fork, O(log n) range fork, O(log n) amortized concatenation (join),
// and the usual O(log n) get/set/insert/remove.
//
// A [Vector] is a 32-way trie of elements plus a small tail buffer that
// absorbs the rightmost run of appends before it is pushed into the trie.
// Forking a Vector is a pointer copy: [Vector.Fork] clears the vector's
// ownership flags and hands back a second Vector sharing the same root
// and tail. Any later write that needs to change a node it does not
// exclusively own clones that node first (copy-on-write), so two forks
// never observe each other's mutations, yet nodes untouched by either
// fork's writes are never copied at all.
//
// Most parent nodes are "strict": every child but the last is known to
// be completely full, so indexing is pure radix arithmetic. Concatenating
// two vectors ([Vector.Join]), or splitting one ([Vector.ForkRange]), can
// leave a parent with a short child that isn't last; such a parent becomes
// "relaxed" and carries a cumulative size table so indexing can correct
// for the irregularity with a short linear scan, bounded by a small
// constant by construction of the rebalancing pass that runs after every
// join.
//
// Vector's mutating methods (Append, Insert, Set, Remove, and friends)
// update the vector in place whenever it exclusively owns the nodes on
// the write path; this is not a persistent-by-default data structure.
// Call [Vector.Fork] first if the prior state needs to survive the write.
package rrb
