// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bisim_test

import (
	"testing"

	"github.com/ltsreduce/ltsreduce/lts"
)

// edge is a compact transition literal for building test fixtures.
type edge struct {
	from  lts.StateIndex
	label string
	to    lts.StateIndex
}

// buildLTS builds an LTS with numStates states and the given edges,
// interning labels in the order they first appear, marking every name in
// hiddenLabels as hidden, and setting state 0 as initial.
func buildLTS(t *testing.T, numStates int, edges []edge, hiddenLabels ...string) *lts.LTS {
	t.Helper()
	b := lts.NewBuilder()
	b.EnsureStates(numStates)
	for _, h := range hiddenLabels {
		b.MarkHidden(h)
	}
	for _, e := range edges {
		if err := b.AddTransition(e.from, b.Label(e.label), e.to); err != nil {
			t.Fatalf("AddTransition(%+v): %v", e, err)
		}
	}
	b.SetInitial(0)

	l, err := b.Build()
	if err != nil {
		t.Fatalf("Build(): %v", err)
	}
	return l
}

// blocksOf returns, for each state in order, its block id under p.
func blocksOf(p interface {
	Block(lts.StateIndex) int
}, n int) []int {
	out := make([]int, n)
	for s := 0; s < n; s++ {
		out[s] = p.Block(s)
	}
	return out
}

// sameGrouping reports whether two block-id slices induce the same
// equivalence classes, regardless of numbering.
func sameGrouping(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	aToB := map[int]int{}
	bToA := map[int]int{}
	for i := range a {
		if v, ok := aToB[a[i]]; ok {
			if v != b[i] {
				return false
			}
		} else {
			aToB[a[i]] = b[i]
		}
		if v, ok := bToA[b[i]]; ok {
			if v != a[i] {
				return false
			}
		} else {
			bToA[b[i]] = a[i]
		}
	}
	return true
}
