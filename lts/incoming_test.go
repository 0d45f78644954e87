// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lts

import (
	"math/rand"
	"testing"
)

func buildSmallLTS(t *testing.T) *LTS {
	t.Helper()
	b := NewBuilder()
	b.EnsureStates(3)
	a := b.Label("a")
	tau := b.Label("tau")
	b.MarkHidden("tau")
	must(t, b.AddTransition(0, a, 1))
	must(t, b.AddTransition(0, a, 1)) // parallel edge, same label and target
	must(t, b.AddTransition(0, tau, 2))
	must(t, b.AddTransition(1, a, 2))
	b.SetInitial(0)

	l, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func TestIncomingIndexRoundTrip(t *testing.T) {
	l := buildSmallLTS(t)
	idx := NewIncomingIndex(l)

	a := 0 // "a" interned first
	tau := 1

	in1 := idx.Incoming(1)
	if len(in1) != 2 {
		t.Fatalf("Incoming(1) has %d entries, want 2 (parallel a-edges)", len(in1))
	}
	for _, e := range in1 {
		if e.Label != a || e.Source != 0 {
			t.Errorf("Incoming(1) entry = %+v, want {Label:%d Source:0}", e, a)
		}
	}

	in2 := idx.Incoming(2)
	if len(in2) != 2 {
		t.Fatalf("Incoming(2) has %d entries, want 2", len(in2))
	}

	hidden2 := idx.IncomingHidden(2)
	if len(hidden2) != 1 || hidden2[0].Label != tau || hidden2[0].Source != 0 {
		t.Errorf("IncomingHidden(2) = %+v, want one tau edge from 0", hidden2)
	}
}

func TestIncomingIndexRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBuilder()
	const n = 20
	b.EnsureStates(n)
	a := b.Label("a")
	b.SetInitial(0)

	type edge struct{ from, to int }
	var edges []edge
	for i := 0; i < 50; i++ {
		from, to := rng.Intn(n), rng.Intn(n)
		must(t, b.AddTransition(from, a, to))
		edges = append(edges, edge{from, to})
	}

	l, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	idx := NewIncomingIndex(l)

	want := make(map[int]int)
	for _, e := range edges {
		want[e.to]++
	}
	for s := 0; s < n; s++ {
		if got := len(idx.Incoming(s)); got != want[s] {
			t.Errorf("Incoming(%d) has %d entries, want %d", s, got, want[s])
		}
	}
}
