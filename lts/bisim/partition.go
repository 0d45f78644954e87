// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bisim implements signature-refinement partition refinement for
// strong and branching bisimulation over an lts.LTS, plus the quotient
// construction and a stability verifier.
package bisim

import "github.com/ltsreduce/ltsreduce/lts"

// Partition maps every state to a dense block id in [0, NumBlocks()). Block
// ids are renumbered every refinement iteration via an intern table, so
// in a partition returned by Refine the image of Block is a contiguous
// prefix of the naturals starting at 0. SetBlock does not check this.
type Partition struct {
	block     []int
	numBlocks int
}

// NewPartition returns the trivial partition over n states: everyone in
// block 0.
func NewPartition(n int) *Partition {
	return &Partition{block: make([]int, n), numBlocks: 1}
}

// Block returns the block id of state s.
func (p *Partition) Block(s lts.StateIndex) int { return p.block[s] }

// NumBlocks returns the current number of blocks, B.
func (p *Partition) NumBlocks() int { return p.numBlocks }

// SetBlock assigns state s to block b, used only by the refinement loop.
// NumBlocks grows to max(NumBlocks(), b+1).
func (p *Partition) SetBlock(s lts.StateIndex, b int) {
	p.block[s] = b
	if b+1 > p.numBlocks {
		p.numBlocks = b + 1
	}
}

// Equal reports whether p and other induce the same equivalence relation
// on states, regardless of how the two number their blocks. O(N) with an
// auxiliary correspondence array.
func (p *Partition) Equal(other *Partition) bool {
	if len(p.block) != len(other.block) {
		return false
	}
	// selfToOther[b] is the other-partition block that self-block b maps
	// to, or -1 if not yet seen; otherToSelf is the inverse correspondence.
	selfToOther := make([]int, p.numBlocks)
	otherToSelf := make([]int, other.numBlocks)
	for i := range selfToOther {
		selfToOther[i] = -1
	}
	for i := range otherToSelf {
		otherToSelf[i] = -1
	}

	for s := range p.block {
		a, b := p.block[s], other.block[s]
		if selfToOther[a] == -1 {
			selfToOther[a] = b
		} else if selfToOther[a] != b {
			return false
		}
		if otherToSelf[b] == -1 {
			otherToSelf[b] = a
		} else if otherToSelf[b] != a {
			return false
		}
	}
	return true
}
