// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bisim

import "github.com/ltsreduce/ltsreduce/lts"

// IsStrongBisimulation reports whether p is a strong bisimulation of l: for
// every block, every member state must have the same strong signature as
// the block's first-seen representative. Used in tests; it reports false
// rather than an error, matching the verifier's boolean contract.
func IsStrongBisimulation(l *lts.LTS, p *Partition) bool {
	return isStableUnder(l, p, StrongSignature)
}

// IsBranchingBisimulation reports whether p is a branching bisimulation of
// l, the symmetric counterpart of IsStrongBisimulation using
// BranchingSignature.
func IsBranchingBisimulation(l *lts.LTS, p *Partition) bool {
	bs := NewBranchingSignature(l.NumStates())
	return isStableUnder(l, p, bs.Compute)
}

// isStableUnder picks the first-seen state of every block as its
// representative and requires every other member to share its signature
// under sig, computed against the partition passed in (the verifier always
// compares under the final partition, never an intermediate one).
func isStableUnder(l *lts.LTS, p *Partition, sig SignatureFunc) bool {
	representative := make([]lts.StateIndex, p.NumBlocks())
	seen := make([]bool, p.NumBlocks())
	for s := 0; s < l.NumStates(); s++ {
		b := p.Block(s)
		if !seen[b] {
			seen[b] = true
			representative[b] = s
		}
	}

	builder := make(SignatureBuilder, 0, 8)
	for s := 0; s < l.NumStates(); s++ {
		b := p.Block(s)
		rep := representative[b]
		if s == rep {
			continue
		}

		key := signatureKey(canonicalise(sig(s, l, p, builder[:0])))
		repKey := signatureKey(canonicalise(sig(rep, l, p, builder[:0])))
		if key != repKey {
			return false
		}
	}
	return true
}
