// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bisim

import "github.com/ltsreduce/ltsreduce/lts"

// StrongSignature computes sig(s, pi) = { (a, pi(t)) | s -a-> t }, treating
// every label as observable including hidden ones. Two states are strongly
// bisimilar iff they produce the same canonical signature under the
// coarsest strong bisimulation; starting from the trivial partition and
// iterating Refine to a fixed point converges to exactly that partition.
func StrongSignature(s lts.StateIndex, l *lts.LTS, p *Partition, dst SignatureBuilder) SignatureBuilder {
	for _, t := range l.Outgoing(s) {
		dst = append(dst, Pair{Label: t.Label, Block: p.Block(t.Target)})
	}
	return dst
}
