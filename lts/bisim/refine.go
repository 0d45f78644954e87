// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bisim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ltsreduce/ltsreduce/lts"
)

// SignatureFunc computes the raw (unsorted, possibly duplicate) signature
// contributions for state s under the current partition, appending them to
// dst (which has been reset to length 0 by the caller) and returning the
// result. Refine canonicalises the returned slice itself; a SignatureFunc
// need not sort or dedupe.
type SignatureFunc func(s lts.StateIndex, l *lts.LTS, p *Partition, dst SignatureBuilder) SignatureBuilder

// Refine runs signature-refinement to a fixed point starting from the
// trivial partition (all states in block 0), using sig to compute each
// state's per-iteration signature. log may be nil; when non-nil it emits
// one Debug record per iteration with the resulting block count.
//
// Termination: the number of blocks is monotone non-decreasing and bounded
// by NumStates, so the loop runs at most NumStates+1 passes; a pass beyond
// that is a contract violation (a SignatureFunc that isn't itself
// monotone) and panics rather than looping forever.
func Refine(l *lts.LTS, sig SignatureFunc, log *logrus.Entry) *Partition {
	n := l.NumStates()
	current := NewPartition(n)
	next := NewPartition(n)
	builder := make(SignatureBuilder, 0, 8)
	intern := make(map[string]int, n)
	previousB := 0

	for k := 0; ; k++ {
		if k > n {
			panic(fmt.Sprintf("bisim: signature refinement did not converge after %d iterations over %d states", k, n))
		}

		// Two-buffer partition: this is an array-pointer swap, never a
		// per-element copy.
		current, next = next, current

		for key := range intern {
			delete(intern, key)
		}

		for s := 0; s < n; s++ {
			raw := sig(s, l, current, builder[:0])
			builder = raw
			signature := canonicalise(raw)

			key := signatureKey(signature)
			id, ok := intern[key]
			if !ok {
				id = len(intern)
				intern[key] = id
			}
			next.SetBlock(s, id)
		}

		bNew := len(intern)
		if log != nil {
			log.Debugf("iteration=%d blocks=%d", k, bNew)
		}
		if bNew == previousB {
			return next
		}
		previousB = bNew
	}
}
