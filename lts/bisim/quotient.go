// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bisim

import "github.com/ltsreduce/ltsreduce/lts"

// triple identifies one quotient transition; it is comparable, so a plain
// map[triple]struct{} is the transition-deduplication set spec'd for the
// quotient construction.
type triple struct {
	From  lts.StateIndex
	Label lts.LabelIndex
	To    lts.StateIndex
}

// Quotient builds the quotient LTS of l under partition p: block ids
// become state ids, the initial state is the block of l's initial state,
// and the label table and hidden-label set are inherited unchanged.
//
// When eliminateTauSelfLoops is true, a hidden transition whose source and
// target block coincide is dropped (an inert tau-cycle has collapsed to a
// self-loop that is semantically absent). This should be true for
// branching bisimulation and false for strong bisimulation.
func Quotient(l *lts.LTS, p *Partition, eliminateTauSelfLoops bool) (*lts.LTS, error) {
	b := lts.NewBuilder()
	b.ImportLabels(l)
	b.EnsureStates(p.NumBlocks())

	seen := make(map[triple]struct{})
	for s, state := range l.States() {
		bs := p.Block(s)
		for _, t := range state.Outgoing {
			bt := p.Block(t.Target)
			if eliminateTauSelfLoops && l.IsHidden(t.Label) && bs == bt {
				continue
			}
			key := triple{From: bs, Label: t.Label, To: bt}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			if err := b.AddTransition(bs, t.Label, bt); err != nil {
				return nil, err
			}
		}
	}

	b.SetInitial(p.Block(l.InitialState()))
	return b.Build()
}
