// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lts defines the in-memory representation of a labelled transition
// system: states with directed, labelled edges, a subset of labels marked
// hidden (silent/tau), and a distinguished initial state.
//
// An LTS is immutable once built via Builder.Build. Nothing in this package
// mutates a *LTS after construction; the partition-refinement algorithms in
// lts/bisim only ever read from it.
package lts

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// LabelIndex names an action in [0, NumLabels()).
type LabelIndex = int

// StateIndex names a state in [0, NumStates()).
type StateIndex = int

// Transition is a single outgoing edge: label and target state.
type Transition struct {
	Label  LabelIndex
	Target StateIndex
}

// State is a state's sole essential attribute: its outgoing transitions,
// in insertion order. The order is never relied upon by the core.
type State struct {
	Outgoing []Transition
}

// LTS is a finite directed multigraph with labelled edges, one initial
// state, and a subset of labels marked hidden. It is immutable; its
// lifetime spans one reduction run.
type LTS struct {
	states         []State
	labels         []string
	hidden         *bitset.BitSet
	initial        StateIndex
	numTransitions int
}

// NumStates returns the number of states, N.
func (l *LTS) NumStates() int { return len(l.states) }

// NumLabels returns the number of distinct labels, L.
func (l *LTS) NumLabels() int { return len(l.labels) }

// NumTransitions returns the total number of outgoing edges.
func (l *LTS) NumTransitions() int { return l.numTransitions }

// InitialState returns the designated initial state.
func (l *LTS) InitialState() StateIndex { return l.initial }

// Outgoing returns the outgoing transitions of state s in insertion order.
func (l *LTS) Outgoing(s StateIndex) []Transition { return l.states[s].Outgoing }

// IsHidden reports whether label is marked hidden (tau).
func (l *LTS) IsHidden(label LabelIndex) bool { return l.hidden.Test(uint(label)) }

// LabelName returns the display name of label, used only at I/O boundaries.
func (l *LTS) LabelName(label LabelIndex) string { return l.labels[label] }

// States yields (state_id, *State) pairs over all states in ascending order.
func (l *LTS) States() func(yield func(StateIndex, *State) bool) {
	return func(yield func(StateIndex, *State) bool) {
		for i := range l.states {
			if !yield(i, &l.states[i]) {
				return
			}
		}
	}
}

func (l *LTS) String() string {
	return fmt.Sprintf("LTS{states=%d, labels=%d, transitions=%d, initial=%d}",
		l.NumStates(), l.NumLabels(), l.NumTransitions(), l.initial)
}
