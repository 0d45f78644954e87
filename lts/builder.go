// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lts

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Builder accumulates states, labels and transitions and freezes them into
// an immutable LTS via Build. It is the single construction path used by
// both the Aldebaran loader and the random LTS generator, so "every target
// state referenced by any transition lies in [0, N)" has exactly one
// enforcement point.
//
// Builder is not safe for concurrent use; build one LTS per Builder.
type Builder struct {
	states     []State
	labelIndex map[string]LabelIndex
	labels     []string
	hiddenName map[string]bool
	initial    StateIndex
	haveTrans  int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		labelIndex: make(map[string]LabelIndex),
		hiddenName: make(map[string]bool),
	}
}

// EnsureStates grows the builder so that it has at least n states, each
// starting with no outgoing transitions. Shrinking is not supported.
func (b *Builder) EnsureStates(n int) {
	for len(b.states) < n {
		b.states = append(b.states, State{})
	}
}

// AddState appends one new state and returns its index.
func (b *Builder) AddState() StateIndex {
	b.states = append(b.states, State{})
	return len(b.states) - 1
}

// Label interns name to a dense label id, assigned in first-seen order.
func (b *Builder) Label(name string) LabelIndex {
	if id, ok := b.labelIndex[name]; ok {
		return id
	}
	id := len(b.labels)
	b.labelIndex[name] = id
	b.labels = append(b.labels, name)
	return id
}

// MarkHidden marks the label with the given display name as hidden. The
// label need not already exist; it is interned if necessary.
func (b *Builder) MarkHidden(name string) {
	b.hiddenName[name] = true
	b.Label(name)
}

// ImportLabels copies another LTS's label table and hidden-label set
// unchanged, used by Quotient to inherit the source LTS's labels verbatim
// rather than re-interning them.
func (b *Builder) ImportLabels(src *LTS) {
	b.labels = append([]string(nil), src.labels...)
	b.labelIndex = make(map[string]LabelIndex, len(b.labels))
	for i, name := range b.labels {
		b.labelIndex[name] = i
	}
	b.hiddenName = make(map[string]bool, len(b.labels))
	for i, name := range b.labels {
		if src.hidden.Test(uint(i)) {
			b.hiddenName[name] = true
		}
	}
}

// AddTransition appends a (label, target) edge to state from. The target
// is validated eagerly so a malformed builder call fails at the call site.
func (b *Builder) AddTransition(from StateIndex, label LabelIndex, to StateIndex) error {
	if from < 0 || from >= len(b.states) {
		return fmt.Errorf("lts: source state %d out of range [0,%d): %w", from, len(b.states), ErrOutOfRangeState)
	}
	if to < 0 || to >= len(b.states) {
		return fmt.Errorf("lts: target state %d out of range [0,%d): %w", to, len(b.states), ErrOutOfRangeState)
	}
	b.states[from].Outgoing = append(b.states[from].Outgoing, Transition{Label: label, Target: to})
	b.haveTrans++
	return nil
}

// SetInitial designates s as the initial state.
func (b *Builder) SetInitial(s StateIndex) {
	b.initial = s
}

// Build freezes the accumulated states, labels and transitions into an
// immutable LTS. It validates that the initial state lies in range and
// that the builder has at least one state.
func (b *Builder) Build() (*LTS, error) {
	if len(b.states) == 0 {
		return nil, ErrNoStates
	}
	if b.initial < 0 || b.initial >= len(b.states) {
		return nil, fmt.Errorf("lts: initial state %d out of range [0,%d): %w", b.initial, len(b.states), ErrOutOfRangeState)
	}

	hidden := bitset.New(uint(len(b.labels)))
	for name := range b.hiddenName {
		hidden.Set(uint(b.labelIndex[name]))
	}

	return &LTS{
		states:         b.states,
		labels:         b.labels,
		hidden:         hidden,
		initial:        b.initial,
		numTransitions: b.haveTrans,
	}, nil
}
