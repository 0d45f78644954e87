// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lts

// IncomingEdge is one reverse edge: a label and the source state from
// which it originates.
type IncomingEdge struct {
	Label  LabelIndex
	Source StateIndex
}

// IncomingIndex is the reverse adjacency of an LTS, built once and then
// immutable. Construction is O(N+M) time and O(M) additional memory,
// where M is the transition count: first count in-degree per state, then
// prefix-sum to per-state offsets, then scatter each transition into its
// target's slot.
type IncomingIndex struct {
	incoming []IncomingEdge
	offset   []int // offset[s], offset[s+1] bound state s's slice in incoming
	hiddenAt []int // hiddenAt[s] = index within [offset[s], offset[s+1]) where visible edges begin
}

// NewIncomingIndex builds the reverse adjacency of l.
func NewIncomingIndex(l *LTS) *IncomingIndex {
	n := l.NumStates()
	degree := make([]int, n)
	for _, state := range l.states {
		for _, t := range state.Outgoing {
			degree[t.Target]++
		}
	}

	offset := make([]int, n+1)
	for s := 0; s < n; s++ {
		offset[s+1] = offset[s] + degree[s]
	}

	incoming := make([]IncomingEdge, offset[n])
	cursor := append([]int(nil), offset[:n]...)
	for s, state := range l.states {
		for _, t := range state.Outgoing {
			incoming[cursor[t.Target]] = IncomingEdge{Label: t.Label, Source: s}
			cursor[t.Target]++
		}
	}

	idx := &IncomingIndex{incoming: incoming, offset: offset, hiddenAt: make([]int, n)}
	for s := 0; s < n; s++ {
		idx.partitionHiddenFirst(l, s)
	}
	return idx
}

// partitionHiddenFirst stably moves hidden-label entries in state s's
// bucket to the front, recording the split point so IncomingHidden can
// slice without scanning.
func (idx *IncomingIndex) partitionHiddenFirst(l *LTS, s int) {
	begin, end := idx.offset[s], idx.offset[s+1]
	bucket := idx.incoming[begin:end]

	hidden := make([]IncomingEdge, 0, len(bucket))
	visible := make([]IncomingEdge, 0, len(bucket))
	for _, e := range bucket {
		if l.IsHidden(e.Label) {
			hidden = append(hidden, e)
		} else {
			visible = append(visible, e)
		}
	}
	copy(bucket, hidden)
	copy(bucket[len(hidden):], visible)
	idx.hiddenAt[s] = len(hidden)
}

// Incoming returns the (label, source) pairs of every transition targeting
// s, hidden-label entries first.
func (idx *IncomingIndex) Incoming(s StateIndex) []IncomingEdge {
	return idx.incoming[idx.offset[s]:idx.offset[s+1]]
}

// IncomingHidden returns only the hidden-label entries targeting s, a
// short-circuiting prefix of Incoming(s).
func (idx *IncomingIndex) IncomingHidden(s StateIndex) []IncomingEdge {
	return idx.incoming[idx.offset[s] : idx.offset[s]+idx.hiddenAt[s]]
}
