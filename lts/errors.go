// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lts

import "errors"

// ErrOutOfRangeState is returned by Builder.AddTransition when a
// transition's source or target, and by Builder.Build when the initial
// state, references a state index outside [0, NumStates()).
var ErrOutOfRangeState = errors.New("lts: state index out of range")

// ErrNoStates is returned by Builder.Build when the builder has zero
// states; an LTS with no states cannot have a valid initial state.
var ErrNoStates = errors.New("lts: LTS has no states")
