// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aldebaran_test

import (
	"strings"
	"testing"

	"github.com/ltsreduce/ltsreduce/aldebaran"
)

func TestLoadParsesQuotedTransitions(t *testing.T) {
	input := `des (0, 2, 2)
(0, "a", 1)
(1, "a", 0)
`
	l, err := aldebaran.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if l.NumStates() != 2 {
		t.Errorf("NumStates() = %d, want 2", l.NumStates())
	}
	if l.NumTransitions() != 2 {
		t.Errorf("NumTransitions() = %d, want 2", l.NumTransitions())
	}
	if l.InitialState() != 0 {
		t.Errorf("InitialState() = %d, want 0", l.InitialState())
	}
}

func TestLoadParsesUnquotedTransitions(t *testing.T) {
	input := `des (0, 1, 2)
(0, a, 1)
`
	l, err := aldebaran.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if l.NumTransitions() != 1 {
		t.Errorf("NumTransitions() = %d, want 1", l.NumTransitions())
	}
}

func TestLoadMarksTauHiddenByDefault(t *testing.T) {
	input := `des (0, 1, 2)
(0, "tau", 1)
`
	l, err := aldebaran.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	tau := 0 // only label seen
	if !l.IsHidden(tau) {
		t.Error("tau should be hidden by default")
	}
}

func TestLoadMarksExtraHiddenLabels(t *testing.T) {
	input := `des (0, 1, 2)
(0, "internal", 1)
`
	l, err := aldebaran.Load(strings.NewReader(input), "internal")
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	internal := l.NumLabels() - 1
	found := false
	for i := 0; i < l.NumLabels(); i++ {
		if l.LabelName(i) == "internal" {
			internal = i
			found = true
		}
	}
	if !found {
		t.Fatal("label \"internal\" not found")
	}
	if !l.IsHidden(internal) {
		t.Error("internal should be hidden when passed to Load")
	}
}

func TestLoadRejectsMalformedHeader(t *testing.T) {
	input := "not a header\n"
	if _, err := aldebaran.Load(strings.NewReader(input)); err == nil {
		t.Fatal("expected an error for a malformed header")
	}
}

func TestLoadRejectsEmptyInput(t *testing.T) {
	if _, err := aldebaran.Load(strings.NewReader("")); err == nil {
		t.Fatal("expected an error for empty input")
	}
}

func TestLoadRejectsMalformedTransition(t *testing.T) {
	input := `des (0, 1, 2)
this is not a transition
`
	if _, err := aldebaran.Load(strings.NewReader(input)); err == nil {
		t.Fatal("expected an error for a malformed transition line")
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	input := "des (0, 1, 2)\n\n\n(0, \"a\", 1)\n\n"
	l, err := aldebaran.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if l.NumTransitions() != 1 {
		t.Errorf("NumTransitions() = %d, want 1", l.NumTransitions())
	}
}

func TestLoadInternsLabelsInFirstSeenOrder(t *testing.T) {
	input := `des (0, 2, 2)
(0, "b", 1)
(1, "a", 0)
`
	l, err := aldebaran.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if l.LabelName(0) != "b" {
		t.Errorf("LabelName(0) = %q, want %q", l.LabelName(0), "b")
	}
	if l.LabelName(1) != "a" {
		t.Errorf("LabelName(1) = %q, want %q", l.LabelName(1), "a")
	}
}
