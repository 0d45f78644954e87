// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aldebaran reads and writes the Aldebaran ".aut" textual LTS
// format: a "des (initial, num_transitions, num_states)" header followed
// by one transition per line, in either the quoted preferred form
// `(from, "label", to)` or the unquoted VLTS-benchmark fallback
// `(from, label, to)`.
package aldebaran

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ltsreduce/ltsreduce/lts"
)

var (
	headerRE        = regexp.MustCompile(`^\s*des\s*\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)\s*$`)
	quotedTransRE   = regexp.MustCompile(`^\s*\(\s*(\d+)\s*,\s*"([^"]*)"\s*,\s*(\d+)\s*\)\s*$`)
	unquotedTransRE = regexp.MustCompile(`^\s*\(\s*(\d+)\s*,\s*([^,"]+?)\s*,\s*(\d+)\s*\)\s*$`)
)

// lineScanner is a bufio.Scanner that additionally tracks a 1-based line
// number, used to annotate parse errors.
type lineScanner struct {
	*bufio.Scanner
	lineNo int
}

func newLineScanner(r io.Reader) *lineScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &lineScanner{Scanner: s}
}

// nextNonBlank scans forward, returning the next non-blank line and its
// line number, or ok=false at EOF.
func (s *lineScanner) nextNonBlank() (lineNo int, line string, ok bool) {
	for s.Scan() {
		s.lineNo++
		line := strings.TrimSpace(s.Text())
		if line != "" {
			return s.lineNo, line, true
		}
	}
	return 0, "", false
}

// Load parses an Aldebaran ".aut" file from r. The label "tau", plus every
// name in hidden, is marked hidden. Labels are interned to dense integer
// ids in first-seen order, so loading the same input twice yields the same
// label numbering.
func Load(r io.Reader, hidden ...string) (*lts.LTS, error) {
	scanner := newLineScanner(r)

	lineNo, header, ok := scanner.nextNonBlank()
	if !ok {
		return nil, errors.Wrap(ErrInvalidHeader, "empty input")
	}

	m := headerRE.FindStringSubmatch(header)
	if m == nil {
		return nil, errors.Wrapf(ErrInvalidHeader, "line %d: %q", lineNo, header)
	}
	initial, _ := strconv.Atoi(m[1])
	expectedTrans, _ := strconv.Atoi(m[2])
	numStates, _ := strconv.Atoi(m[3])

	b := lts.NewBuilder()
	b.EnsureStates(numStates)
	b.SetInitial(initial)

	count := 0
	for {
		lineNo, line, ok := scanner.nextNonBlank()
		if !ok {
			break
		}

		from, label, to, perr := parseTransition(line)
		if perr != nil {
			return nil, errors.Wrapf(ErrInvalidTransition, "line %d: %v", lineNo, perr)
		}

		labelID := b.Label(label)
		if err := b.AddTransition(from, labelID, to); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "aldebaran: reading input")
	}

	if count != expectedTrans {
		logrus.WithFields(logrus.Fields{
			"declared": expectedTrans,
			"parsed":   count,
		}).Debug("aldebaran: header transition count does not match parsed transitions")
	}

	// Hidden names are marked only after every transition has been read:
	// marking interns a name not seen yet, and doing it earlier would shift
	// the first-seen numbering of the labels that occur in the input.
	b.MarkHidden("tau")
	for _, name := range hidden {
		b.MarkHidden(name)
	}

	return b.Build()
}

func parseTransition(line string) (from int, label string, to int, err error) {
	if m := quotedTransRE.FindStringSubmatch(line); m != nil {
		return atoiPair(m[1], m[3], m[2])
	}
	if m := unquotedTransRE.FindStringSubmatch(line); m != nil {
		return atoiPair(m[1], m[3], strings.TrimSpace(m[2]))
	}
	return 0, "", 0, errors.Errorf("%q is neither a quoted nor an unquoted transition", line)
}

func atoiPair(fromStr, toStr, label string) (int, string, int, error) {
	from, err := strconv.Atoi(fromStr)
	if err != nil {
		return 0, "", 0, errors.Wrap(err, "source state")
	}
	to, err := strconv.Atoi(toStr)
	if err != nil {
		return 0, "", 0, errors.Wrap(err, "target state")
	}
	return from, label, to, nil
}

