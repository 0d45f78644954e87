// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aldebaran

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ltsreduce/ltsreduce/lts"
)

// Write emits l in Aldebaran ".aut" form: the header with the LTS's actual
// counts, then one quoted-form transition line per edge.
func Write(w io.Writer, l *lts.LTS) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "des (%d, %d, %d)\n", l.InitialState(), l.NumTransitions(), l.NumStates()); err != nil {
		return err
	}

	for s, state := range l.States() {
		for _, t := range state.Outgoing {
			if _, err := fmt.Fprintf(bw, "(%d, %q, %d)\n", s, l.LabelName(t.Label), t.Target); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
