// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The ltsreduce command reduces a labelled transition system to a
// bisimulation quotient.
package main

// example: ltsreduce -tau i strong-bisim in.aut out.aut

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ltsreduce/ltsreduce/aldebaran"
	"github.com/ltsreduce/ltsreduce/lts/bisim"
)

// tauFlag collects repeated -tau <name> occurrences.
type tauFlag []string

func (t *tauFlag) String() string { return strings.Join(*t, ",") }

func (t *tauFlag) Set(v string) error {
	*t = append(*t, v)
	return nil
}

var (
	timeFlag     = flag.Bool("time", false, "print elapsed reduction time to stderr")
	logLevelFlag = flag.String("log-level", "warn", "one of debug, info, warn, error")
	tauNames     tauFlag
)

func init() {
	flag.Var(&tauNames, "tau", "additional hidden label name, may be repeated")
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s [<flag> ...] <strong-bisim|branching-bisim> <input.aut> [<output.aut>]

<input.aut> may be "-" to read from standard input. If <output.aut> is
omitted, the quotient is written to standard output.

The <flag> arguments are:

`, os.Args[0])
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "ltsreduce: internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) < 2 {
		usage()
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(*logLevelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ltsreduce: %v\n", err)
		os.Exit(2)
	}
	logger.SetLevel(level)

	equivalence, inputPath := args[0], args[1]
	var outputPath string
	if len(args) >= 3 {
		outputPath = args[2]
	}

	in, closeIn, err := openInput(inputPath)
	if err != nil {
		fail(err)
	}
	defer closeIn()

	l, err := aldebaran.Load(in, []string(tauNames)...)
	if err != nil {
		fail(err)
	}

	refineLog := logger.WithField("component", "refine")

	start := time.Now()
	var (
		partition             *bisim.Partition
		eliminateTauSelfLoops bool
	)
	switch equivalence {
	case "strong-bisim":
		partition = bisim.Refine(l, bisim.StrongSignature, refineLog)
	case "branching-bisim":
		bs := bisim.NewBranchingSignature(l.NumStates())
		partition = bisim.Refine(l, bs.Compute, refineLog)
		eliminateTauSelfLoops = true
	default:
		fmt.Fprintf(os.Stderr, "ltsreduce: unknown equivalence %q, want strong-bisim or branching-bisim\n", equivalence)
		os.Exit(2)
	}
	elapsed := time.Since(start)

	quotient, err := bisim.Quotient(l, partition, eliminateTauSelfLoops)
	if err != nil {
		fail(err)
	}

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		fail(err)
	}
	defer closeOut()

	if err := aldebaran.Write(out, quotient); err != nil {
		fail(err)
	}

	if *timeFlag {
		fmt.Fprintf(os.Stderr, "reduction took %s\n", elapsed)
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "ltsreduce: %v\n", err)
	os.Exit(1)
}
