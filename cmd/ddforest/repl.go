// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/bravedd/ddforest"
)

// session holds the REPL's live forest and named roots, grounded on
// gorgo/terex/terexlang/trepl's Intp struct (readline instance plus an
// environment of named bindings).
type session struct {
	f      *ddforest.Forest
	repl   *readline.Instance
	named  map[string]ddforest.Edge
}

func runREPL(vars int) {
	if vars <= 0 {
		vars = 8
	}
	cfg := ddforest.Config{Vars: vars, Dimension: 1, Rules: ddforest.FullyReduced(), ValueKind: ddforest.ValueInt64}
	f, err := ddforest.NewForest[ddforest.Scalar](cfg)
	if err != nil {
		pterm.Error.Printfln("config error: %v", err)
		return
	}
	defer f.Close()

	rl, err := readline.New("ddforest> ")
	if err != nil {
		pterm.Error.Printfln("readline: %v", err)
		return
	}
	defer rl.Close()

	s := &session{f: f, repl: rl, named: map[string]ddforest.Edge{
		"zero": f.Zero(),
		"one":  f.One(),
	}}

	pterm.Info.Printfln("ddforest REPL, %d variables. Quit with <ctrl>D.", vars)
	s.loop()
}

func (s *session) loop() {
	for {
		line, err := s.repl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return
		}
		if err != nil {
			pterm.Error.Printfln("%v", err)
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := s.eval(line); err != nil {
			pterm.Error.Printfln("%v", err)
		}
	}
}

// eval handles one REPL command:
//
//	var <name> <level>        define <name> as the projector at <level>
//	and|or|xor|diff <a> <b> <dst>
//	not <a> <dst>
//	card <name>
//	gc
//	stats
func (s *session) eval(line string) error {
	fields := strings.Fields(line)
	cmd := fields[0]

	switch cmd {
	case "var":
		if len(fields) != 3 {
			return fmt.Errorf("usage: var <name> <level>")
		}
		lvl, err := strconv.Atoi(fields[2])
		if err != nil {
			return err
		}
		e, err := s.f.Var(lvl)
		if err != nil {
			return err
		}
		s.named[fields[1]] = e
		return nil

	case "and", "or", "xor", "diff":
		if len(fields) != 4 {
			return fmt.Errorf("usage: %s <a> <b> <dst>", cmd)
		}
		a, ok := s.named[fields[1]]
		if !ok {
			return fmt.Errorf("undefined: %s", fields[1])
		}
		b, ok := s.named[fields[2]]
		if !ok {
			return fmt.Errorf("undefined: %s", fields[2])
		}
		var result ddforest.Edge
		var err error
		switch cmd {
		case "and":
			result, err = s.f.And(a, b)
		case "or":
			result, err = s.f.Or(a, b)
		case "xor":
			result, err = s.f.Xor(a, b)
		case "diff":
			result, err = s.f.Diff(a, b)
		}
		if err != nil {
			return err
		}
		s.named[fields[3]] = result
		return nil

	case "not":
		if len(fields) != 3 {
			return fmt.Errorf("usage: not <a> <dst>")
		}
		a, ok := s.named[fields[1]]
		if !ok {
			return fmt.Errorf("undefined: %s", fields[1])
		}
		result, err := s.f.Complement(a)
		if err != nil {
			return err
		}
		s.named[fields[2]] = result
		return nil

	case "card":
		if len(fields) != 2 {
			return fmt.Errorf("usage: card <name>")
		}
		e, ok := s.named[fields[1]]
		if !ok {
			return fmt.Errorf("undefined: %s", fields[1])
		}
		n, err := s.f.Cardinality(e)
		if err != nil {
			return err
		}
		fmt.Println(n.String())
		return nil

	case "gc":
		return s.f.GC()

	case "stats":
		st := s.f.Stats()
		pterm.Info.Printfln("nodes=%d cache=%d roots=%d", st.Nodes, st.CacheCap, st.Roots)
		return nil

	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}
