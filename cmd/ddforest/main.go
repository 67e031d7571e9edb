// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

// Command ddforest is a thin example front-end over the ddforest
// package: build a function over -b variables from a PLA-like minterm
// file (the constant zero when none is given), then optionally run a
// GC pass, print its cardinality and node-store statistics, and write
// an exchange-format file holding only the header line; or drop into
// an interactive REPL instead.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/bravedd/ddforest"
	"github.com/bravedd/ddforest/exchange"
)

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func main() {
	initDisplay()

	var (
		typ    = flag.String("t", "bdd", "diagram type: bdd|evbdd|bmxd")
		logLvl = flag.String("l", "info", "log level")
		input  = flag.String("o", "", "input PLA-like minterm file ('-' for stdin)")
		output = flag.String("O", "", "exchange-format output file")
		gcFlag = flag.Bool("g", false, "run a garbage collection pass before exiting")
		card   = flag.Bool("c", false, "print satisfying-assignment cardinality")
		vars   = flag.Int("b", 0, "number of Boolean variables, required")
		wantW  = flag.Bool("w", false, "print node-store size statistics")
		verb   = flag.Bool("v", false, "verbose logging")
		repl   = flag.Bool("repl", false, "start an interactive session instead of batch mode")
	)
	flag.Parse()

	if *verb {
		pterm.EnableDebugMessages()
	}
	pterm.Info.Printfln("ddforest starting, type=%s log=%s", *typ, *logLvl)

	if *vars == 0 && !*repl {
		pterm.Error.Println("-b (variable count) is required outside -repl mode")
		os.Exit(2)
	}

	if *repl {
		runREPL(*vars)
		return
	}

	cfg := ddforest.Config{Vars: *vars, Dimension: 1, Rules: ddforest.FullyReduced(), ValueKind: ddforest.ValueInt64}
	f, err := ddforest.NewForest[ddforest.Scalar](cfg)
	if err != nil {
		pterm.Error.Printfln("config error: %v", err)
		os.Exit(1)
	}
	defer f.Close()

	var rootEdge ddforest.Edge
	if *input != "" {
		in := os.Stdin
		if *input != "-" {
			in, err = os.Open(*input)
			if err != nil {
				pterm.Error.Printfln("open %s: %v", *input, err)
				os.Exit(1)
			}
			defer in.Close()
		}
		pla, err := exchange.ReadPLA(in)
		if err != nil {
			pterm.Error.Printfln("parse PLA: %v", err)
			os.Exit(1)
		}
		rows := make([]ddforest.Row, 0, len(pla.Rows))
		for _, r := range pla.Rows {
			bits := make([]bool, len(r.Inputs))
			for i, c := range r.Inputs {
				bits[i] = c == '1'
			}
			var val ddforest.Scalar
			if r.Output != "0" {
				val = f.One().Value
			}
			rows = append(rows, ddforest.Row{Bits: bits, Value: val})
		}
		rootEdge, err = f.FromExplicit(rows)
		if err != nil {
			pterm.Error.Printfln("build: %v", err)
			os.Exit(1)
		}
	} else {
		rootEdge = f.Zero()
	}

	if _, err := f.Pin(rootEdge); err != nil {
		pterm.Error.Printfln("pin root: %v", err)
		os.Exit(1)
	}

	if *gcFlag {
		if err := f.GC(); err != nil {
			pterm.Error.Printfln("gc: %v", err)
			os.Exit(1)
		}
	}

	if *card {
		n, err := f.Cardinality(rootEdge)
		if err != nil {
			pterm.Error.Printfln("cardinality: %v", err)
			os.Exit(1)
		}
		fmt.Println(n.String())
	}

	if *wantW {
		s := f.Stats()
		pterm.Info.Printfln("nodes=%d cache=%d roots=%d", s.Nodes, s.CacheCap, s.Roots)
	}

	if *output != "" {
		out, err := os.Create(*output)
		if err != nil {
			pterm.Error.Printfln("create %s: %v", *output, err)
			os.Exit(1)
		}
		defer out.Close()
		doc := &exchange.Document{Header: exchange.Header{Vars: *vars, Dimension: cfg.Dimension}}
		if err := exchange.Write(out, doc); err != nil {
			pterm.Error.Printfln("write: %v", err)
			os.Exit(1)
		}
	}
}
