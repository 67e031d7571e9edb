// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package exchange

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PLARow is one parsed minterm line: a fixed-width string over
// {0,1,-} for the input plane (one input bit per variable, the same
// cube notation berkeley-pla uses), and the output value as text
// (typically "1" for single-output PLA files).
type PLARow struct {
	Inputs string
	Output string
}

// PLA is a minimal parse of a .pla-style minterm file: the .i/.o
// header fields and the body rows up to .e/.end. No don't-care
// expansion or decompression is performed, here or in FromExplicit,
// which takes fully specified bit vectors only.
type PLA struct {
	Inputs  int
	Outputs int
	Rows    []PLARow
}

// ReadPLA parses a PLA-like minterm file with bufio.Scanner.
// Grounded in original_source's OldChess examples, which all build
// their starting diagrams from exactly this line-oriented minterm
// enumeration.
func ReadPLA(r io.Reader) (*PLA, error) {
	sc := bufio.NewScanner(r)
	p := &PLA{}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == ".e" || line == ".end" {
			break
		}
		if strings.HasPrefix(line, ".i ") {
			if _, err := fmt.Sscanf(line, ".i %d", &p.Inputs); err != nil {
				return nil, fmt.Errorf("exchange: bad .i line %q: %w", line, err)
			}
			continue
		}
		if strings.HasPrefix(line, ".o ") {
			if _, err := fmt.Sscanf(line, ".o %d", &p.Outputs); err != nil {
				return nil, fmt.Errorf("exchange: bad .o line %q: %w", line, err)
			}
			continue
		}
		if strings.HasPrefix(line, ".") {
			continue // .ilb, .ob, .p and similar metadata: not needed to build a DD
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("exchange: bad PLA row %q, want two fields", line)
		}
		p.Rows = append(p.Rows, PLARow{Inputs: fields[0], Output: fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("exchange: %w", err)
	}
	return p, nil
}
