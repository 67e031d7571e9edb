// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

// Package randgen generates deterministic pseudo-random test inputs
// for decision-diagram domains: assignment vectors, explicit function
// tables, and operator sequences. Seeded explicitly so a failing test
// can be reproduced from its seed alone.
package randgen

import "math/rand/v2"

// Gen wraps a PCG-seeded rand.Rand, the same generator family the
// standard library's math/rand/v2 recommends for reproducible,
// non-cryptographic test data.
type Gen struct {
	r *rand.Rand
}

// New returns a generator seeded deterministically from seed.
func New(seed uint64) *Gen {
	return &Gen{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Bits returns a random assignment vector of the given length.
func (g *Gen) Bits(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = g.r.IntN(2) == 1
	}
	return out
}

// Rows returns numRows distinct random assignment vectors of length
// vars, for use as the Bits of Forest.FromExplicit rows. No values are
// attached; the caller supplies them.
func (g *Gen) Rows(vars, numRows int) [][]bool {
	seen := make(map[string]bool)
	out := make([][]bool, 0, numRows)
	for len(out) < numRows {
		bits := g.Bits(vars)
		key := keyOf(bits)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, bits)
	}
	return out
}

func keyOf(bits []bool) string {
	b := make([]byte, len(bits))
	for i, v := range bits {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// OpSequence returns a random sequence of operator-name picks from
// choices, for fuzzing operator-law properties (associativity,
// commutativity, idempotence) over random operand pairs.
func (g *Gen) OpSequence(choices []string, length int) []string {
	out := make([]string, length)
	for i := range out {
		out[i] = choices[g.r.IntN(len(choices))]
	}
	return out
}
