// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import (
	"bytes"
	"testing"

	"github.com/bravedd/ddforest/exchange"
	"github.com/bravedd/ddforest/internal/randgen"
)

// Scenario 1: the textbook two-variable AND.
func TestScenario_TwoVariableAnd(t *testing.T) {
	f := newTestForest(t, 2, FullyReduced())
	x1, _ := f.Var(1)
	x2, _ := f.Var(2)
	and, err := f.And(x1, x2)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range []struct {
		a, b, want bool
	}{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	} {
		got := evalBool(t, f, and, []bool{row.a, row.b})
		if got != row.want {
			t.Fatalf("AND(%v,%v)=%v, want %v", row.a, row.b, got, row.want)
		}
	}
	n, err := f.Cardinality(and)
	if err != nil {
		t.Fatal(err)
	}
	if n.Int64() != 1 {
		t.Fatalf("AND should have exactly one satisfying assignment, got %s", n.String())
	}
}

// Scenario 2: a 3x3 N-Queens fragment — the three row-constraints only
// (exactly one queen per row, one-hot per row), column and diagonal
// attacks not yet applied. Cardinality is 3^3 = 27, one free column
// choice per row.
func TestScenario_ThreeQueensFragment(t *testing.T) {
	const n = 3
	f := newTestForest(t, n*n, FullyReduced())

	var rows []Row
	for r0 := 0; r0 < n; r0++ {
		for r1 := 0; r1 < n; r1++ {
			for r2 := 0; r2 < n; r2++ {
				bits := make([]bool, n*n)
				bits[0*n+r0] = true
				bits[1*n+r1] = true
				bits[2*n+r2] = true
				rows = append(rows, Row{Bits: bits, Value: f.one.Value})
			}
		}
	}

	e, err := f.FromExplicit(rows)
	if err != nil {
		t.Fatal(err)
	}
	card, err := f.Cardinality(e)
	if err != nil {
		t.Fatal(err)
	}
	if card.Int64() != 27 {
		t.Fatalf("expected 3^3=27 row-constrained placements, got %s", card.String())
	}
}

// Scenario 3: the 2x2 sliding puzzle's reachable-state set, built via
// Saturate over the eight single blank-move relations.
func TestScenario_SlidingPuzzleTwoByTwo(t *testing.T) {
	// Encode the blank's position with 2 bits (0..3); each relation
	// moves the blank to one adjacent cell. Positions: 0 1 / 2 3.
	setF := newTestForest(t, 2, FullyReduced())
	relCfg := Config{Vars: 2, Dimension: 2, Rules: FullyReduced(), ValueKind: ValueInt64}
	relF, err := NewForest[Scalar](relCfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(relF.Close)

	moves := [][2]int{{0, 1}, {1, 0}, {0, 2}, {2, 0}, {1, 3}, {3, 1}, {2, 3}, {3, 2}}
	var rels []Edge
	for _, mv := range moves {
		rel := relationEdge(t, relF, mv[0], mv[1])
		rels = append(rels, rel)
	}

	start := stateEdge(t, setF, 0)
	reach, err := relF.Saturate(setF, start, RelationSet{Forest: relF, Relations: rels})
	if err != nil {
		t.Fatal(err)
	}
	_ = reach // reachability over a fully connected 4-state graph; no crash is the property under test here
}

func relationEdge(t *testing.T, f *Forest, from, to int) Edge {
	t.Helper()
	rows := []Row{{
		Bits:  []bool{from&1 != 0, to&1 != 0, from>>1 != 0, to>>1 != 0},
		Value: f.one.Value,
	}}
	e, err := f.FromExplicit(rows)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func stateEdge(t *testing.T, f *Forest, state int) Edge {
	t.Helper()
	rows := []Row{{Bits: []bool{state&1 != 0, state>>1 != 0}, Value: f.one.Value}}
	e, err := f.FromExplicit(rows)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

// Scenario 4: dining philosophers, N=3 — count states where no two
// adjacent philosophers hold a fork simultaneously (mutual exclusion).
func TestScenario_DiningPhilosophersThree(t *testing.T) {
	const n = 3
	f := newTestForest(t, n, FullyReduced())

	var rows []Row
	for mask := 0; mask < 1<<n; mask++ {
		ok := true
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if mask&(1<<i) != 0 && mask&(1<<j) != 0 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		bits := make([]bool, n)
		for i := 0; i < n; i++ {
			bits[i] = mask&(1<<i) != 0
		}
		rows = append(rows, Row{Bits: bits, Value: f.one.Value})
	}

	e, err := f.FromExplicit(rows)
	if err != nil {
		t.Fatal(err)
	}
	card, err := f.Cardinality(e)
	if err != nil {
		t.Fatal(err)
	}
	// All-idle plus exactly one philosopher eating, for a ring of 3.
	if card.Int64() != 4 {
		t.Fatalf("expected 4 mutually-exclusive states for N=3, got %s", card.String())
	}
}

// Scenario 5: builds a random 4-variable function, then round-trips an
// exchange-format header for a 4-variable forest; the function's nodes
// are not written to the document.
func TestScenario_ExchangeHeaderRoundTrip(t *testing.T) {
	f := newTestForest(t, 4, FullyReduced())
	g := randgen.New(42)
	e := randomBoolEdge(t, f, g, 4)

	doc := &exchange.Document{Header: exchange.Header{Vars: 4, Dimension: 1}}
	var buf bytes.Buffer
	if err := exchange.Write(&buf, doc); err != nil {
		t.Fatal(err)
	}
	got, err := exchange.Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Header.Vars != 4 {
		t.Fatalf("round-tripped header lost Vars: %+v", got.Header)
	}
	_ = e // the function itself is exercised by FromExplicit above; this scenario checks the file format round trip
}

// Scenario 6: Restrict fixes x3=false in the total 3-variable function
// (x1 AND x2) OR x3.
func TestScenario_RestrictThreeVariableFunction(t *testing.T) {
	f := newTestForest(t, 3, FullyReduced())
	x1, _ := f.Var(1)
	x2, _ := f.Var(2)
	x3, _ := f.Var(3)

	and12, err := f.And(x1, x2)
	if err != nil {
		t.Fatal(err)
	}
	fn, err := f.Or(and12, x3)
	if err != nil {
		t.Fatal(err)
	}

	restricted, err := f.Restrict(fn, []Assignment{{Level: 3, Value: false}})
	if err != nil {
		t.Fatal(err)
	}
	want, err := f.And(x1, x2)
	if err != nil {
		t.Fatal(err)
	}
	if restricted != want {
		t.Fatalf("restricting x3=false should leave x1 AND x2, got %+v want %+v", restricted, want)
	}
}
