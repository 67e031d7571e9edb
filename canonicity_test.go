// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import "testing"

func newTestForest(t *testing.T, vars int, rules RuleSet) *Forest {
	t.Helper()
	cfg := Config{Vars: vars, Dimension: 1, Rules: rules, ValueKind: ValueInt64}
	f, err := NewForest[Scalar](cfg)
	if err != nil {
		t.Fatalf("NewForest: %v", err)
	}
	t.Cleanup(f.Close)
	return f
}

func TestCanonicity_StructurallyEqualFunctionsShareEdge(t *testing.T) {
	f := newTestForest(t, 2, FullyReduced())

	x1, err := f.Var(1)
	if err != nil {
		t.Fatal(err)
	}
	x2, err := f.Var(1)
	if err != nil {
		t.Fatal(err)
	}
	if x1 != x2 {
		t.Fatalf("two constructions of the same variable produced different edges: %+v != %+v", x1, x2)
	}

	a, err := f.And(x1, x1)
	if err != nil {
		t.Fatal(err)
	}
	if a != x1 {
		t.Fatalf("x AND x should be x itself, got %+v", a)
	}
}

func TestCanonicity_FullyReducedElidesRedundantNode(t *testing.T) {
	f := newTestForest(t, 2, FullyReduced())

	before := f.NodeCount()
	e, err := f.makeNode(1, []Edge{f.zero, f.zero})
	if err != nil {
		t.Fatal(err)
	}
	if e != f.zero {
		t.Fatalf("a node with two equal children should elide to that child, got %+v", e)
	}
	if f.NodeCount() != before {
		t.Fatalf("elided node should not have grown the arena: before=%d after=%d", before, f.NodeCount())
	}
}

func TestCanonicity_QuasiReducedKeepsRedundantNode(t *testing.T) {
	f := newTestForest(t, 2, QuasiReduced())

	e, err := f.makeNode(1, []Edge{f.zero, f.zero})
	if err != nil {
		t.Fatal(err)
	}
	if e.isTerminal() {
		t.Fatalf("quasi-reduced forest should not elide a node with equal children, got terminal %+v", e)
	}
}

func TestCanonicity_ZeroSuppressedElidesZeroHigh(t *testing.T) {
	f := newTestForest(t, 1, ZeroSuppressed())

	hi := f.one
	e, err := f.makeNode(1, []Edge{f.zero, hi})
	if err != nil {
		t.Fatal(err)
	}
	if e == hi {
		t.Fatalf("EL0 should produce a long edge tagged with the rule that fired, not the bare kept terminal %+v", hi)
	}

	atZero, err := f.Eval(e, []bool{false})
	if err != nil {
		t.Fatal(err)
	}
	if atZero.asInt64() != f.zero.Value.asInt64() {
		t.Fatalf("x1=0 should fall through EL0 to the zero constant, got %d want %d", atZero.asInt64(), f.zero.Value.asInt64())
	}

	atOne, err := f.Eval(e, []bool{true})
	if err != nil {
		t.Fatal(err)
	}
	if atOne.asInt64() != hi.Value.asInt64() {
		t.Fatalf("x1=1 should reach the kept high child, got %d want %d", atOne.asInt64(), hi.Value.asInt64())
	}
}
