// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import "testing"

func TestImage_EmptyRelationGivesEmptySet(t *testing.T) {
	setF := newTestForest(t, 2, FullyReduced())
	relCfg := Config{Vars: 2, Dimension: 2, Rules: FullyReduced(), ValueKind: ValueInt64}
	relF, err := NewForest[Scalar](relCfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(relF.Close)

	x1, err := setF.Var(1)
	if err != nil {
		t.Fatal(err)
	}

	pre, err := relF.PreImage(setF, x1, relF.Omega())
	if err != nil {
		t.Fatal(err)
	}
	if pre != relF.Zero() {
		t.Fatalf("PreImage over the empty relation should be empty, got %+v", pre)
	}

	post, err := relF.PostImage(setF, x1, relF.Omega())
	if err != nil {
		t.Fatal(err)
	}
	if post != relF.Zero() {
		t.Fatalf("PostImage over the empty relation should be empty, got %+v", post)
	}
}

func TestImage_EmptySetGivesEmptyImage(t *testing.T) {
	setF := newTestForest(t, 2, FullyReduced())
	relCfg := Config{Vars: 2, Dimension: 2, Rules: FullyReduced(), ValueKind: ValueInt64}
	relF, err := NewForest[Scalar](relCfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(relF.Close)

	full := Edge{Label: makeTerminalLabel(termValue, false), Value: scalarFromInt64(1)}

	pre, err := relF.PreImage(setF, setF.Zero(), full)
	if err != nil {
		t.Fatal(err)
	}
	if pre != relF.Zero() {
		t.Fatalf("PreImage of the empty set should be empty, got %+v", pre)
	}
}
