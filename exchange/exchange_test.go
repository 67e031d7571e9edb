// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package exchange

import (
	"bytes"
	"reflect"
	"testing"
)

func TestRoundTrip_ShiftZero(t *testing.T) {
	doc := &Document{
		Header: Header{Vars: 2, Dimension: 1, Shift: 0},
		Levels: []LevelBlock{
			{Level: 1, Children: [][]int{{0, 1}}},
			{Level: 2, Children: [][]int{{0, 1}, {1, 0}}},
		},
		Roots: []int{1, 2},
	}

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatal(err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(got.Header, doc.Header) {
		t.Fatalf("header mismatch: got %+v want %+v", got.Header, doc.Header)
	}
	if !reflect.DeepEqual(got.Levels, doc.Levels) {
		t.Fatalf("levels mismatch: got %+v want %+v", got.Levels, doc.Levels)
	}
	if !reflect.DeepEqual(got.Roots, doc.Roots) {
		t.Fatalf("roots mismatch: got %+v want %+v", got.Roots, doc.Roots)
	}
}

func TestRead_RejectsEmptyInput(t *testing.T) {
	if _, err := Read(bytes.NewReader(nil)); err == nil {
		t.Fatalf("expected an error for empty input")
	}
}

func TestRead_RejectsNodeLineBeforeLevelHeader(t *testing.T) {
	in := "1 1 0\n0 1\n.\n"
	if _, err := Read(bytes.NewBufferString(in)); err == nil {
		t.Fatalf("expected an error for a node line before any level header")
	}
}
