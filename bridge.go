// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import "sort"

// Row is one entry of an explicit function table: a full assignment to
// every variable (indexed by level-1, i.e. Bits[i] is the value at
// level i+1) paired with the value the function takes there.
type Row struct {
	Bits  []bool
	Value Scalar
}

// FromExplicit builds the canonical edge representing the function
// described by rows, by radix-sorting them on their bit vectors and
// recursively splitting on the most significant unsplit level,
// building terminals only at the leaves of the recursion. Rows not
// named are implicitly the forest's default terminal (Zero for
// Boolean/void forests).
func (f *Forest) FromExplicit(rows []Row) (Edge, error) {
	if err := f.poisonedErr(); err != nil {
		return Edge{}, err
	}
	sorted := append([]Row(nil), rows...)
	sort.Slice(sorted, func(i, j int) bool {
		return bitsLess(sorted[i].Bits, sorted[j].Bits)
	})
	return f.bridgeRec(sorted, f.cfg.Vars)
}

func bitsLess(a, b []bool) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return !a[i] && b[i]
		}
	}
	return false
}

// bridgeRec consumes rows whose bit vectors all agree on levels
// level+1..Vars (the caller guarantees this by construction) and builds
// the subtree for levels 1..level.
func (f *Forest) bridgeRec(rows []Row, level int) (Edge, error) {
	if level < 1 {
		if len(rows) == 0 {
			return f.zero, nil
		}
		return f.withValue(rows[0].Value), nil
	}
	if len(rows) == 0 {
		return f.zero, nil
	}

	// partition at the current level: false-rows first after the sort,
	// then true-rows, since bitsLess orders false before true.
	split := sort.Search(len(rows), func(i int) bool { return rows[i].Bits[level-1] })

	lo, err := f.bridgeRec(rows[:split], level-1)
	if err != nil {
		return Edge{}, err
	}
	hi, err := f.bridgeRec(rows[split:], level-1)
	if err != nil {
		return Edge{}, err
	}
	return f.makeNode(level, []Edge{lo, hi})
}
