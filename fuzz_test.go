// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import (
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzApplySequenceStaysCanonical drives a random sequence of Boolean
// operators over random operands and checks the invariant every
// operator call must preserve: the result is always either a terminal
// edge or a properly interned node handle, and the operation never
// poisons the forest. Grounded on
// codahale-thyrse/fuzz_transcripts_test.go's pattern of decoding an
// operator-sequence transcript out of a go-fuzz-utils TypeProvider.
func FuzzApplySequenceStaysCanonical(f *testing.F) {
	f.Add([]byte{3, 1, 2, 0, 1, 3, 1, 1})

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		const vars = 4
		forest := newTestForest(t, vars, FullyReduced())

		opCount, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}

		cur := forest.zero
		const opTypeCount = 4 // And, Or, Xor, Diff
		for range int(opCount % 30) {
			opRaw, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			lvl, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			other, err := forest.Var(int(lvl)%vars + 1)
			if err != nil {
				t.Fatal(err)
			}

			var next Edge
			switch opRaw % opTypeCount {
			case 0:
				next, err = forest.And(cur, other)
			case 1:
				next, err = forest.Or(cur, other)
			case 2:
				next, err = forest.Xor(cur, other)
			case 3:
				next, err = forest.Diff(cur, other)
			}
			if err != nil {
				t.Fatalf("operator call failed: %v", err)
			}
			cur = next

			if !cur.isTerminal() && (cur.Target == 0 || cur.Label.level() < 1 || cur.Label.level() > vars) {
				t.Fatalf("operator produced a malformed edge: %+v", cur)
			}
		}

		if forest.poisonedErr() != nil {
			t.Fatalf("forest was poisoned during a well-formed operator sequence: %v", forest.poisonedErr())
		}
	})
}
