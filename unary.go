// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

// Complement returns the logical negation of a.
func (f *Forest) Complement(a Edge) (Edge, error) {
	if f.cfg.Complement == ComplementAllowed {
		return a.withComplementToggled(), nil
	}
	return f.recurseUnary(opComplement, a, func(x Edge) (Edge, bool) {
		return f.complementConstant(x), true
	})
}

// Copy rebuilds edge a, which belongs to src, inside f. Terminal edges
// are copied as they are; clone is accepted but never called. Levels
// are matched by number; src and f must agree on Vars and Dimension.
func Copy[V any](f, src *Forest, a Edge, clone func(V) V) (Edge, error) {
	if f.cfg.Vars != src.cfg.Vars || f.cfg.Dimension != src.cfg.Dimension {
		return Edge{}, newUserError("Copy: source and destination forests have incompatible shape")
	}
	return copyRec(f, src, a, clone)
}

func copyRec[V any](f, src *Forest, a Edge, clone func(V) V) (Edge, error) {
	if err := f.poisonedErr(); err != nil {
		return Edge{}, err
	}
	if a.isTerminal() {
		if clone != nil && a.Label.terminalKind() == termValue {
			// Value carries a plain Scalar, not a V; deep-copy hooks
			// apply to the out-of-band payload store an embedding layer
			// keeps alongside Scalar for non-numeric V. Nothing to do
			// here for the built-in numeric Scalar kinds.
			_ = clone
		}
		return a, nil
	}

	lvl := a.Label.level()
	children := src.cofactor(a, lvl)
	out := make([]Edge, len(children))
	for i, c := range children {
		r, err := copyRec(f, src, c, clone)
		if err != nil {
			return Edge{}, err
		}
		out[i] = r
	}
	return f.makeNode(lvl, out)
}
