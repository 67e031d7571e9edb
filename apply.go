// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

// And returns the conjunction of a and b.
func (f *Forest) And(a, b Edge) (Edge, error) {
	return f.recurseBinary(opAnd, a, b, func(x, y Edge) (Edge, bool) {
		if isZeroConstant(x) || isZeroConstant(y) {
			return f.zero, true
		}
		if isOneConstant(x) {
			return y, true
		}
		if isOneConstant(y) {
			return x, true
		}
		return Edge{}, false
	})
}

// Or returns the disjunction of a and b.
func (f *Forest) Or(a, b Edge) (Edge, error) {
	return f.recurseBinary(opOr, a, b, func(x, y Edge) (Edge, bool) {
		if isOneConstant(x) || isOneConstant(y) {
			return f.one, true
		}
		if isZeroConstant(x) {
			return y, true
		}
		if isZeroConstant(y) {
			return x, true
		}
		return Edge{}, false
	})
}

// Xor returns the symmetric difference of a and b.
func (f *Forest) Xor(a, b Edge) (Edge, error) {
	return f.recurseBinary(opXor, a, b, func(x, y Edge) (Edge, bool) {
		if isZeroConstant(x) {
			return y, true
		}
		if isZeroConstant(y) {
			return x, true
		}
		if isOneConstant(x) {
			return f.complementConstant(y), true
		}
		if isOneConstant(y) {
			return f.complementConstant(x), true
		}
		return Edge{}, false
	})
}

// Diff returns a AND NOT b.
func (f *Forest) Diff(a, b Edge) (Edge, error) {
	return f.recurseBinary(opDiff, a, b, func(x, y Edge) (Edge, bool) {
		if isZeroConstant(x) || sameConstant(x, y) {
			return f.zero, true
		}
		if isZeroConstant(y) {
			return x, true
		}
		if isOneConstant(x) {
			return f.complementConstant(y), true
		}
		return Edge{}, false
	})
}

func sameConstant(x, y Edge) bool {
	return x.isTerminal() && y.isTerminal() && x.Label.terminalKind() == y.Label.terminalKind() && x.Value == y.Value
}

// complementConstant flips a terminal Boolean constant; it is not a
// general complement (use the Complement operator in unary.go for
// that), only a helper for apply.go's terminal base cases.
func (f *Forest) complementConstant(e Edge) Edge {
	if isZeroConstant(e) {
		return f.one
	}
	return f.zero
}
