// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

// Min returns the pointwise minimum of a and b, meaningful for
// EncodingEdgePlus / EncodingEdgePlusMod forests whose edge values
// accumulate along a path to a terminal.
func (f *Forest) Min(a, b Edge) (Edge, error) {
	return f.recurseBinary(opMin, a, b, func(x, y Edge) (Edge, bool) {
		if x.Label.terminalKind() == termNegInf || y.Label.terminalKind() == termNegInf {
			return terminalEdge(termNegInf, false), true
		}
		return f.withValue(minScalar(x.Value, y.Value)), true
	})
}

// Max returns the pointwise maximum of a and b.
func (f *Forest) Max(a, b Edge) (Edge, error) {
	return f.recurseBinary(opMax, a, b, func(x, y Edge) (Edge, bool) {
		if x.Label.terminalKind() == termPosInf || y.Label.terminalKind() == termPosInf {
			return terminalEdge(termPosInf, false), true
		}
		return f.withValue(maxScalar(x.Value, y.Value)), true
	})
}

// Plus returns the pointwise sum of a and b, reducing modulo the
// forest's Config.Modulus when Encoding is EncodingEdgePlusMod.
func (f *Forest) Plus(a, b Edge) (Edge, error) {
	return f.recurseBinary(opPlus, a, b, func(x, y Edge) (Edge, bool) {
		sum := addScalar(x.Value, y.Value)
		if f.cfg.Encoding == EncodingEdgePlusMod {
			sum = Scalar{bits: uint64(((sum.asInt64() % f.cfg.Modulus) + f.cfg.Modulus) % f.cfg.Modulus), kind: sum.kind}
		}
		return f.withValue(sum), true
	})
}

func (f *Forest) withValue(v Scalar) Edge {
	return Edge{Label: makeTerminalLabel(termValue, false), Value: v}
}
