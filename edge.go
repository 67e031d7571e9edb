// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import "github.com/bravedd/ddforest/internal/bitset"

// Rule names one of the reduction rules of spec.md §4.4, encoded as a
// small integer so RuleSet can be backed by a BitSet256.
//
// The values are sequential: RuleNone is 0, the EL/AL/EH/AH rules are
// 1..8 in the order declared below, then RuleX (9), RuleI0 (10) and
// RuleI1 (11). No bit of the value carries a meaning of its own;
// Complement and elidesHigh map each rule by name.
type Rule byte

const (
	RuleNone Rule = iota
	RuleEL0
	RuleEL1
	RuleAL0
	RuleAL1
	RuleEH0
	RuleEH1
	RuleAH0
	RuleAH1
	RuleX
	RuleI0
	RuleI1
	ruleCount
)

// Complement returns the rule obtained by toggling the polarity this
// rule tests for. RuleX is self-complementary (fully-reduced elision
// does not test a constant at all); RuleI0/RuleI1 swap into each other.
func (r Rule) Complement() Rule {
	switch r {
	case RuleX, RuleNone:
		return r
	case RuleI0:
		return RuleI1
	case RuleI1:
		return RuleI0
	case RuleEL0:
		return RuleEL1
	case RuleEL1:
		return RuleEL0
	case RuleAL0:
		return RuleAL1
	case RuleAL1:
		return RuleAL0
	case RuleEH0:
		return RuleEH1
	case RuleEH1:
		return RuleEH0
	case RuleAH0:
		return RuleAH1
	case RuleAH1:
		return RuleAH0
	default:
		return r
	}
}

// elidesHigh reports whether this rule elides the Low (false) or the High
// (true) child edge when it fires. RuleX and RuleNone elide neither
// child in this sense (RuleX elides a whole node, not one edge) and
// report false.
func (r Rule) elidesHigh() bool {
	switch r {
	case RuleEH0, RuleEH1, RuleAH0, RuleAH1:
		return true
	default:
		return false
	}
}

// RuleSet is the set of reduction rules a forest enforces, §3.3. Backed
// by BitSet256 the way the teacher backs small enum sets, even though
// ruleCount is well under 64; this keeps RuleSet in the same family as
// every other small-set type in this package.
type RuleSet struct {
	bits bitset.BitSet256
}

func newRuleSet(rules ...Rule) RuleSet {
	var rs RuleSet
	for _, r := range rules {
		rs.bits.MustSet(uint(r))
	}
	return rs
}

func (rs RuleSet) Has(r Rule) bool {
	return rs.bits.Test(uint(r))
}

func (rs *RuleSet) add(r Rule) {
	rs.bits.MustSet(uint(r))
}

// Handle is an opaque reference to a node stored in a forest's arena.
// Handle 0 is never a valid node; it is reserved to mean "no node" in
// contexts where an Edge's Target might otherwise need a pointer.
type Handle int32

// Terminal kinds, §3.1. A terminal is encoded directly in a Label
// rather than by a Handle into the arena: terminals are few, fixed, and
// shared process-wide via the forest's Config.
type terminalKind byte

const (
	termNone   terminalKind = iota // not a terminal edge
	termValue                      // carries a Scalar payload
	termPosInf                     // +infinity, arithmetic forests only
	termNegInf                     // -infinity, arithmetic forests only
	termUndef                      // undefined/don't-care result
	termOmega                      // the empty-relation / false terminal for void forests
)

// Label packs everything about an edge except its Target handle and
// any out-of-line edge value into one uint64, the way the teacher packs
// route metadata into a single machine word for its hot lookup path
// (bitset256.go's header comment: shifts and masks kept inline rather
// than factored into helper functions).
//
// Field layout, low bit to high bit:
//
//	bits 0-3   rule        (Rule, 4 bits, up to 16 values)
//	bit  4     complement  (bool)
//	bits 5-6   swap        (2 bits: swap-from, swap-to)
//	bit  7     isTerminal  (bool)
//	bits 8-10  terminalKind
//	bits 11-26 level       (16 bits, levels 0..65535)
type Label uint64

const (
	labelRuleShift       = 0
	labelRuleMask        = 0xF
	labelComplementShift = 4
	labelSwapShift       = 5
	labelSwapMask        = 0x3
	labelIsTerminalShift = 7
	labelTermKindShift   = 8
	labelTermKindMask    = 0x7
	labelLevelShift      = 11
	labelLevelMask       = 0xFFFF
)

func makeLabel(rule Rule, complement bool, swap uint8, level int) Label {
	var l Label
	l |= Label(rule) & labelRuleMask
	if complement {
		l |= 1 << labelComplementShift
	}
	l |= Label(swap&labelSwapMask) << labelSwapShift
	l |= Label(level&labelLevelMask) << labelLevelShift
	return l
}

func makeTerminalLabel(kind terminalKind, complement bool) Label {
	l := Label(1) << labelIsTerminalShift
	l |= Label(kind&labelTermKindMask) << labelTermKindShift
	if complement {
		l |= 1 << labelComplementShift
	}
	return l
}

func (l Label) rule() Rule { return Rule(l >> labelRuleShift & labelRuleMask) }

func (l Label) withRule(r Rule) Label {
	return l&^Label(labelRuleMask) | (Label(r) & labelRuleMask)
}

func (l Label) complement() bool { return l&(1<<labelComplementShift) != 0 }

func (l Label) withComplement(c bool) Label {
	if c {
		return l | (1 << labelComplementShift)
	}
	return l &^ (1 << labelComplementShift)
}

// swapFrom/swapTo report which half of a relation's variable pair (the
// "from" or "to" copy of the variable at this level) this edge swaps,
// per the SwapPolicy carried by the forest's Config. Two independent
// bits rather than the original archive's single combined Swap
// bit-transform (see the edge.go entry of DESIGN.md's "Module-by-module
// status"): the transform
// recovered from reductions.h was not involutive under hand-tracing,
// so swap state here is carried as plain flags on the edge label
// instead of folded into the rule tag.
func (l Label) swapFrom() bool { return l&(1<<labelSwapShift) != 0 }

func (l Label) swapTo() bool { return l&(2<<labelSwapShift) != 0 }

func (l Label) withSwap(from, to bool) Label {
	l &^= Label(labelSwapMask) << labelSwapShift
	var s uint8
	if from {
		s |= 1
	}
	if to {
		s |= 2
	}
	return l | Label(s)<<labelSwapShift
}

func (l Label) isTerminal() bool { return l&(1<<labelIsTerminalShift) != 0 }

func (l Label) terminalKind() terminalKind {
	return terminalKind(l >> labelTermKindShift & labelTermKindMask)
}

func (l Label) level() int { return int(l >> labelLevelShift & labelLevelMask) }

func (l Label) withLevel(lvl int) Label {
	l &^= Label(labelLevelMask) << labelLevelShift
	return l | Label(lvl&labelLevelMask)<<labelLevelShift
}

// Scalar is a small tagged union used for edge values in
// EncodingEdgePlus / EncodingEdgePlusMod forests, and for terminal
// payloads in EncodingTerminal forests. Every forest, void ones
// included, builds its Zero and One terminals as termValue edges whose
// Scalar holds 0 and 1.
type Scalar struct {
	bits uint64 // reinterpreted per kind: int64 bits or float64 bits
	kind ValueKind
}

func scalarFromInt64(v int64) Scalar { return Scalar{bits: uint64(v), kind: ValueInt64} }

func (s Scalar) asInt64() int64 { return int64(s.bits) }

func (s Scalar) isZero() bool { return s.bits == 0 }

func addScalar(a, b Scalar) Scalar {
	return Scalar{bits: uint64(a.asInt64() + b.asInt64()), kind: a.kind}
}

func minScalar(a, b Scalar) Scalar {
	if a.asInt64() < b.asInt64() {
		return a
	}
	return b
}

func maxScalar(a, b Scalar) Scalar {
	if a.asInt64() > b.asInt64() {
		return a
	}
	return b
}

// Edge is a directed, labeled edge of a decision diagram: the atomic
// unit stored inside a Node's child slots and returned to callers as a
// handle on a function/relation.
type Edge struct {
	Label  Label
	Target Handle // zero when Label.isTerminal()
	Value  Scalar // meaningful only under EncodingEdgePlus/EncodingEdgePlusMod
}

func terminalEdge(kind terminalKind, complement bool) Edge {
	return Edge{Label: makeTerminalLabel(kind, complement)}
}

func (e Edge) isTerminal() bool { return e.Label.isTerminal() }
