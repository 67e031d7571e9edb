// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import "golang.org/x/exp/constraints"

// Numeric is the constraint satisfied by every non-void forest value
// type. It reuses the same golang.org/x/exp/constraints package that
// other_examples' gorgo-style tooling in this retrieval pack depends on,
// rather than hand-rolling an equivalent union.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// RangeKind names the codomain of the function a forest represents,
// before accounting for the special sentinel values it may also carry.
type RangeKind byte

const (
	RangeBoolean RangeKind = iota
	RangeFinite            // bounded by N, see Config.FiniteN
	RangeNonNegativeInt
	RangeInteger
	RangeReal
)

// ValueKind names the Go representation of a forest's terminal values.
type ValueKind byte

const (
	ValueVoid ValueKind = iota // "set" semantics: only membership matters
	ValueInt32
	ValueInt64
	ValueFloat32
	ValueFloat64
)

// EncodingKind selects where a forest's function value lives.
type EncodingKind byte

const (
	EncodingTerminal   EncodingKind = iota // value lives only on terminal nodes
	EncodingEdgePlus                       // additive edge values
	EncodingEdgePlusMod                     // additive edge values, modulo Modulus
)

// ComplementPolicy controls whether edges may carry a complement bit.
type ComplementPolicy byte

const (
	ComplementNone ComplementPolicy = iota
	ComplementAllowed
)

// SwapPolicy controls which swap flags an edge label may carry.
type SwapPolicy byte

const (
	SwapNone SwapPolicy = iota
	SwapOne
	SwapAll
	SwapFrom
	SwapTo
	SwapFromTo
)

// MergePolicy selects how merge_edge (§4.4.3) resolves a junction where
// the incoming rule and the reduced edge's rule are only "maybe
// compatible."
type MergePolicy byte

const (
	MergePushUp MergePolicy = iota
	MergePushDown
	MergeShortenX
	MergeShortenI
)

// Config is the immutable descriptor of a forest, per spec.md §3.1. A
// Config is validated once, at NewForest time; nothing about a live
// Forest can subsequently change it.
type Config struct {
	// Vars is L, the number of Boolean variables. Levels are 1..Vars;
	// level 0 is reserved for terminals.
	Vars int

	// Dimension is 1 for a function over {0,1}^L (two child edges per
	// node) or 2 for a relation over {0,1}^L x {0,1}^L (four child
	// edges per node).
	Dimension int

	Range     RangeKind
	FiniteN   int64 // only meaningful when Range == RangeFinite
	ValueKind ValueKind
	Encoding  EncodingKind
	Modulus   int64 // only meaningful when Encoding == EncodingEdgePlusMod

	Rules      RuleSet
	Complement ComplementPolicy
	Swap       SwapPolicy
	Merge      MergePolicy

	// Order maps variable index (0-based) to level (1-based); nil means
	// the identity permutation (variable i lives at level i+1). validate
	// checks that it is a permutation, but Var, Eval and FromExplicit do
	// not consult it: they always place variable i at level i+1.
	Order []int

	// growThreshold is the arena size (in nodes) past which a level
	// grows by fixed steps of that many nodes rather than by append's
	// proportional growth (§4.1); zero means the package default (1<<20).
	growThreshold int64
}

// Presets mirroring spec.md §3.3.
func QuasiReduced() RuleSet  { return RuleSet{} }
func FullyReduced() RuleSet  { return newRuleSet(RuleX) }
func ZeroSuppressed() RuleSet {
	return newRuleSet(RuleEL0)
}
func RexBDD() RuleSet {
	return newRuleSet(RuleEL0, RuleEL1, RuleAL0, RuleAL1, RuleEH0, RuleEH1, RuleAH0, RuleAH1, RuleX)
}
func MatrixDiagram() RuleSet { return newRuleSet(RuleI0, RuleX) }
func MatrixDiagramFull() RuleSet {
	return newRuleSet(RuleI0, RuleI1, RuleX)
}

// validate checks configuration consistency, per spec.md §7
// "Configuration error."
func (c Config) validate() error {
	if c.Vars <= 0 {
		return newConfigError("Vars must be positive, got %d", c.Vars)
	}
	if c.Dimension != 1 && c.Dimension != 2 {
		return newConfigError("Dimension must be 1 or 2, got %d", c.Dimension)
	}
	if c.Dimension == 1 && (c.Rules.Has(RuleI0) || c.Rules.Has(RuleI1)) {
		return newConfigError("identity rules I0/I1 require Dimension 2")
	}
	if c.Encoding == EncodingEdgePlusMod && c.Modulus <= 0 {
		return newConfigError("EncodingEdgePlusMod requires a positive Modulus")
	}
	if c.Encoding == EncodingEdgePlusMod && c.Complement == ComplementAllowed {
		// Open question (spec.md §9): EDGE_PLUSMOD's interplay with
		// complement is incomplete in the original source. Forbidden
		// here until the semantics are settled.
		return newConfigError("EncodingEdgePlusMod combined with ComplementAllowed is not yet specified; forbidden")
	}
	if c.Range == RangeFinite && c.FiniteN <= 0 {
		return newConfigError("RangeFinite requires a positive FiniteN")
	}
	if c.ValueKind == ValueVoid && c.Encoding != EncodingTerminal {
		return newConfigError("ValueVoid (set semantics) requires EncodingTerminal")
	}
	if c.Order != nil {
		if len(c.Order) != c.Vars {
			return newConfigError("Order must have exactly Vars entries, got %d for Vars=%d", len(c.Order), c.Vars)
		}
		seen := make([]bool, c.Vars)
		for _, lvl := range c.Order {
			if lvl < 1 || lvl > c.Vars || seen[lvl-1] {
				return newConfigError("Order is not a permutation of levels 1..Vars")
			}
			seen[lvl-1] = true
		}
	}
	return nil
}

func (c Config) growThresholdOr(defaultVal int64) int64 {
	if c.growThreshold <= 0 {
		return defaultVal
	}
	return c.growThreshold
}
