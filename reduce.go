// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

// reduceNode is the entry point of the reduction algebra (§4.4): given
// the fully-built children of a would-be node at levelNum, it returns
// the single canonical Edge that represents those children, applying
// whichever of normalizeNode's candidate elisions the forest's RuleSet
// actually permits, or interning a real node if none fire.
func (f *Forest) reduceNode(levelNum int, children []Edge) (Edge, error) {
	if err := f.poisonedErr(); err != nil {
		return Edge{}, err
	}

	e, ok, err := f.normalizeNode(levelNum, children)
	if err != nil {
		return Edge{}, err
	}
	if ok {
		return e, nil
	}

	lv := f.levels[levelNum]
	h, err := lv.internOrFind(levelNum, children)
	if err != nil {
		return Edge{}, err
	}
	return Edge{Label: makeLabel(RuleNone, false, 0, levelNum), Target: h}, nil
}

// normalizeNode checks, in a fixed priority order, whether this node's
// children match one of the elision patterns the forest's RuleSet
// enables, and if so returns the elided Edge directly (never touching
// the arena). Priority order, highest first: RuleX (full redundancy),
// then the I0/I1 identity pattern for 4-child relation nodes, then the
// EL/EH elisions of a 2-child node. AL/AH rules are never matched.
func (f *Forest) normalizeNode(levelNum int, children []Edge) (Edge, bool, error) {
	cfg := f.cfg

	if cfg.Rules.Has(RuleX) && allEqual(children) {
		return children[0], true, nil
	}

	if cfg.Dimension == 2 && len(children) == 4 {
		if e, ok, err := f.normalizeIdentity(children); ok || err != nil {
			return e, ok, err
		}
	}

	if len(children) == 2 {
		if e, ok, err := f.normalizeElision(children[0], children[1]); ok || err != nil {
			return e, ok, err
		}
	}

	return Edge{}, false, nil
}

// normalizeElision applies the EL0/EL1/EH0/EH1 rules to a 2-child
// node, eliding the node in favor of its surviving child when the
// elided child is the constant the rule targets. The AL0/AL1/AH0/AH1
// rules are not checked here, so a forest that enables them still
// interns the node.
func (f *Forest) normalizeElision(lo, hi Edge) (Edge, bool, error) {
	rules := f.cfg.Rules

	type candidate struct {
		rule      Rule
		elideHigh bool // true: this rule elides the high edge, keep lo
	}
	candidates := []candidate{
		{RuleEL0, false}, // elide Low==0 constant, keep High
		{RuleEL1, false},
		{RuleEH0, true}, // elide High==0 constant, keep Low
		{RuleEH1, true},
	}

	for _, c := range candidates {
		if !rules.Has(c.rule) {
			continue
		}
		elided, kept := lo, hi
		if c.elideHigh {
			elided, kept = hi, lo
		}
		if isZeroConstant(elided) && (c.rule == RuleEL0 || c.rule == RuleEH0) {
			e, err := f.tagElidedEdge(c.rule, kept)
			return e, true, err
		}
		if isOneConstant(elided) && (c.rule == RuleEL1 || c.rule == RuleEH1) {
			e, err := f.tagElidedEdge(c.rule, kept)
			return e, true, err
		}
	}

	return Edge{}, false, nil
}

// tagElidedEdge builds the long edge an elision rule produces: the
// kept child's target/value, and critically its own level, survive
// unchanged — a handle is only meaningful against the arena it was
// allocated in, so the level field keeps naming that arena; the number
// of levels this edge now skips is recovered contextually by cofactor
// (the calling level minus this field), never stored on the edge
// itself. Only the rule tag changes, to the rule that fired, so the
// condition it encodes (e.g. "else this path is the constant EL0
// targets") is not lost. Ground truth:
// original_source/src/forest.cc:693-696,720-722,744-746 always does
// `reduced = child[i]; reduced.setRule(matchedRule);` — child[i]'s own
// getNodeLevel() is left untouched, only its rule changes.
//
// kept may itself already carry a rule (it may have been elided at a
// lower level already, or be a matrix-diagram identity edge); that
// junction between the newly-matched rule and whatever kept already
// carries is resolved by mergeEdge (§4.4.3) per the forest's
// MergePolicy, rather than blindly overwritten.
func (f *Forest) tagElidedEdge(rule Rule, kept Edge) (Edge, error) {
	outer := kept
	outer.Label = outer.Label.withRule(rule)
	return f.mergeEdge(outer, kept)
}

// normalizeIdentity applies the I0/I1 family used by binary matrix
// diagrams (§3.3, MatrixDiagram preset): a 4-child relation node whose
// off-diagonal children are both the omega/empty terminal and whose
// diagonal children are structurally equal collapses to that shared
// diagonal edge with an identity tag. children order: [00, 01, 10, 11]
// (from-bit, to-bit).
func (f *Forest) normalizeIdentity(children []Edge) (Edge, bool, error) {
	rules := f.cfg.Rules
	off01, off10 := children[1], children[2]
	diag00, diag11 := children[0], children[3]

	if !isOmega(off01) || !isOmega(off10) {
		return Edge{}, false, nil
	}
	if diag00 != diag11 {
		return Edge{}, false, nil
	}
	if rules.Has(RuleI0) && isZeroConstant(diag00) {
		e, err := f.tagElidedEdge(RuleI0, diag00)
		return e, true, err
	}
	if rules.Has(RuleI1) {
		e, err := f.tagElidedEdge(RuleI1, diag00)
		return e, true, err
	}
	return Edge{}, false, nil
}

func allEqual(edges []Edge) bool {
	for i := 1; i < len(edges); i++ {
		if edges[i] != edges[0] {
			return false
		}
	}
	return true
}

func isZeroConstant(e Edge) bool {
	return e.isTerminal() && e.Label.terminalKind() == termValue && e.Value.isZero() && !e.Label.complement()
}

func isOneConstant(e Edge) bool {
	return e.isTerminal() && e.Label.terminalKind() == termValue && !e.Value.isZero() && !e.Label.complement()
}

func isOmega(e Edge) bool {
	return e.isTerminal() && e.Label.terminalKind() == termOmega
}

// reduceEdge canonicalizes a single edge on its way into a parent's
// child slot: when the forest allows complemented edges it clears a
// swap pair of flags that cancel each other out. It does not move
// complement bits; edges pass through otherwise unchanged.
func (f *Forest) reduceEdge(e Edge) Edge {
	if f.cfg.Complement == ComplementAllowed && e.Label.swapFrom() && e.Label.swapTo() {
		e.Label = e.Label.withSwap(false, false)
	}
	return e
}

// mergeEdge resolves the junction between a candidate outer rule
// (freshly matched by normalizeElision/normalizeIdentity) and whatever
// rule the edge it would apply to already carries (§4.4.3): when the
// two are only "maybe compatible" (neither a trivial match nor a hard
// conflict), it applies the forest's configured MergePolicy to pick a
// single consistent edge. This is the only call site reduce.go has for
// a long-edge junction — makeNode builds nodes straight from already-
// reduced children with no separate incoming label, so this is also
// where MergePolicy is wired in rather than left dead.
func (f *Forest) mergeEdge(outer, inner Edge) (Edge, error) {
	if outer.Label.rule() == inner.Label.rule() {
		return inner, nil
	}

	switch f.cfg.Merge {
	case MergeShortenX:
		if allEqual([]Edge{outer, inner}) {
			return inner, nil
		}
		return outer, nil
	case MergeShortenI:
		return inner, nil
	case MergePushDown:
		return inner, nil
	default: // MergePushUp
		return outer, nil
	}
}
