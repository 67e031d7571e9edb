// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

// terminalCombine2 is supplied by a binary operator to resolve the
// recursion's base case: both operands are terminal edges.
type terminalCombine2 func(a, b Edge) (Edge, bool)

// cofactor returns the two (or four, for relations) child edges of e
// at the level the recursion is currently working on. When e's target
// sits at exactly levelNum, this is a plain node expansion; otherwise
// e skips levelNum under the forest's reduction rules, and the
// cofactors are produced from e.Label.rule() — a rule-tagged long
// edge (EL0/EL1/EH0/EH1, I0/I1) is re-tested at every level it skips,
// since a chain of single-level elisions of the same rule is
// indistinguishable from one edge skipping several levels at once; an
// untagged long edge (RuleNone/RuleX) is simply e duplicated, since
// those rules mean the value does not depend on the skipped variable.
func (f *Forest) cofactor(e Edge, levelNum int) []Edge {
	arity := 2
	if f.cfg.Dimension == 2 {
		arity = 4
	}

	targetLevel := 0
	if !e.isTerminal() {
		targetLevel = e.Label.level()
	}

	if targetLevel == levelNum {
		lv := f.levels[levelNum]
		n := lv.get(e.Target)
		out := make([]Edge, len(n.children))
		copy(out, n.children)
		if e.Label.complement() {
			for i := range out {
				out[i] = out[i].withComplementToggled()
			}
		}
		return out
	}

	switch e.Label.rule() {
	case RuleEL0, RuleEL1, RuleEH0, RuleEH1:
		return f.cofactorElision(e, arity)
	case RuleI0, RuleI1:
		return f.cofactorIdentity(e, arity)
	default:
		out := make([]Edge, arity)
		for i := range out {
			out[i] = e
		}
		return out
	}
}

// cofactorElision expands a long edge tagged with one of the elision
// rules (§4.4): the branch the rule elides (low for EL*, high for
// EH*) collapses to the constant the rule's suffix names (0 or 1,
// flipped if e carries a complement), while the other branch carries
// e unchanged, to be tested again against the same rule one level
// further down.
func (f *Forest) cofactorElision(e Edge, arity int) []Edge {
	rule := e.Label.rule()
	collapseIsOne := rule == RuleEL1 || rule == RuleEH1
	if e.Label.complement() {
		collapseIsOne = !collapseIsOne
	}
	collapsed := f.zero
	if collapseIsOne {
		collapsed = f.one
	}

	out := make([]Edge, arity)
	for i := range out {
		out[i] = e
	}
	if rule.elidesHigh() {
		if len(out) > 1 {
			out[1] = collapsed
		}
	} else {
		out[0] = collapsed
	}
	return out
}

// cofactorIdentity expands a long edge tagged I0/I1 (§3.3, relations):
// the diagonal (from==to) continues with e unchanged; the
// off-diagonal (from!=to) collapses to the empty-relation terminal.
func (f *Forest) cofactorIdentity(e Edge, arity int) []Edge {
	out := make([]Edge, arity)
	for i := range out {
		out[i] = e
	}
	if arity == 4 {
		out[1] = f.omega
		out[2] = f.omega
	}
	return out
}

// withComplementToggled flips an edge's complement bit, pushing a
// parent's complement down onto a child cofactor.
func (e Edge) withComplementToggled() Edge {
	e.Label = e.Label.withComplement(!e.Label.complement())
	return e
}

// topLevel returns the higher (closer to the root) of two edges' top
// levels: terminal edges report level 0, so a non-terminal operand
// always outranks one.
func (f *Forest) topLevel(a, b Edge) int {
	la, lb := f.edgeLevel(a), f.edgeLevel(b)
	if la > lb {
		return la
	}
	return lb
}

func (f *Forest) edgeLevel(e Edge) int {
	if e.isTerminal() {
		return 0
	}
	return e.Label.level()
}

// recurseBinary implements the shared 7-step recursive schema every
// binary operator (apply.go, arith.go) follows:
//
//  1. check the forest hasn't been poisoned
//  2. try the operator's terminal base case
//  3. look up (op, level, a, b) in the operation cache
//  4. split both operands on the higher of their top levels
//  5. recurse on each cofactor pair
//  6. rebuild a node from the recursive results and reduce it
//  7. insert the result into the cache and return it
func (f *Forest) recurseBinary(op opCode, a, b Edge, base terminalCombine2) (Edge, error) {
	if err := f.poisonedErr(); err != nil {
		return Edge{}, err
	}

	if a.isTerminal() && b.isTerminal() {
		if r, ok := base(a, b); ok {
			return r, nil
		}
	}

	lvl := f.topLevel(a, b)
	if lvl == 0 {
		if r, ok := base(a, b); ok {
			return r, nil
		}
		return Edge{}, f.poisonNow(newInvariantError("recurseBinary: no base case for two terminals at level 0").(*InvariantError))
	}

	key := cacheKey{op: op, level: lvl, a: a, b: b}
	if r, ok := f.cache.lookup(key); ok {
		return r, nil
	}

	ca := f.cofactor(a, lvl)
	cb := f.cofactor(b, lvl)

	children := make([]Edge, len(ca))
	for i := range ca {
		r, err := f.recurseBinary(op, ca[i], cb[i], base)
		if err != nil {
			return Edge{}, err
		}
		children[i] = r
	}

	result, err := f.makeNode(lvl, children)
	if err != nil {
		return Edge{}, err
	}

	f.cache.insert(key, result)
	return result, nil
}

// recurseUnary is the single-operand analogue of recurseBinary, used
// by unary.go's Complement and Copy.
func (f *Forest) recurseUnary(op opCode, a Edge, base func(Edge) (Edge, bool)) (Edge, error) {
	if err := f.poisonedErr(); err != nil {
		return Edge{}, err
	}

	if a.isTerminal() {
		if r, ok := base(a); ok {
			return r, nil
		}
	}

	lvl := f.edgeLevel(a)
	if lvl == 0 {
		if r, ok := base(a); ok {
			return r, nil
		}
		return Edge{}, f.poisonNow(newInvariantError("recurseUnary: no base case for terminal operand").(*InvariantError))
	}

	key := cacheKey{op: op, level: lvl, a: a}
	if r, ok := f.cache.lookup(key); ok {
		return r, nil
	}

	ca := f.cofactor(a, lvl)
	children := make([]Edge, len(ca))
	for i := range ca {
		r, err := f.recurseUnary(op, ca[i], base)
		if err != nil {
			return Edge{}, err
		}
		children[i] = r
	}

	result, err := f.makeNode(lvl, children)
	if err != nil {
		return Edge{}, err
	}
	f.cache.insert(key, result)
	return result, nil
}
