// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

// Assignment fixes one variable (by level, 1-based) to a Boolean
// value, the unit Restrict/OSM/TSM consume to concretize a partial
// function down to a fully or partially evaluated one.
type Assignment struct {
	Level int
	Value bool
}

// Restrict evaluates e with every variable named in assigns fixed to
// its given value, short-circuiting whichever branch the assignment
// selects at each matching level and leaving every other level
// untouched.
func (f *Forest) Restrict(e Edge, assigns []Assignment) (Edge, error) {
	byLevel := make(map[int]bool, len(assigns))
	for _, a := range assigns {
		byLevel[a.Level] = a.Value
	}
	return f.restrictRec(e, byLevel)
}

func (f *Forest) restrictRec(e Edge, byLevel map[int]bool) (Edge, error) {
	if err := f.poisonedErr(); err != nil {
		return Edge{}, err
	}
	if e.isTerminal() {
		return e, nil
	}

	lvl := e.Label.level()
	cofs := f.cofactor(e, lvl)

	if val, fixed := byLevel[lvl]; fixed {
		idx := 0
		if val {
			idx = 1
		}
		return f.restrictRec(cofs[idx], byLevel)
	}

	children := make([]Edge, len(cofs))
	for i, c := range cofs {
		r, err := f.restrictRec(c, byLevel)
		if err != nil {
			return Edge{}, err
		}
		children[i] = r
	}
	return f.makeNode(lvl, children)
}

// OneSidedMatch (OSM) restricts only the "from" half of a relation's
// variable pairs to the given assignment, leaving the "to" half free;
// it is the relational analogue of Restrict used to specialize a
// transition relation to a fixed source state.
func (f *Forest) OneSidedMatch(rel Edge, assigns []Assignment) (Edge, error) {
	if f.cfg.Dimension != 2 {
		return Edge{}, newUserError("OneSidedMatch requires a Dimension-2 (relation) forest")
	}
	byLevel := make(map[int]bool, len(assigns))
	for _, a := range assigns {
		byLevel[a.Level] = a.Value
	}
	return f.osmRec(rel, byLevel)
}

func (f *Forest) osmRec(e Edge, byLevel map[int]bool) (Edge, error) {
	if e.isTerminal() {
		return e, nil
	}
	lvl := e.Label.level()
	cofs := f.cofactor(e, lvl) // [00,01,10,11]

	if val, fixed := byLevel[lvl]; fixed {
		var lo, hi Edge
		var err error
		if val {
			lo, err = f.osmRec(cofs[2], byLevel)
			if err != nil {
				return Edge{}, err
			}
			hi, err = f.osmRec(cofs[3], byLevel)
		} else {
			lo, err = f.osmRec(cofs[0], byLevel)
			if err != nil {
				return Edge{}, err
			}
			hi, err = f.osmRec(cofs[1], byLevel)
		}
		if err != nil {
			return Edge{}, err
		}
		return f.makeNode(lvl, []Edge{lo, hi})
	}

	children := make([]Edge, len(cofs))
	for i, c := range cofs {
		r, err := f.osmRec(c, byLevel)
		if err != nil {
			return Edge{}, err
		}
		children[i] = r
	}
	return f.makeNode(lvl, children)
}

// TwoSidedMatch (TSM) restricts both halves of a relation's variable
// pairs, collapsing it down to a single Boolean answer ("does this
// transition exist") once every level is fixed.
func (f *Forest) TwoSidedMatch(rel Edge, from, to []Assignment) (Edge, error) {
	if f.cfg.Dimension != 2 {
		return Edge{}, newUserError("TwoSidedMatch requires a Dimension-2 (relation) forest")
	}
	fromLevel := make(map[int]bool, len(from))
	for _, a := range from {
		fromLevel[a.Level] = a.Value
	}
	toLevel := make(map[int]bool, len(to))
	for _, a := range to {
		toLevel[a.Level] = a.Value
	}
	return f.tsmRec(rel, fromLevel, toLevel)
}

func (f *Forest) tsmRec(e Edge, fromLevel, toLevel map[int]bool) (Edge, error) {
	if e.isTerminal() {
		return e, nil
	}
	lvl := e.Label.level()
	cofs := f.cofactor(e, lvl)

	fv, fFixed := fromLevel[lvl]
	tv, tFixed := toLevel[lvl]
	if fFixed && tFixed {
		idx := 0
		if fv {
			idx += 2
		}
		if tv {
			idx += 1
		}
		return f.tsmRec(cofs[idx], fromLevel, toLevel)
	}

	children := make([]Edge, len(cofs))
	for i, c := range cofs {
		r, err := f.tsmRec(c, fromLevel, toLevel)
		if err != nil {
			return Edge{}, err
		}
		children[i] = r
	}
	return f.makeNode(lvl, children)
}
