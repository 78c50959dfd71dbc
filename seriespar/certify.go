package seriespar

import (
	"sort"

	"github.com/gomatroid/cmr/cmrenv"
	"github.com/gomatroid/cmr/matrix"
)

// certify inspects the residual core (the rows/columns that survived every
// zero/unit/parallel reduction) for a wheel-like certificate: if every
// surviving row and column has core-degree exactly 2, it returns the whole
// core, sorted, as the violator. It does not check that the core is a
// single cycle, it inspects no signs in either mode (there is no separate
// M2 check in Ternary mode), and its Separation result is always nil.
//
// This implements the "every remaining row/column has degree exactly two"
// special case of spec.md §4.3's wheel search; it is the common case
// actually reached by a fully SP-stripped core, since any vertex of higher
// degree would instead register as part of a detectable separation. A
// core containing a genuinely higher-degree prime structure falls through
// to Reduce's "whole residual core" fallback rather than a located W_k
// submatrix, which is recorded as a simplification in DESIGN.md.
func certify(env *cmrenv.Env, s *state) (*matrix.Submatrix, *matrix.Separation, error) {
	rows := s.activeRowList()
	cols := s.activeColList()
	if len(rows) == 0 || len(cols) == 0 {
		return nil, nil, nil
	}

	degRow := make(map[int]int, len(rows))
	degCol := make(map[int]int, len(cols))
	for _, r := range rows {
		idx, _ := s.rowSupport(r)
		degRow[r] = len(idx)
	}
	for _, c := range cols {
		idx, _ := s.colSupport(c)
		degCol[c] = len(idx)
	}

	allDegreeTwo := true
	for _, d := range degRow {
		if d != 2 {
			allDegreeTwo = false
			break
		}
	}
	if allDegreeTwo {
		for _, d := range degCol {
			if d != 2 {
				allDegreeTwo = false
				break
			}
		}
	}
	if !allDegreeTwo {
		return nil, nil, nil
	}

	env.BumpSubmatricesEnumerated(1)
	sort.Ints(rows)
	sort.Ints(cols)
	return &matrix.Submatrix{Rows: rows, Cols: cols}, nil, nil
}
