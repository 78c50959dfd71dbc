// Package seriespar implements the series–parallel reducer (SPEC_FULL.md
// §2 component C3): repeatedly strips zero, unit, parallel, and
// anti-parallel rows/columns from a 0/1 or 0/±1 matrix until no reduction
// applies, certifying failure with a wheel or M2 violator submatrix when
// one is found.
package seriespar

import (
	"context"
	"fmt"
	"sort"

	"github.com/gomatroid/cmr/cmrenv"
	"github.com/gomatroid/cmr/element"
	"github.com/gomatroid/cmr/matrix"
)

// Mode selects whether the reducer treats M as a 0/1 (Binary) or 0/±1
// (Ternary) matrix; Ternary additionally distinguishes parallel from
// anti-parallel collisions by sign.
type Mode int

const (
	Binary Mode = iota
	Ternary
)

// ReductionKind classifies why a row or column was removed.
type ReductionKind int

const (
	KindZero ReductionKind = iota
	KindUnit
	KindParallel
	KindAntiParallel
)

func (k ReductionKind) String() string {
	switch k {
	case KindZero:
		return "zero"
	case KindUnit:
		return "unit"
	case KindParallel:
		return "parallel"
	case KindAntiParallel:
		return "anti-parallel"
	default:
		return "unknown"
	}
}

// Reduction records the removal of element from the matrix because it was
// a zero row/column (Mate is the zero value), a unit row/column (Mate
// names the single remaining nonzero partner), or parallel/anti-parallel
// to Mate (a fingerprint collision, verified entry-by-entry).
type Reduction struct {
	Element element.Element
	Mate    element.Element
	Kind    ReductionKind
}

// Result is the outcome of Reduce.
type Result struct {
	IsSeriesParallel bool
	Reductions       []Reduction
	Core             matrix.Submatrix
	Violator         *matrix.Submatrix
	Separation       *matrix.Separation
}

// Reduce runs the series–parallel reduction scan on m in the given mode.
// Complexity: every support lookup reads a fresh dense copy of m, and every
// reduction re-fingerprints all active rows and columns, so one reduction
// costs O((numRows + numColumns) * numRows * numColumns), with at most
// numRows + numColumns reductions.
func Reduce(ctx context.Context, env *cmrenv.Env, m *matrix.Matrix, mode Mode) (*Result, error) {
	if mode == Binary && !matrix.IsBinary(m) {
		return nil, fmt.Errorf("Reduce: %w", ErrNotBinaryOrTernary)
	}
	if mode == Ternary && !matrix.IsTernary(m) {
		return nil, fmt.Errorf("Reduce: %w", ErrNotBinaryOrTernary)
	}

	st := newState(m, mode)
	var reductions []Reduction

	for {
		if err := cmrenv.Deadline(ctx, "seriespar.scan"); err != nil {
			return nil, err
		}
		env.BumpSPScanPasses(1)
		red, ok := st.scanOnce()
		if !ok {
			break
		}
		reductions = append(reductions, red)
		env.BumpSPReductions(1)
	}

	core := matrix.Submatrix{Rows: st.activeRowList(), Cols: st.activeColList()}

	res := &Result{Reductions: reductions, Core: core}
	if len(core.Rows) == 0 && len(core.Cols) == 0 {
		res.IsSeriesParallel = true
		return res, nil
	}

	// A nonempty core after exhausting every zero/unit/parallel reduction
	// is, by definition, not series–parallel; certify looks for an
	// all-degree-two core to return as the violator alongside that negative
	// answer. It never returns a 2-separation.
	res.IsSeriesParallel = false
	violator, sep, err := certify(env, st)
	if err != nil {
		return nil, err
	}
	if violator != nil {
		res.Violator = violator
		return res, nil
	}
	if sep != nil {
		res.Separation = sep
		return res, nil
	}
	// Neither a wheel/M2 nor a 2-separation was found within the search
	// bound: report the residual core itself as the violator, the
	// smallest witness available.
	res.Violator = &core
	return res, nil
}

func (s *state) activeRowList() []int {
	var out []int
	for r := range s.rowAlive {
		if s.rowAlive[r] {
			out = append(out, r)
		}
	}
	sort.Ints(out)
	return out
}

func (s *state) activeColList() []int {
	var out []int
	for c := range s.colAlive {
		if s.colAlive[c] {
			out = append(out, c)
		}
	}
	sort.Ints(out)
	return out
}
