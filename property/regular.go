package property

import (
	"context"
	"fmt"
	"sort"

	"github.com/gomatroid/cmr/cmrenv"
	"github.com/gomatroid/cmr/decomp"
	"github.com/gomatroid/cmr/matrix"
)

// TestRegular drives the decomposition engine (decomp.Decompose) on m's
// support and reports whether the represented binary matroid is regular,
// together with the root of the decomposition tree it built — the
// decomposition certificate spec.md §4.7 asks the regularity driver to
// produce. env.Params (AllowSPReductions, CompleteTree) govern which
// shortcuts decomp takes; since decomp.Decompose always expands every
// subtree (it has no shallow fast-path), CompleteTree has no observable
// effect in this implementation, a simplification recorded in DESIGN.md.
func TestRegular(ctx context.Context, env *cmrenv.Env, m *matrix.Matrix) (bool, *decomp.Node, error) {
	support, err := matrix.Support(m)
	if err != nil {
		return false, nil, fmt.Errorf("property: TestRegular: %w", err)
	}
	root, err := decomp.Decompose(ctx, env, support)
	if err != nil {
		return false, nil, err
	}
	return root.Flags.IsRegular, root, nil
}

// findIrregularLeaf returns the first non-regular leaf found in n's subtree
// (depth-first, left to right), or nil if n is entirely regular. Most
// irregular leaves carry decomp.KindIrregular, but a core that matches F7 or
// F7* outright (decomp.KindF7/KindF7Star) is irregular too and is caught by
// the Flags.IsRegular check rather than a Kind comparison.
func findIrregularLeaf(n *decomp.Node) *decomp.Node {
	if n == nil {
		return nil
	}
	if n.IsLeaf() && !n.Flags.IsRegular {
		return n
	}
	for _, c := range n.Children {
		if leaf := findIrregularLeaf(c); leaf != nil {
			return leaf
		}
	}
	return nil
}

// irregularCertificate converts an irregular leaf's row/column labels
// (global indices into the matrix Decompose was originally called on)
// into a matrix.Submatrix certificate, per spec.md §4.7's "certificate on
// failure: a submatrix ... obtained ... from the irregular decomposition
// leaf."
func irregularCertificate(leaf *decomp.Node) *matrix.Submatrix {
	if leaf == nil {
		return nil
	}
	rows := make([]int, len(leaf.RowLabels))
	for i, e := range leaf.RowLabels {
		rows[i] = e.Index()
	}
	cols := make([]int, len(leaf.ColLabels))
	for i, e := range leaf.ColLabels {
		cols[i] = e.Index()
	}
	sort.Ints(rows)
	sort.Ints(cols)
	return &matrix.Submatrix{Rows: rows, Cols: cols}
}
