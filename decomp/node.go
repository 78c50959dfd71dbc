package decomp

import (
	"fmt"

	"github.com/gomatroid/cmr/element"
	"github.com/gomatroid/cmr/matrix"
	"github.com/gomatroid/cmr/multigraph"
	"github.com/gomatroid/cmr/seriespar"
)

// Kind names a decomposition node's role in the tree (spec.md §3's
// "Decomposition node" glossary entry).
type Kind int

const (
	KindUnknown Kind = iota
	KindIrregular
	KindOneSum
	KindTwoSum
	KindThreeSum
	KindGraphic
	KindCographic
	KindPlanar
	KindSeriesParallel
	KindR10
	KindF7
	KindF7Star
	KindK5
	KindK5Star
	KindK33
	KindK33Star
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindIrregular:
		return "irregular"
	case KindOneSum:
		return "1-sum"
	case KindTwoSum:
		return "2-sum"
	case KindThreeSum:
		return "3-sum"
	case KindGraphic:
		return "graphic"
	case KindCographic:
		return "cographic"
	case KindPlanar:
		return "planar"
	case KindSeriesParallel:
		return "series-parallel"
	case KindR10:
		return "R10"
	case KindF7:
		return "F7"
	case KindF7Star:
		return "F7*"
	case KindK5:
		return "M(K5)"
	case KindK5Star:
		return "M(K5)*"
	case KindK33:
		return "M(K3,3)"
	case KindK33Star:
		return "M(K3,3)*"
	default:
		return "unknown"
	}
}

// Flags mirror spec.md §3's "Decomposition node" per-node flags, which
// must stay consistent with children's flags under Seymour-sum composition.
type Flags struct {
	IsGraphic             bool
	IsCographic           bool
	IsRegular             bool
	HasLowerLeftNonzeros  bool
	HasUpperRightNonzeros bool
}

// Node is one node of a Seymour decomposition tree. A leaf (no Children)
// carries a terminal Kind (graphic, cographic, planar, series-parallel, or
// a named matroid) and, where applicable, the witnessing structure
// (Graph/RowEdge/ColEdge for a graphic or cographic leaf, Reductions for a
// series-parallel leaf, RepresentativeIndex for a named leaf). A sum node
// (KindOneSum/TwoSum/ThreeSum) carries Children and, for 2-sum/3-sum, the
// Separation that produced them.
type Node struct {
	Kind Kind

	Matrix    *matrix.Matrix
	RowLabels []element.Element // RowLabels[i] names Matrix row i in the root matrix
	ColLabels []element.Element

	Flags Flags

	Children   []*Node
	Separation *matrix.Separation

	Reductions []seriespar.Reduction

	Graph               *multigraph.Graph
	RowEdge, ColEdge    map[int]int
	RepresentativeIndex int

	// WitnessKind and Witness certify an irregular leaf with a forbidden
	// minor, per spec.md §4.6's "a proof of irregularity in the form of an
	// F7 or F7* minor": WitnessKind is KindF7 or KindF7Star, and Witness
	// names the rows/columns of Matrix (in Matrix's own index space) whose
	// submatrix realizes that minor. Both are left zero/nil when the
	// bounded search recognizeLeaf runs exhausts its candidates without a
	// match (see DESIGN.md's decomp entry).
	WitnessKind Kind
	Witness     *matrix.Submatrix
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Consistency audits the invariants spec.md §3 lists for a decomposition
// node: a leaf has no children; a k-sum node has exactly two children for
// k in {2,3} and at least two for k=1; row/column label counts match the
// matrix's dimensions.
func (n *Node) Consistency() error {
	if n.Matrix != nil {
		if len(n.RowLabels) != n.Matrix.Rows() {
			return fmt.Errorf("decomp: Consistency: %d row labels for %d rows", len(n.RowLabels), n.Matrix.Rows())
		}
		if len(n.ColLabels) != n.Matrix.Cols() {
			return fmt.Errorf("decomp: Consistency: %d column labels for %d columns", len(n.ColLabels), n.Matrix.Cols())
		}
	}
	switch n.Kind {
	case KindOneSum:
		if len(n.Children) < 2 {
			return fmt.Errorf("decomp: Consistency: 1-sum node has %d children, want >= 2", len(n.Children))
		}
	case KindTwoSum, KindThreeSum:
		if len(n.Children) != 2 {
			return fmt.Errorf("decomp: Consistency: %s node has %d children, want 2", n.Kind, len(n.Children))
		}
	default:
		if len(n.Children) != 0 {
			return fmt.Errorf("decomp: Consistency: leaf kind %s has %d children", n.Kind, len(n.Children))
		}
	}
	if n.WitnessKind != KindUnknown && n.Kind != KindIrregular {
		return fmt.Errorf("decomp: Consistency: witness kind %s set on non-irregular leaf %s", n.WitnessKind, n.Kind)
	}
	if n.Witness != nil && n.WitnessKind == KindUnknown {
		return fmt.Errorf("decomp: Consistency: witness submatrix set without a witness kind")
	}
	for _, c := range n.Children {
		if err := c.Consistency(); err != nil {
			return err
		}
	}
	return nil
}
