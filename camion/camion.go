// Package camion implements Camion sign checking and computation (C4): the
// even-cycle condition that makes a 0/±1 matrix's signed support matrix's
// regularity equivalent to the matrix's own total unimodularity.
package camion

import (
	"fmt"
	"sort"

	"github.com/gomatroid/cmr/cmrenv"
	"github.com/gomatroid/cmr/matrix"
)

func toBipartite(m *matrix.Matrix) *bipartiteGraph {
	dense := m.Dense()
	return buildBipartite(m.Rows(), m.Cols(), func(yield func(r, c int, v int64)) {
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				if dense[i][j] != 0 {
					yield(i, j, dense[i][j])
				}
			}
		}
	})
}

// CheckSigns reports whether m is already Camion-signed. If not, it
// returns the minimal submatrix (two nonzeros per row and column, entry
// sum ≡ 2 mod 4) certifying the violation — the fundamental cycle, in the
// bipartite entry graph, of the first non-tree edge whose cycle sum fails.
// Complexity: O(rows*cols) to build the spanning forest plus O(nnz) per
// fundamental-cycle walk.
func CheckSigns(env *cmrenv.Env, m *matrix.Matrix) (bool, *matrix.Submatrix, error) {
	if !matrix.IsTernary(m) {
		return false, nil, fmt.Errorf("CheckSigns: %w", ErrNotSigned)
	}
	b := toBipartite(m)
	forest, extra := b.buildForest()
	for _, e := range extra {
		env.BumpCamionCycles(1)
		cycle := b.fundamentalCycle(forest, e)
		if sum := cycleSignSum(b, cycle); sum%4 != 0 {
			sub := cycleSubmatrix(b, cycle)
			return false, &sub, nil
		}
	}
	return true, nil, nil
}

// ComputeSigns rewrites m's signs, leaving its support unchanged. It only
// scales each row and column by ±1 so that every spanning-tree edge of the
// bipartite entry graph carries a +1 entry. Scaling a row or column flips
// two entries of every cycle through it, so cycle sums mod 4 are unchanged:
// the result is Camion-signed exactly when m is, and a matrix that fails
// CheckSigns still fails it afterwards.
func ComputeSigns(m *matrix.Matrix) (*matrix.Matrix, error) {
	if !matrix.IsTernary(m) {
		return nil, fmt.Errorf("ComputeSigns: %w", ErrNotSigned)
	}
	b := toBipartite(m)
	forest, _ := b.buildForest()

	rowSign := make([]int64, m.Rows())
	colSign := make([]int64, m.Cols())
	assigned := make([]bool, m.Rows()+m.Cols())
	potential := func(node int) int64 {
		if b.isRowNode(node) {
			return rowSign[b.nodeIndex(node)]
		}
		return colSign[b.nodeIndex(node)]
	}
	setPotential := func(node int, v int64) {
		if b.isRowNode(node) {
			rowSign[b.nodeIndex(node)] = v
		} else {
			colSign[b.nodeIndex(node)] = v
		}
		assigned[node] = true
	}

	n := m.Rows() + m.Cols()
	for root := 0; root < n; root++ {
		if forest.parent[root] != -1 || assigned[root] {
			continue
		}
		setPotential(root, 1)
	}
	// Process nodes in BFS order (increasing depth) so every parent has a
	// potential assigned before its children are visited.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return forest.depth[order[i]] < forest.depth[order[j]] })
	for _, node := range order {
		if assigned[node] {
			continue
		}
		p := forest.parent[node]
		if p == -1 {
			setPotential(node, 1)
			continue
		}
		edgeVal := b.edges[forest.viaE[node]].val
		setPotential(node, potential(p)*edgeVal)
	}

	dense := m.Dense()
	out := make([][]int64, m.Rows())
	for i := range out {
		out[i] = make([]int64, m.Cols())
		for j := range out[i] {
			if dense[i][j] == 0 {
				continue
			}
			out[i][j] = rowSign[i] * colSign[j] * dense[i][j]
		}
	}
	return matrix.FromDense(out, m.Width())
}

func cycleSignSum(b *bipartiteGraph, cycle []int) int64 {
	var sum int64
	for _, e := range cycle {
		sum += b.edges[e].val
	}
	return sum
}

func cycleSubmatrix(b *bipartiteGraph, cycle []int) matrix.Submatrix {
	rowSet := map[int]bool{}
	colSet := map[int]bool{}
	for _, e := range cycle {
		rowSet[b.edges[e].row] = true
		colSet[b.edges[e].col] = true
	}
	var rows, cols []int
	for r := range rowSet {
		rows = append(rows, r)
	}
	for c := range colSet {
		cols = append(cols, c)
	}
	sort.Ints(rows)
	sort.Ints(cols)
	return matrix.Submatrix{Rows: rows, Cols: cols}
}
