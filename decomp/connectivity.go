package decomp

import "github.com/gomatroid/cmr/matrix"

// block is one connected piece of the bipartite row/column incidence
// graph of a matrix's nonzero pattern.
type block struct {
	rows []int
	cols []int
}

// findOneSeparation partitions m's rows and columns into connected
// components of its nonzero bipartite incidence graph (row r and column c
// are joined whenever m[r][c] != 0). A single component means m has no
// 1-separation and blocks has length 1; more than one component means the
// corresponding block-diagonal 1-sum applies. An all-zero row or column
// forms its own singleton, zero-dimension-on-one-side block.
func findOneSeparation(m *matrix.Matrix) []block {
	rows, cols := m.Rows(), m.Cols()
	parent := make([]int, rows+cols)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	dense := m.Dense()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if dense[r][c] != 0 {
				union(r, rows+c)
			}
		}
	}

	groups := map[int]*block{}
	var order []int
	for r := 0; r < rows; r++ {
		root := find(r)
		g, ok := groups[root]
		if !ok {
			g = &block{}
			groups[root] = g
			order = append(order, root)
		}
		g.rows = append(g.rows, r)
	}
	for c := 0; c < cols; c++ {
		root := find(rows + c)
		g, ok := groups[root]
		if !ok {
			g = &block{}
			groups[root] = g
			order = append(order, root)
		}
		g.cols = append(g.cols, c)
	}

	out := make([]block, 0, len(order))
	for _, root := range order {
		out = append(out, *groups[root])
	}
	return out
}
