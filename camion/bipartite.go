package camion

import "github.com/gomatroid/cmr/multigraph"

// edgeMeta records, for each edge of the bipartite entry graph, which
// matrix entry (row, col, signed value) it represents.
type edgeMeta struct {
	row, col int
	val      int64
}

// bipartiteGraph is the rows-⊔-columns incidence graph of a 0/±1 matrix
// (spec.md §4.4: "Interpret M as a bipartite graph on rows ⊔ columns with
// an edge per nonzero, colored by entry sign"), built on the multigraph
// package's free-list slab graph (C2) rather than a bespoke adjacency
// structure.
type bipartiteGraph struct {
	g      *multigraph.Graph
	rows   int
	cols   int
	edges  []edgeMeta // indexed by multigraph edge id
	rowNod []int      // rowNod[r] is the multigraph node id for row r
	colNod []int      // colNod[c] is the multigraph node id for column c
}

// isRowNode/nodeIndex translate a multigraph node id back to (isRow, index).
func (b *bipartiteGraph) isRowNode(node int) bool { return node < b.rows }

func (b *bipartiteGraph) nodeIndex(node int) int {
	if node < b.rows {
		return node
	}
	return node - b.rows
}

func buildBipartite(rows, cols int, entries func(yield func(r, c int, v int64))) *bipartiteGraph {
	b := &bipartiteGraph{g: multigraph.New(), rows: rows, cols: cols}
	b.rowNod = make([]int, rows)
	b.colNod = make([]int, cols)
	for r := 0; r < rows; r++ {
		b.rowNod[r] = b.g.AddNode()
	}
	for c := 0; c < cols; c++ {
		b.colNod[c] = b.g.AddNode()
	}
	entries(func(r, c int, v int64) {
		e, _ := b.g.AddEdge(b.rowNod[r], b.colNod[c])
		for len(b.edges) <= e {
			b.edges = append(b.edges, edgeMeta{})
		}
		b.edges[e] = edgeMeta{row: r, col: c, val: v}
	})
	return b
}

// spanningForest records, for every node reached from a BFS root, its
// parent node, the edge id connecting it to that parent, and its depth.
// Nodes not visited (isolated, or in another component) have parent -1.
type spanningForest struct {
	parent []int
	viaE   []int
	depth  []int
}

// buildForest runs a BFS spanning forest over b and returns it along with
// the list of non-tree ("extra") edges discovered.
func (b *bipartiteGraph) buildForest() (*spanningForest, []int) {
	n := b.rows + b.cols
	f := &spanningForest{
		parent: make([]int, n),
		viaE:   make([]int, n),
		depth:  make([]int, n),
	}
	visited := make([]bool, n)
	for i := range f.parent {
		f.parent[i] = -1
		f.viaE[i] = -1
	}
	var extra []int
	seenEdge := make([]bool, len(b.edges))

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue := []int{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			_ = b.g.Incident(u, func(edge, other int) {
				if seenEdge[edge] {
					return
				}
				seenEdge[edge] = true
				if !visited[other] {
					visited[other] = true
					f.parent[other] = u
					f.viaE[other] = edge
					f.depth[other] = f.depth[u] + 1
					queue = append(queue, other)
				} else {
					extra = append(extra, edge)
				}
			})
		}
	}
	return f, extra
}

// fundamentalCycle returns the tree edges on the path between the two
// endpoints of extraEdge, plus extraEdge itself: the cycle it closes.
func (b *bipartiteGraph) fundamentalCycle(f *spanningForest, extraEdge int) []int {
	m := b.edges[extraEdge]
	u := b.rowNod[m.row]
	v := b.colNod[m.col]
	// Walk both paths up until they meet at their lowest common ancestor.
	du, dv := f.depth[u], f.depth[v]
	uu, vv := u, v
	for du > dv {
		uu = f.parent[uu]
		du--
	}
	for dv > du {
		vv = f.parent[vv]
		dv--
	}
	for uu != vv {
		uu = f.parent[uu]
		vv = f.parent[vv]
	}
	lca := uu
	var cycle []int
	for node := u; node != lca; node = f.parent[node] {
		cycle = append(cycle, f.viaE[node])
	}
	for node := v; node != lca; node = f.parent[node] {
		cycle = append(cycle, f.viaE[node])
	}
	cycle = append(cycle, extraEdge)
	return cycle
}
