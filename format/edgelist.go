package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gomatroid/cmr/element"
	"github.com/gomatroid/cmr/multigraph"
)

// EdgeLabel renders e using spec.md §6's edge-list convention: "r<k>" for
// row k or "c<k>" for column k, both 1-based. This differs from
// element.Element.String's 0-based debug rendering, which is for internal
// diagnostics rather than this external wire format.
func EdgeLabel(e element.Element) string {
	switch {
	case e.IsRow():
		return fmt.Sprintf("r%d", e.Index()+1)
	case e.IsColumn():
		return fmt.Sprintf("c%d", e.Index()+1)
	default:
		return ""
	}
}

// ParseEdgeLabel parses a label written by EdgeLabel. ok is false for an
// absent, empty, or unrecognized label; spec.md §6 says "unknown elements
// are permitted and ignored by the core", so callers should treat !ok as
// an unlabeled edge rather than an error.
func ParseEdgeLabel(s string) (e element.Element, ok bool) {
	if len(s) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 {
		return 0, false
	}
	switch s[0] {
	case 'r':
		return element.Row(n - 1), true
	case 'c':
		return element.Column(n - 1), true
	default:
		return 0, false
	}
}

// WriteEdgeList renders g as spec.md §6's edge-list graph format: one
// "u v [label]" line per edge. rowEdge and colEdge map a row/column index
// to the id of the multigraph.Graph edge realizing it (the convention
// decomp.Node.RowEdge/ColEdge already use for a graphic or cographic
// leaf); an edge in neither map is written with no label. nodeName names
// each node id; if nil, nodes are named "n<id>".
func WriteEdgeList(w io.Writer, g *multigraph.Graph, rowEdge, colEdge map[int]int, nodeName func(int) string) error {
	if nodeName == nil {
		nodeName = func(u int) string { return fmt.Sprintf("n%d", u) }
	}
	label := make(map[int]element.Element, len(rowEdge)+len(colEdge))
	for row, e := range rowEdge {
		label[e] = element.Row(row)
	}
	for col, e := range colEdge {
		label[e] = element.Column(col)
	}

	var werr error
	g.Edges(func(edge, u, v int) {
		if werr != nil {
			return
		}
		line := nodeName(u) + " " + nodeName(v)
		if e, ok := label[edge]; ok {
			line += " " + EdgeLabel(e)
		}
		_, werr = io.WriteString(w, line+"\n")
	})
	return werr
}

// ParseEdgeList reads spec.md §6's edge-list graph format, assigning each
// distinct node name an id in first-seen order. Labels recognized by
// ParseEdgeLabel populate the returned rowEdge/colEdge maps (row/column
// index to edge id); unrecognized or absent labels are silently dropped.
func ParseEdgeList(r io.Reader) (g *multigraph.Graph, rowEdge, colEdge map[int]int, err error) {
	g = multigraph.New()
	rowEdge = make(map[int]int)
	colEdge = make(map[int]int)
	ids := make(map[string]int)

	nodeID := func(name string) int {
		if id, ok := ids[name]; ok {
			return id
		}
		id := g.AddNode()
		ids[name] = id
		return id
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, nil, nil, fmt.Errorf("format: ParseEdgeList: %q: %w", line, ErrBadFormat)
		}
		u, v := nodeID(fields[0]), nodeID(fields[1])
		edge, err := g.AddEdge(u, v)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("format: ParseEdgeList: %w", err)
		}
		if len(fields) >= 3 {
			if e, ok := ParseEdgeLabel(fields[2]); ok {
				if e.IsRow() {
					rowEdge[e.Index()] = edge
				} else {
					colEdge[e.Index()] = edge
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, nil, err
	}
	return g, rowEdge, colEdge, nil
}
