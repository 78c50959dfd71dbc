package seriespar

import (
	"github.com/gomatroid/cmr/element"
	"github.com/gomatroid/cmr/matrix"
)

// state holds the reducer's working view of m: which rows/columns are
// still active and a fingerprint table, rebuilt from scratch after every
// reduction, used to find parallel/anti-parallel collisions.
type state struct {
	m    *matrix.Matrix
	mode Mode

	rowAlive []bool
	colAlive []bool

	// fingerprint buckets map a hash to the row/column indices (encoded as
	// element.Element) currently sharing it, re-verified entry-by-entry
	// before a collision is accepted (spec.md §4.3).
	buckets map[uint64][]element.Element
}

func newState(m *matrix.Matrix, mode Mode) *state {
	s := &state{
		m:        m,
		mode:     mode,
		rowAlive: make([]bool, m.Rows()),
		colAlive: make([]bool, m.Cols()),
		buckets:  make(map[uint64][]element.Element),
	}
	for i := range s.rowAlive {
		s.rowAlive[i] = true
	}
	for j := range s.colAlive {
		s.colAlive[j] = true
	}
	for i := 0; i < m.Rows(); i++ {
		s.index(element.Row(i))
	}
	for j := 0; j < m.Cols(); j++ {
		s.index(element.Column(j))
	}
	return s
}

// rowSupport returns the active column indices with a nonzero entry in row
// r, and the matching entry values (returned in both modes; Binary-mode
// fingerprints ignore them).
func (s *state) rowSupport(r int) (cols []int, signs []int64) {
	start, end, _ := s.m.RowRange(r)
	dense := s.m.Dense()
	for c := 0; c < s.m.Cols(); c++ {
		if !s.colAlive[c] {
			continue
		}
		v := dense[r][c]
		if v == 0 {
			continue
		}
		cols = append(cols, c)
		signs = append(signs, v)
	}
	_ = start
	_ = end
	return cols, signs
}

func (s *state) colSupport(c int) (rows []int, signs []int64) {
	dense := s.m.Dense()
	for r := 0; r < s.m.Rows(); r++ {
		if !s.rowAlive[r] {
			continue
		}
		v := dense[r][c]
		if v == 0 {
			continue
		}
		rows = append(rows, r)
		signs = append(signs, v)
	}
	return rows, signs
}

func (s *state) support(e element.Element) (idx []int, signs []int64) {
	if e.IsRow() {
		return s.rowSupport(e.Index())
	}
	return s.colSupport(e.Index())
}

// index computes e's current fingerprint and files it into buckets.
func (s *state) index(e element.Element) {
	idx, signs := s.support(e)
	if len(idx) == 0 {
		return // zero elements are handled by the zero-scan, not fingerprinted
	}
	h := fingerprint(idx, signs, s.mode)
	s.buckets[h] = append(s.buckets[h], e)
}

// deactivate marks e inactive and removes every stale bucket entry for it.
func (s *state) deactivate(e element.Element) {
	if e.IsRow() {
		s.rowAlive[e.Index()] = false
	} else {
		s.colAlive[e.Index()] = false
	}
	for h, elems := range s.buckets {
		out := elems[:0]
		for _, x := range elems {
			if x != e {
				out = append(out, x)
			}
		}
		if len(out) == 0 {
			delete(s.buckets, h)
		} else {
			s.buckets[h] = out
		}
	}
}

// reindexAll discards the buckets and recomputes the fingerprint of every
// active row and column.
func (s *state) reindexAll() {
	s.buckets = make(map[uint64][]element.Element)
	for i := 0; i < s.m.Rows(); i++ {
		if s.rowAlive[i] {
			s.index(element.Row(i))
		}
	}
	for j := 0; j < s.m.Cols(); j++ {
		if s.colAlive[j] {
			s.index(element.Column(j))
		}
	}
}
