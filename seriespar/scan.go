package seriespar

import (
	"sort"

	"github.com/gomatroid/cmr/element"
)

// noMate is the zero Element, used as Reduction.Mate for a zero-row/column
// reduction (spec.md §3: "mate = 0" means the removed element was zero).
var noMate element.Element

// scanOnce performs one reduction, in the priority order spec.md §4.3
// implies (zero, then unit, then parallel/anti-parallel collisions),
// scanning rows before columns and lowest index first within each class
// for a deterministic reduction list. Returns ok=false when no reduction
// applies: the matrix core is fully SP-reduced.
func (s *state) scanOnce() (Reduction, bool) {
	if red, ok := s.scanZero(); ok {
		s.deactivate(red.Element)
		s.reindexAll()
		return red, true
	}
	if red, ok := s.scanUnit(); ok {
		s.deactivate(red.Element)
		s.reindexAll()
		return red, true
	}
	if red, ok := s.scanCollision(); ok {
		s.deactivate(red.Element)
		s.reindexAll()
		return red, true
	}
	return Reduction{}, false
}

func (s *state) scanZero() (Reduction, bool) {
	for r := 0; r < s.m.Rows(); r++ {
		if !s.rowAlive[r] {
			continue
		}
		if idx, _ := s.rowSupport(r); len(idx) == 0 {
			return Reduction{Element: element.Row(r), Mate: noMate, Kind: KindZero}, true
		}
	}
	for c := 0; c < s.m.Cols(); c++ {
		if !s.colAlive[c] {
			continue
		}
		if idx, _ := s.colSupport(c); len(idx) == 0 {
			return Reduction{Element: element.Column(c), Mate: noMate, Kind: KindZero}, true
		}
	}
	return Reduction{}, false
}

func (s *state) scanUnit() (Reduction, bool) {
	for r := 0; r < s.m.Rows(); r++ {
		if !s.rowAlive[r] {
			continue
		}
		if idx, _ := s.rowSupport(r); len(idx) == 1 {
			return Reduction{Element: element.Row(r), Mate: element.Column(idx[0]), Kind: KindUnit}, true
		}
	}
	for c := 0; c < s.m.Cols(); c++ {
		if !s.colAlive[c] {
			continue
		}
		if idx, _ := s.colSupport(c); len(idx) == 1 {
			return Reduction{Element: element.Column(c), Mate: element.Row(idx[0]), Kind: KindUnit}, true
		}
	}
	return Reduction{}, false
}

func (s *state) scanCollision() (Reduction, bool) {
	keys := make([]uint64, 0, len(s.buckets))
	for h := range s.buckets {
		keys = append(keys, h)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, h := range keys {
		elems := append([]element.Element(nil), s.buckets[h]...)
		sort.Slice(elems, func(i, j int) bool { return elems[i] < elems[j] })
		rows := filterKind(elems, true)
		cols := filterKind(elems, false)
		if red, ok := s.verifyCollision(rows); ok {
			return red, true
		}
		if red, ok := s.verifyCollision(cols); ok {
			return red, true
		}
	}
	return Reduction{}, false
}

func filterKind(elems []element.Element, row bool) []element.Element {
	var out []element.Element
	for _, e := range elems {
		if e.IsRow() == row {
			out = append(out, e)
		}
	}
	return out
}

// verifyCollision checks every pair in a same-kind hash bucket for a
// genuine (entry-by-entry verified) parallel or anti-parallel match,
// ruling out accidental fingerprint collisions.
func (s *state) verifyCollision(elems []element.Element) (Reduction, bool) {
	for i := 0; i < len(elems); i++ {
		for j := i + 1; j < len(elems); j++ {
			if kind, ok := s.compare(elems[i], elems[j]); ok {
				return Reduction{Element: elems[j], Mate: elems[i], Kind: kind}, true
			}
		}
	}
	return Reduction{}, false
}

// compare reports whether a and b (same kind) are parallel or
// anti-parallel by comparing their supports entry-by-entry.
func (s *state) compare(a, b element.Element) (ReductionKind, bool) {
	idxA, signsA := s.support(a)
	idxB, signsB := s.support(b)
	if len(idxA) != len(idxB) || len(idxA) == 0 {
		return 0, false
	}
	for k := range idxA {
		if idxA[k] != idxB[k] {
			return 0, false
		}
	}
	if s.mode == Binary {
		return KindParallel, true
	}
	same := true
	for k := range signsA {
		if signsA[k] != signsB[k] {
			same = false
			break
		}
	}
	if same {
		return KindParallel, true
	}
	opposite := true
	for k := range signsA {
		if signsA[k] != -signsB[k] {
			opposite = false
			break
		}
	}
	if opposite {
		return KindAntiParallel, true
	}
	return 0, false
}
