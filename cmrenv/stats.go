package cmrenv

// Stats holds per-call counters for a single recognition call. Callers pass
// a *Stats into Env (New allocates one; an Env with nil Stats records
// nothing), matching
// spec.md §5: "Statistics counters are per-call and passed by caller."
// Stats is not safe for concurrent use; each Env owns exactly one.
type Stats struct {
	// SPReductionsApplied counts series–parallel reductions applied (seriespar).
	SPReductionsApplied int
	// SPScanPasses counts full scan passes performed by the reducer.
	SPScanPasses int
	// DecompositionNodes counts decomposition-tree nodes created (decomp).
	DecompositionNodes int
	// SeparationsFound counts 1-/2-/3-separations discovered.
	SeparationsFound int
	// ColumnsAdded counts columns processed by the t-decomposition (tdec).
	ColumnsAdded int
	// PrimeRebuilds is carried for callers' use; nothing in this module calls
	// BumpPrimeRebuilds, so it stays zero.
	PrimeRebuilds int
	// PivotsPerformed counts binary/ternary pivots applied (matrix).
	PivotsPerformed int
	// CamionCyclesWalked counts fundamental cycles walked during sign checking.
	CamionCyclesWalked int
	// SubmatricesEnumerated counts submatrices pulled from a combin.Generator
	// during F7/F7* search, CTU enumeration, or k-modular basis enumeration.
	SubmatricesEnumerated int
}

// Add accumulates other's counters into s. Useful when a subroutine runs
// with its own scratch Stats and the caller folds the result in afterward.
func (s *Stats) Add(other *Stats) {
	if s == nil || other == nil {
		return
	}
	s.SPReductionsApplied += other.SPReductionsApplied
	s.SPScanPasses += other.SPScanPasses
	s.DecompositionNodes += other.DecompositionNodes
	s.SeparationsFound += other.SeparationsFound
	s.ColumnsAdded += other.ColumnsAdded
	s.PrimeRebuilds += other.PrimeRebuilds
	s.PivotsPerformed += other.PivotsPerformed
	s.CamionCyclesWalked += other.CamionCyclesWalked
	s.SubmatricesEnumerated += other.SubmatricesEnumerated
}
