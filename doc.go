// Package cmr recognizes structural properties of integer matrices drawn
// from combinatorial matrix theory: total unimodularity, regularity of the
// binary matroid represented by a 0/1 matrix, (co)graphicness, series–parallel
// reducibility, k-modularity/equimodularity/unimodularity, Camion signing, and
// membership in named matroid families (R10, K5, K3,3, Fano, Fano-dual; R12
// is constructed but not recognized).
//
// The module is organized as:
//
//	element/    — signed row/column/edge labels shared across packages
//	matrix/     — sparse integer matrix primitives, pivoting, determinant
//	multigraph/ — free-list-backed undirected multigraph
//	seriespar/  — series–parallel reduction (binary and ternary)
//	camion/     — Camion sign consistency test and signing
//	tdec/       — incremental t-decomposition / graphicness recognizer
//	decomp/     — Seymour 1-/2-/3-sum matroid decomposition engine
//	property/   — TU, regularity, k-modular, CTU, and named-matroid drivers
//	cmrenv/     — environment handle: errors, stats, parameters
//	linalg/     — dense integer linear-algebra adapter (determinant, Smith form)
//	format/     — dense/sparse/edge-list text I/O
//
// For the canonical call tuTest(M), the control flow is:
//
//	support(M) → seriespar.Reduce → decomp.Decompose → leaf recognition → camion.CheckSigns(M)
//
// See SPEC_FULL.md and DESIGN.md at the module root for the full
// specification and grounding notes.
package cmr
