package property

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/gomatroid/cmr/cmrenv"
	"github.com/gomatroid/cmr/linalg"
	"github.com/gomatroid/cmr/matrix"
)

// Rank returns the rank of m: the count of nonzero elementary divisors of
// its Smith normal form (linalg.ElementaryDivisors).
func Rank(m *matrix.Matrix) (int, error) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return 0, ErrEmptyMatrix
	}
	divs, err := linalg.ElementaryDivisors(m.Dense())
	if err != nil {
		return 0, fmt.Errorf("property: Rank: %w", err)
	}
	r := 0
	for _, d := range divs {
		if d != 0 {
			r++
		}
	}
	return r, nil
}

// Modulus computes the gcd of |det B| over every full-rank r x r
// submatrix B of m, r = Rank(m), per spec.md §4.7: "compute the gcd k of
// all full-rank r x r subdeterminants where r = rank(M)". Every such
// minor is checked (the driver's contract is combinatorial, not
// performance-tuned); a zero-rank matrix is trivially 1-modular.
//
// Complexity: O(C(rows,r) * C(cols,r)) determinant evaluations of r x r
// matrices, each O(r^3) via linalg.Determinant.
func Modulus(ctx context.Context, env *cmrenv.Env, m *matrix.Matrix) (int64, error) {
	r, err := Rank(m)
	if err != nil {
		return 0, err
	}
	if r == 0 {
		return 1, nil
	}
	var g int64
	for _, rows := range combinations(m.Rows(), r) {
		for _, cols := range combinations(m.Cols(), r) {
			if err := cmrenv.Deadline(ctx, "property.Modulus"); err != nil {
				return 0, err
			}
			env.BumpSubmatricesEnumerated(1)
			sub, err := matrix.Zoom(m, matrix.Submatrix{Rows: rows, Cols: cols})
			if err != nil {
				return 0, fmt.Errorf("property: Modulus: %w", err)
			}
			d, err := linalg.Determinant(sub.Dense())
			if err != nil {
				return 0, fmt.Errorf("property: Modulus: %w", err)
			}
			if d == 0 {
				continue
			}
			g = gcd64(g, abs64(d))
		}
	}
	return g, nil
}

// IsKModular reports whether m is k-modular: Modulus(m) == k.
func IsKModular(ctx context.Context, env *cmrenv.Env, m *matrix.Matrix, k int64) (bool, error) {
	g, err := Modulus(ctx, env, m)
	if err != nil {
		return false, err
	}
	return g == k, nil
}

// IsUnimodular reports whether m is unimodular, the k = 1 case of
// IsKModular (spec.md §4.7).
func IsUnimodular(ctx context.Context, env *cmrenv.Env, m *matrix.Matrix) (bool, error) {
	return IsKModular(ctx, env, m, 1)
}

// IsEquimodular reports whether m is equimodular for determinant gcd k.
// If k <= 0, k is discovered (set to Modulus(m)) and the call always
// reports true, mirroring the original source's CMRtestEquimodularity
// discovery mode (equimodular.h: "*pgcdDet positive tests only for that
// k; otherwise pgcdDet is set to the discovered k"). This package exposes
// discovery as IsEquimodular returning the discovered k alongside the
// bool, rather than mutating a caller-owned pointer.
func IsEquimodular(ctx context.Context, env *cmrenv.Env, m *matrix.Matrix, k int64) (bool, int64, error) {
	g, err := Modulus(ctx, env, m)
	if err != nil {
		return false, 0, err
	}
	if k <= 0 {
		return true, g, nil
	}
	return g == k, g, nil
}

// IsStronglyKModular reports whether m is k-modular in both itself and its
// transpose (spec.md §4.7: "'Strong' means the same holds for M^T").
func IsStronglyKModular(ctx context.Context, env *cmrenv.Env, m *matrix.Matrix, k int64) (bool, error) {
	ok, err := IsKModular(ctx, env, m, k)
	if err != nil || !ok {
		return false, err
	}
	mt, err := matrix.Transpose(m)
	if err != nil {
		return false, fmt.Errorf("property: IsStronglyKModular: %w", err)
	}
	return IsKModular(ctx, env, mt, k)
}

// IsStronglyUnimodular is the k = 1 case of IsStronglyKModular.
func IsStronglyUnimodular(ctx context.Context, env *cmrenv.Env, m *matrix.Matrix) (bool, error) {
	return IsStronglyKModular(ctx, env, m, 1)
}

// combinations returns every r-element subset of {0, ..., n-1}, each as a
// sorted slice, in lexicographic order, via gonum's
// combin.CombinationGenerator (SPEC_FULL.md §4's "restartable lazy
// enumeration" collaborator) rather than a hand-rolled index-advance loop.
func combinations(n, r int) [][]int {
	if r < 0 || r > n {
		return nil
	}
	if r == 0 {
		return [][]int{{}}
	}
	gen := combin.NewCombinationGenerator(n, r)
	var out [][]int
	for gen.Next() {
		out = append(out, gen.Combination(nil))
	}
	return out
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
