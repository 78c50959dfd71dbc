package property

import (
	"github.com/gomatroid/cmr/camion"
	"github.com/gomatroid/cmr/cmrenv"
	"github.com/gomatroid/cmr/matrix"
)

// BalancedCheck reports whether m (a 0/±1 matrix) is balanced: every
// square submatrix with exactly two nonzeros per row and per column has
// entry-sum divisible by 4. This is exactly the cycle-sum-mod-4 condition
// camion.CheckSigns already walks over the bipartite entry graph's
// fundamental cycles (grounded on original_source's balanced.h/
// balanced_main.c, which spec.md §4.4 describes the identical test for);
// a non-balanced matrix's violating submatrix is the same fundamental
// cycle CheckSigns returns.
func BalancedCheck(env *cmrenv.Env, m *matrix.Matrix) (bool, *matrix.Submatrix, error) {
	return camion.CheckSigns(env, m)
}
