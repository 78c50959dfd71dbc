package property

import (
	"fmt"

	"github.com/gomatroid/cmr/cmrenv"
	"github.com/gomatroid/cmr/matrix"
	"github.com/gomatroid/cmr/named"
)

// NamedMatch reports which named matroid m (or a signed variant of it)
// represents, per spec.md §4.7's named-matroid recognition driver: I_n,
// R10, R12, K5, K3,3, F7, then the duals of K5, K3,3 and F7, tried in that
// order. Name is "" and
// Index is 0 if none match. R12 is attempted but, since named.IsR12Matrix
// is itself unimplemented (see named's own doc comment), never
// contributes a match; its error is swallowed rather than propagated so a
// caller still gets a definitive answer for the matroids that are
// implemented. F7's index is always 1 when it matches: unlike R10/K5/K33,
// named.IsF7Matrix has only the one representative and takes no env
// (it does not gate on a Camion sign check, since F7 is irregular).
func NamedMatch(env *cmrenv.Env, m *matrix.Matrix) (string, int, error) {
	if idx := named.IsIdentityMatrix(m); idx != 0 {
		return "I", idx, nil
	}
	if idx, err := named.IsR10Matrix(env, m); err != nil {
		return "", 0, err
	} else if idx != 0 {
		return "R10", idx, nil
	}
	if idx, _ := named.IsR12Matrix(env, m); idx != 0 {
		return "R12", idx, nil
	}
	if idx, err := named.IsK5Matrix(env, m); err != nil {
		return "", 0, err
	} else if idx != 0 {
		return "K5", idx, nil
	}
	if idx, err := named.IsK33Matrix(env, m); err != nil {
		return "", 0, err
	} else if idx != 0 {
		return "K3,3", idx, nil
	}
	if named.IsF7Matrix(m) {
		return "F7", 1, nil
	}

	mt, err := matrix.Transpose(m)
	if err != nil {
		return "", 0, fmt.Errorf("property: NamedMatch: %w", err)
	}
	if idx, err := named.IsK5Matrix(env, mt); err != nil {
		return "", 0, err
	} else if idx != 0 {
		return "K5*", idx, nil
	}
	if idx, err := named.IsK33Matrix(env, mt); err != nil {
		return "", 0, err
	} else if idx != 0 {
		return "K3,3*", idx, nil
	}
	if named.IsF7Matrix(mt) {
		return "F7*", 1, nil
	}
	return "", 0, nil
}
