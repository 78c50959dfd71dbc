package camion

import "errors"

// ErrNotSigned indicates the input was not a 0/±1 matrix, the structural
// precondition for every camion operation (spec.md §4.4's "structure error
// if M is not 0/±1").
var ErrNotSigned = errors.New("camion: matrix is not 0/±1 signed")
