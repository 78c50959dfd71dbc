// SPDX-License-Identifier: MIT
package format

import "errors"

// ErrBadFormat indicates malformed input: a missing header, a field count
// mismatch, or an unparsable integer, per spec.md §6's three text grammars.
var ErrBadFormat = errors.New("format: malformed input")
