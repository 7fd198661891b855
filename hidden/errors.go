// SPDX-License-Identifier: MIT

package hidden

import "errors"

// ErrInvalidConfiguration indicates a scheduler or labeling setup that cannot
// run: negative dwell, a hidden matrix that is not 2×2, an invalid state, or
// an unknown/duplicate label.
var ErrInvalidConfiguration = errors.New("hidden: invalid configuration")
