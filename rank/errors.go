// SPDX-License-Identifier: MIT

package rank

import "errors"

// ErrDerivativeOrder indicates a derivative order above the context's MAX_L.
var ErrDerivativeOrder = errors.New("rank: derivative order exceeds maximum")
