// SPDX-License-Identifier: MIT

package zeros

import "errors"

var (
	// ErrNilProvider is returned when a Finder is built without a provider.
	ErrNilProvider = errors.New("zeros: nil provider")

	// ErrBadSide is returned for a side other than lfunc.Primal or lfunc.Dual.
	ErrBadSide = errors.New("zeros: invalid side")
)
