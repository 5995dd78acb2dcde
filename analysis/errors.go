// SPDX-License-Identifier: MIT

package analysis

import "errors"

// ErrNilContext is returned for a Job without a context.
var ErrNilContext = errors.New("analysis: nil context")
