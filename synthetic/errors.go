// SPDX-License-Identifier: MIT

package synthetic

import "errors"

// ErrUnknownKind is returned by Lookup for an unregistered name.
var ErrUnknownKind = errors.New("synthetic: unknown kind")
