// SPDX-License-Identifier: MIT

package ball

import "errors"

var (
	// ErrSyntax is returned by Parse for strings that are not a ball literal.
	ErrSyntax = errors.New("ball: invalid ball literal")

	// ErrNegativeRadius is returned by Parse when the radius part is negative.
	ErrNegativeRadius = errors.New("ball: negative radius")
)
