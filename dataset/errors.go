// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrMissingField indicates a required field is absent or zero.
	ErrMissingField = errors.New("dataset: missing field")

	// ErrBadSample indicates a sample whose value cannot be parsed.
	ErrBadSample = errors.New("dataset: bad sample")
)
