// SPDX-License-Identifier: MIT

package store

import "errors"

var (
	// ErrNotFound is returned for an unknown run id.
	ErrNotFound = errors.New("store: run not found")

	// ErrNilReport is returned by Save for a nil report.
	ErrNilReport = errors.New("store: nil report")
)
