// SPDX-License-Identifier: MIT

package stock

import "errors"

var (
	// ErrEmptyTicker indicates a record whose Ticker is the empty string.
	ErrEmptyTicker = errors.New("stock: empty ticker")

	// ErrBadSize indicates an invalid series length or an empty ticker list.
	ErrBadSize = errors.New("stock: invalid size")

	// ErrDecode indicates a malformed JSON document or date value.
	ErrDecode = errors.New("stock: decode failed")
)
