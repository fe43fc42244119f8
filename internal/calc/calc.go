// Package calc holds shared error values for the calculator packages.
package calc

import "errors"

// ErrInvalidInput is returned when a required numeric field is missing,
// non-positive, or otherwise out of range. Calculators reject bad input
// instead of producing NaN or negative quantities.
var ErrInvalidInput = errors.New("invalid input")
