// Package catalog holds the static reference tables the calculators are
// priced and sized against: bulk material densities, paver and tile sizes,
// laying patterns, border courses, project labor rates and add-on services.
// The tables are fixed at compile time; there is no mutation path.
package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned by every lookup when the requested key is not
// in the table.
var ErrUnknownKey = errors.New("unknown key")

func unknown(kind, key string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownKey, kind, key)
}
