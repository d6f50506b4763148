// SPDX-License-Identifier: MIT
// Package: meshpath/builder
//
// validators.go — parameter checks shared by constructors.

package builder

import (
	"fmt"
	"math"
)

// validateMin ensures got ≥ minimum, wrapping ErrTooFewVertices otherwise.
func validateMin(method, name string, got, minimum int) error {
	if got < minimum {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, minimum, ErrTooFewVertices)
	}
	return nil
}

// validatePositive ensures v is finite and > 0, wrapping ErrInvalidParameter otherwise.
func validatePositive(method, name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %s=%g must be > 0: %w", method, name, v, ErrInvalidParameter)
	}
	return nil
}
