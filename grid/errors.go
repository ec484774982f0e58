// SPDX-License-Identifier: MIT
// Package: grid
//
// errors.go: sentinel errors for the grid package.
//
// Error policy:
//   • Construction misuse is a programming error: the method panics with an
//     error wrapping one of these sentinels, so recover()+errors.Is works.
//   • Check reports data inconsistencies as a returned error (ErrInconsistent).
//   • Every message is prefixed with "grid: ".

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch indicates a part operation incompatible with the attribute type.
	ErrTypeMismatch = errors.New("grid: attribute type mismatch")

	// ErrDuplicateAttribute indicates an attribute name already used in the grid.
	ErrDuplicateAttribute = errors.New("grid: duplicate attribute name")

	// ErrEmptyName indicates an attribute created with an empty name.
	ErrEmptyName = errors.New("grid: empty attribute name")

	// ErrCellsPresent indicates a structural change attempted while cells exist.
	ErrCellsPresent = errors.New("grid: grid already has cells")

	// ErrInvalidCell indicates a part tuple with the wrong arity or an unknown part index.
	ErrInvalidCell = errors.New("grid: invalid cell parts")

	// ErrDuplicateCell indicates a second cell for an existing part tuple.
	ErrDuplicateCell = errors.New("grid: duplicate cell")

	// ErrTargetIndex indicates a target value index outside the frequency vector.
	ErrTargetIndex = errors.New("grid: target index out of range")

	// ErrPartIndex indicates a part index outside the attribute arena.
	ErrPartIndex = errors.New("grid: part index out of range")

	// ErrInconsistent is returned by Check when an integrity rule is violated.
	ErrInconsistent = errors.New("grid: inconsistent data grid")
)

// panicf panics with an error wrapping sentinel, prefixed by the method name.
func panicf(method string, sentinel error, format string, args ...interface{}) {
	panic(fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel))
}

// inconsistentf builds a Check error wrapping ErrInconsistent.
func inconsistentf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInconsistent)
}
