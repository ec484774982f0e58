// SPDX-License-Identifier: MIT
// Package: manager
//
// errors.go: sentinel errors and the CheckError result type.
//
// Error policy:
//   • Precondition sentinels are carried by panics (programming errors).
//   • ErrTooFewAttributes is returned by the cross-product builders.
//   • Check sentinels are carried by *CheckError values.

package manager

import (
	"errors"
	"fmt"
)

// Precondition violations.
var (
	// ErrSourceNotSet indicates a manager created without source grid.
	ErrSourceNotSet = errors.New("manager: source data grid not set")
	// ErrTargetNotEmpty indicates a target grid that should be structurally empty.
	ErrTargetNotEmpty = errors.New("manager: target data grid not empty")
	// ErrUnknownAttribute indicates an attribute name absent from the reference grid.
	ErrUnknownAttribute = errors.New("manager: unknown attribute")
	// ErrPartsPresent indicates parts exported onto an attribute that already has parts.
	ErrPartsPresent = errors.New("manager: target attribute already has parts")
	// ErrCellsPresent indicates a structural step on a target that already has cells.
	ErrCellsPresent = errors.New("manager: target data grid already has cells")
	// ErrMissingParts indicates cells exported before the parts of every attribute.
	ErrMissingParts = errors.New("manager: target attribute has no parts")
	// ErrIncompatiblePartition indicates target or mandatory parts that are not a
	// coarsening of the source parts.
	ErrIncompatiblePartition = errors.New("manager: partition incompatible with source")
	// ErrMissingBuilder indicates no quantile builder for an attribute.
	ErrMissingBuilder = errors.New("manager: missing quantile builder")
	// ErrBuilderMismatch indicates a quantile builder built from another partition.
	ErrBuilderMismatch = errors.New("manager: quantile builder does not match source attribute")
	// ErrTableMismatch indicates a frequency table whose rows do not align with source parts.
	ErrTableMismatch = errors.New("manager: frequency table does not match source attribute")
	// ErrGroupIndex indicates an invalid part-to-group index vector.
	ErrGroupIndex = errors.New("manager: invalid group index")
	// ErrNoPartitioner indicates class statistics without Partitioner.
	ErrNoPartitioner = errors.New("manager: class stats without partitioner")
	// ErrInvalidArgument indicates a meaningless count or percentage.
	ErrInvalidArgument = errors.New("manager: invalid argument")
)

// ErrTooFewAttributes is returned when a cross-product grid would hold fewer
// than two attributes.
var ErrTooFewAttributes = errors.New("manager: too few attributes for a cross-product grid")

// Compatibility check kinds, unwrapped from *CheckError.
var (
	ErrAttributeMismatch   = errors.New("manager: attribute mismatch")
	ErrPartMismatch        = errors.New("manager: part mismatch")
	ErrCellMismatch        = errors.New("manager: cell mismatch")
	ErrGranularityMismatch = errors.New("manager: granularity mismatch")
	ErrTargetValueMismatch = errors.New("manager: target value mismatch")
)

// CheckError describes one failed compatibility rule.
type CheckError struct {
	// Kind is one of the check sentinels.
	Kind error
	// Attribute is the offending attribute, empty for grid-level rules.
	Attribute string
	// Detail is a human readable reason.
	Detail string
}

// Error implements error.
func (e *CheckError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%v: attribute %q: %s", e.Kind, e.Attribute, e.Detail)
}

// Unwrap returns Kind.
func (e *CheckError) Unwrap() error { return e.Kind }

// panicf panics with an error wrapping sentinel, prefixed by the method name.
func panicf(method string, sentinel error, format string, args ...interface{}) {
	panic(fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel))
}
