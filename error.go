// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package injector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is returned when a single-name operation is given an
	// empty name.
	ErrInvalidName = errors.New("Instance name must be a string.")

	// ErrInvalidTarget is returned when an instance binding is given a nil
	// value.
	ErrInvalidTarget = errors.New("Instance cannot be null.")

	// ErrInvalidList is returned when a bulk operation is given a nil list
	// or a list containing an empty name.
	ErrInvalidList = errors.New("Instance names must be an array.")

	// ErrNameConflict matches any *ConflictError with errors.Is.
	ErrNameConflict = errors.New("instance name has been bound")

	// ErrUndeclaredParams is returned when a function takes arguments but
	// there is no way to learn their dependency names.
	ErrUndeclaredParams = errors.New("function parameters have no declared names")

	// ErrInvalidSignature is returned when a class or function target
	// doesn't have a shape the container can materialize.
	ErrInvalidSignature = errors.New("invalid target")
)

// ConflictError is returned when a logical name is bound twice. The reserved
// name "injector" is always bound.
type ConflictError struct {
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Instance name: %s has been bound.", e.Name)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrNameConflict
}

// ResolveError is returned when a bound target exists but could not be
// materialized: a resolved dependency has the wrong type for its field or
// parameter, or a function returned a non-nil error.
//
// A missing binding is never a ResolveError. Misses resolve to nil.
type ResolveError struct {
	// Key is the key being resolved when the failure happened.
	Key string

	// Err is the underlying failure.
	Err error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("error resolving %q: %s", e.Key, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

var (
	_ error = (*ConflictError)(nil)
	_ error = (*ResolveError)(nil)
)
