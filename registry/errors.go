// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when a definition is registered under an id
	// that is already taken. Use errors.Is to detect it; the concrete
	// *DuplicateIDError carries the conflicting names.
	ErrDuplicateID = errors.New("duplicate parser id")

	// ErrNotFound is returned when no definition exists under the looked-up id.
	ErrNotFound = errors.New("parser definition not found")
)

// DuplicateIDError reports an id collision, naming the definition that
// already holds the id so the message is actionable for the user.
type DuplicateIDError struct {
	ID           string
	ExistingName string
}

// Error implements the error interface.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("parser id %q is already used by %q", e.ID, e.ExistingName)
}

// Unwrap returns ErrDuplicateID so errors.Is works.
func (e *DuplicateIDError) Unwrap() error {
	return ErrDuplicateID
}

// NotFoundError reports a lookup of an unknown id.
type NotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no parser definition with id %q", e.ID)
}

// Unwrap returns ErrNotFound so errors.Is works.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
