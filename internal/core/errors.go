// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when name, email or used date is empty.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidEmail is returned when the email lacks the @gmail.com suffix.
	ErrInvalidEmail = errors.New("email must end with " + EmailSuffix)
	// ErrInvalidDate is returned when a date is not a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("date must be a YYYY-MM-DD calendar date")
	// ErrNotFound is returned when deleting an unknown account id. Callers
	// treat it as a benign no-op.
	ErrNotFound = errors.New("account not found")
	// ErrPersistenceCorrupt is returned when the persisted snapshot cannot be
	// parsed or violates the account invariants.
	ErrPersistenceCorrupt = errors.New("persisted snapshot is corrupt")
	// ErrInvalidFilterMode is returned for filter modes other than all,
	// ready and notready.
	ErrInvalidFilterMode = errors.New("invalid filter mode")
	// ErrReadyDateMismatch is returned for a stored ready date that is not
	// the used date plus the cooldown.
	ErrReadyDateMismatch = errors.New("ready date is not used date + 15 days")
	// ErrSnapshotHeld is returned by saves after a rejected snapshot could
	// not be set aside. Replace clears it.
	ErrSnapshotHeld = errors.New("rejected snapshot was not set aside; restore a backup or repair it before saving")
)

// FieldError ties a validation error to the input field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
