// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/Harisproject21/Pendataan-Akun/internal/model"
)

// EmailSuffix is the only accepted email domain.
const EmailSuffix = "@gmail.com"

// Field names reported in FieldError.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldUsedDate  = "usedDate"
	FieldReadyDate = "readyDate"
)

// Validate checks the raw fields of a new account. It performs pure,
// deterministic validation and never normalizes its input: whitespace and
// case are taken as-is.
func Validate(name, email, usedDate string) error {
	switch {
	case name == "":
		return &FieldError{Field: FieldName, Err: ErrMissingField}
	case email == "":
		return &FieldError{Field: FieldEmail, Err: ErrMissingField}
	case usedDate == "":
		return &FieldError{Field: FieldUsedDate, Err: ErrMissingField}
	}

	if !strings.HasSuffix(email, EmailSuffix) {
		return &FieldError{Field: FieldEmail, Err: ErrInvalidEmail}
	}

	if _, err := parseDate(usedDate); err != nil {
		return &FieldError{Field: FieldUsedDate, Err: ErrInvalidDate}
	}
	return nil
}

// validateRecord checks a fully formed account as read back from a
// snapshot or a backup.
func validateRecord(a model.Account) error {
	if err := Validate(a.Name, a.Email, a.UsedDate); err != nil {
		return err
	}
	want, err := ComputeReadyDate(a.UsedDate)
	if err != nil {
		return err
	}
	if a.ReadyDate != want {
		return &FieldError{
			Field: FieldReadyDate,
			Err:   fmt.Errorf("%w: got %q, want %q", ErrReadyDateMismatch, a.ReadyDate, want),
		}
	}
	return nil
}

// parseDate parses a strict YYYY-MM-DD calendar date at UTC midnight.
func parseDate(s string) (time.Time, error) {
	return time.Parse(model.DateLayout, s)
}
