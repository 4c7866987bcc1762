// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name, email, used string
		wantErr           error
		wantField         string
	}{
		{"Ali", "ali@gmail.com", "2024-01-20", nil, ""},
		{"", "ali@gmail.com", "2024-01-20", ErrMissingField, FieldName},
		{"Ali", "", "2024-01-20", ErrMissingField, FieldEmail},
		{"Ali", "ali@gmail.com", "", ErrMissingField, FieldUsedDate},
		{"", "", "", ErrMissingField, FieldName},
		{"Ali", "user@yahoo.com", "2024-01-20", ErrInvalidEmail, FieldEmail},
		{"Ali", "ali@GMAIL.COM", "2024-01-20", ErrInvalidEmail, FieldEmail},
		{"Ali", "ali@gmail.com ", "2024-01-20", ErrInvalidEmail, FieldEmail},
		{"Ali", "ali@gmail.com", "20-01-2024", ErrInvalidDate, FieldUsedDate},
		{"Ali", "ali@gmail.com", "2023-02-29", ErrInvalidDate, FieldUsedDate},
		// No normalization: surrounding whitespace in the name is accepted as-is.
		{" Ali ", "ali@gmail.com", "2024-02-29", nil, ""},
	}
	for _, c := range cases {
		err := Validate(c.name, c.email, c.used)
		if c.wantErr == nil {
			if err != nil {
				t.Fatalf("Validate(%q,%q,%q) = %v; want nil", c.name, c.email, c.used, err)
			}
			continue
		}
		if !errors.Is(err, c.wantErr) {
			t.Fatalf("Validate(%q,%q,%q) = %v; want %v", c.name, c.email, c.used, err, c.wantErr)
		}
		var fe *FieldError
		if !errors.As(err, &fe) || fe.Field != c.wantField {
			t.Fatalf("Validate(%q,%q,%q) field = %+v; want %q", c.name, c.email, c.used, fe, c.wantField)
		}
	}
}
