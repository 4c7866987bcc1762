// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model holds the plain data types shared by the core, the
// persistence ports and the presentation layers.
package model

import "fmt"

// DateLayout is the canonical calendar-date representation used for
// storage, display and export.
const DateLayout = "2006-01-02"

// Account is a tracked reusable account. It is a value: the store never
// mutates an Account in place, it only appends or removes whole records.
type Account struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	UsedDate  string `json:"usedDate"`
	ReadyDate string `json:"readyDate"`
}

// String returns the "name <email>" representation.
func (a Account) String() string {
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}
