// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"fmt"
	"time"

	"github.com/Harisproject21/Pendataan-Akun/internal/model"
)

// ReadyAfterDays is the number of calendar days after its last use at
// which an account becomes ready again.
const ReadyAfterDays = 15

// ComputeReadyDate returns usedDate plus ReadyAfterDays calendar days, in
// YYYY-MM-DD form. time.AddDate handles month lengths and leap years.
func ComputeReadyDate(usedDate string) (string, error) {
	d, err := parseDate(usedDate)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, usedDate)
	}
	return d.AddDate(0, 0, ReadyAfterDays).Format(model.DateLayout), nil
}

// IsReady reports whether now is at or past midnight starting readyDate.
// Midnight is taken in now's location, so an account flips to ready at the
// first instant of its ready day on the caller's clock. An unparseable
// readyDate is never ready.
func IsReady(readyDate string, now time.Time) bool {
	d, err := parseDate(readyDate)
	if err != nil {
		return false
	}
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	return !now.Before(start)
}
