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

// FilterMode restricts a view by readiness.
type FilterMode string

const (
	FilterAll      FilterMode = "all"
	FilterReady    FilterMode = "ready"
	FilterNotReady FilterMode = "notready"
)

// FilterModes lists the accepted modes in display order.
var FilterModes = []FilterMode{FilterAll, FilterReady, FilterNotReady}

// ParseFilterMode converts user input into a FilterMode. The empty string
// selects FilterAll.
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterReady:
		return FilterReady, nil
	case FilterNotReady:
		return FilterNotReady, nil
	}
	return FilterAll, fmt.Errorf("%w: %q (want all, ready or notready)", ErrInvalidFilterMode, s)
}

// Next returns the mode after m in FilterModes, wrapping around.
func (m FilterMode) Next() FilterMode {
	for i, fm := range FilterModes {
		if fm == m {
			return FilterModes[(i+1)%len(FilterModes)]
		}
	}
	return FilterAll
}

// ContainsIgnoreCase reports whether substr is within s, case-insensitive.
func ContainsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// MatchesSearch reports whether the account's name or email contains term,
// ignoring case. An empty term matches everything.
func MatchesSearch(a model.Account, term string) bool {
	return ContainsIgnoreCase(a.Name, term) || ContainsIgnoreCase(a.Email, term)
}

// Filter returns the subsequence of accounts matching search and mode at
// the instant now. The input order is preserved and the input slice is
// never modified. Unknown modes apply no readiness restriction.
func Filter(accounts []model.Account, search string, mode FilterMode, now time.Time) []model.Account {
	out := make([]model.Account, 0, len(accounts))
	for _, a := range accounts {
		if !MatchesSearch(a, search) {
			continue
		}
		switch mode {
		case FilterReady:
			if !IsReady(a.ReadyDate, now) {
				continue
			}
		case FilterNotReady:
			if IsReady(a.ReadyDate, now) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}
