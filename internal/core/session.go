// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"time"

	"github.com/Harisproject21/Pendataan-Akun/internal/model"
)

// Session is the invocation surface consumed by the presentation layers.
// It pairs an AccountStore with the ephemeral search and filter state of
// one view. Session itself is not safe for concurrent use; the store it
// wraps is.
type Session struct {
	store  *AccountStore
	search string
	mode   FilterMode
	now    func() time.Time
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionClock overrides the clock used for readiness evaluation.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// NewSession returns a Session over store showing all accounts.
func NewSession(store *AccountStore, opts ...SessionOption) *Session {
	s := &Session{store: store, mode: FilterAll, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Store returns the underlying AccountStore.
func (s *Session) Store() *AccountStore { return s.store }

// AddAccount validates and appends a new account.
func (s *Session) AddAccount(ctx context.Context, name, email, usedDate string) (model.Account, error) {
	return s.store.Add(ctx, name, email, usedDate)
}

// DeleteAccount removes the account with id. ErrNotFound is returned for
// unknown ids and is safe to ignore.
func (s *Session) DeleteAccount(ctx context.Context, id int64) error {
	return s.store.Remove(ctx, id)
}

// SetSearch sets the search term applied by Visible.
func (s *Session) SetSearch(term string) { s.search = term }

// Search returns the current search term.
func (s *Session) Search() string { return s.search }

// SetFilterMode parses and applies a readiness filter. On error the current
// mode is kept.
func (s *Session) SetFilterMode(mode string) error {
	m, err := ParseFilterMode(mode)
	if err != nil {
		return err
	}
	s.mode = m
	return nil
}

// CycleFilterMode advances to the next filter mode and returns it.
func (s *Session) CycleFilterMode() FilterMode {
	s.mode = s.mode.Next()
	return s.mode
}

// FilterMode returns the current readiness filter.
func (s *Session) FilterMode() FilterMode { return s.mode }

// Visible returns the accounts matching the current search and filter.
func (s *Session) Visible() []model.Account {
	return Filter(s.store.Accounts(), s.search, s.mode, s.now())
}

// Now returns the session clock's current time.
func (s *Session) Now() time.Time { return s.now() }

// IsReady evaluates an account's readiness on the session clock.
func (s *Session) IsReady(a model.Account) bool {
	return IsReady(a.ReadyDate, s.now())
}

// ExportCSV serializes the full collection, ignoring search and filter.
func (s *Session) ExportCSV() string {
	return SerializeCSV(s.store.Accounts())
}
