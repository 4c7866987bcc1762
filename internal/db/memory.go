// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"slices"
	"sync"

	"github.com/Harisproject21/Pendataan-Akun/internal/model"
)

// MemoryStore is an in-memory port. LoadErr, SaveErr and QuarantineErr,
// when set, are returned by the next calls so callers can exercise failure
// paths.
type MemoryStore struct {
	mu       sync.Mutex
	accounts []model.Account
	saves    int

	quarantined [][]model.Account

	LoadErr       error
	SaveErr       error
	QuarantineErr error
}

// NewMemoryStore returns a MemoryStore seeded with accounts.
func NewMemoryStore(accounts ...model.Account) *MemoryStore {
	return &MemoryStore{accounts: slices.Clone(accounts)}
}

func (m *MemoryStore) Load(ctx context.Context) ([]model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return slices.Clone(m.accounts), nil
}

func (m *MemoryStore) Save(ctx context.Context, accounts []model.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.accounts = slices.Clone(accounts)
	m.saves++
	return nil
}

// Quarantine keeps a copy of the current collection.
func (m *MemoryStore) Quarantine(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QuarantineErr != nil {
		return m.QuarantineErr
	}
	m.quarantined = append(m.quarantined, slices.Clone(m.accounts))
	return nil
}

// Quarantined returns the copies kept by Quarantine, oldest first.
func (m *MemoryStore) Quarantined() [][]model.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]model.Account, 0, len(m.quarantined))
	for _, q := range m.quarantined {
		out = append(out, slices.Clone(q))
	}
	return out
}

// Snapshot returns a copy of the last saved collection.
func (m *MemoryStore) Snapshot() []model.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.accounts)
}

// Saves returns the number of successful Save calls.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *MemoryStore) Close() error { return nil }
