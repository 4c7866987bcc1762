// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Harisproject21/Pendataan-Akun/internal/logging"
	"github.com/Harisproject21/Pendataan-Akun/internal/model"
)

// Port is the persistence boundary of the AccountStore. Implementations
// store the whole ordered collection at once.
//
// Load returns (nil, nil) when no snapshot exists yet, and an error
// wrapping ErrPersistenceCorrupt when one exists but cannot be decoded.
type Port interface {
	Load(ctx context.Context) ([]model.Account, error)
	Save(ctx context.Context, accounts []model.Account) error
}

// Quarantiner is implemented by ports that can keep a copy of a rejected
// snapshot, so that the next Save does not destroy it.
type Quarantiner interface {
	Quarantine(ctx context.Context) error
}

// AccountStore owns the authoritative ordered account collection and keeps
// its persisted mirror in sync. Every successful mutation writes the full
// collection through the Port before it is committed in memory.
type AccountStore struct {
	mu       sync.Mutex
	port     Port
	accounts []model.Account
	lastID   int64
	now      func() time.Time
	// held is set when a rejected snapshot could not be set aside; saves
	// are refused until Replace succeeds.
	held bool
}

// StoreOption configures an AccountStore.
type StoreOption func(*AccountStore)

// WithClock overrides the clock used to assign account ids.
func WithClock(now func() time.Time) StoreOption {
	return func(s *AccountStore) { s.now = now }
}

// NewAccountStore returns an empty store backed by port. Call Load to
// populate it from the persisted snapshot.
func NewAccountStore(port Port, opts ...StoreOption) *AccountStore {
	s := &AccountStore{port: port, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load reads the persisted snapshot into the store and returns a copy of
// it. A missing snapshot yields an empty collection. A corrupt snapshot
// also yields an empty collection, together with an error wrapping
// ErrPersistenceCorrupt that callers should surface as a warning. Before
// returning, the rejected snapshot is set aside through Quarantiner; if
// that is not possible the store is held and refuses saves.
func (s *AccountStore) Load(ctx context.Context) ([]model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = nil
	s.lastID = 0
	s.held = false

	loaded, err := s.port.Load(ctx)
	if err == nil {
		err = checkCollection(loaded)
	}
	if err != nil {
		if errors.Is(err, ErrPersistenceCorrupt) {
			logging.Warnf("snapshot rejected, starting with an empty collection: %v", err)
			s.quarantine(ctx)
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	s.accounts = slices.Clone(loaded)
	s.lastID = maxID(s.accounts)
	logging.Debugf("loaded %d accounts", len(s.accounts))
	return slices.Clone(s.accounts), nil
}

// Accounts returns a copy of the current collection in insertion order.
func (s *AccountStore) Accounts() []model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.accounts)
}

// Len returns the number of accounts in the collection.
func (s *AccountStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

// Add validates the fields, derives the ready date, assigns a fresh id,
// appends the account and persists the full collection. On any error the
// collection is left unchanged.
func (s *AccountStore) Add(ctx context.Context, name, email, usedDate string) (model.Account, error) {
	if err := Validate(name, email, usedDate); err != nil {
		return model.Account{}, err
	}
	readyDate, err := ComputeReadyDate(usedDate)
	if err != nil {
		return model.Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc := model.Account{
		ID:        s.nextID(),
		Name:      name,
		Email:     email,
		UsedDate:  usedDate,
		ReadyDate: readyDate,
	}

	next := append(slices.Clone(s.accounts), acc)
	if err := s.save(ctx, next); err != nil {
		return model.Account{}, err
	}
	s.accounts = next
	s.lastID = acc.ID

	logging.Infof("added account %d (%s), ready on %s", acc.ID, acc.Email, acc.ReadyDate)
	return acc, nil
}

// Remove deletes the account with the given id, keeping the order of the
// others, and persists the full collection. An unknown id returns
// ErrNotFound without touching the collection or the port.
func (s *AccountStore) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.accounts, func(a model.Account) bool { return a.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	next := slices.Delete(slices.Clone(s.accounts), idx, idx+1)
	if err := s.save(ctx, next); err != nil {
		return err
	}
	removed := s.accounts[idx]
	s.accounts = next

	logging.Infof("removed account %d (%s)", removed.ID, removed.Email)
	return nil
}

// Replace swaps the whole collection for accounts after checking every
// record, and persists it. Used by restore. It is the only write allowed
// while the store is held.
func (s *AccountStore) Replace(ctx context.Context, accounts []model.Account) error {
	if err := checkCollection(accounts); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(accounts)
	if err := s.write(ctx, next); err != nil {
		return err
	}
	s.accounts = next
	s.held = false
	if id := maxID(next); id > s.lastID {
		s.lastID = id
	}
	logging.Infof("replaced collection with %d accounts", len(next))
	return nil
}

// SaveSnapshot writes the current collection through the port.
func (s *AccountStore) SaveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, s.accounts)
}

// Held reports whether saves are refused because a rejected snapshot could
// not be set aside.
func (s *AccountStore) Held() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held
}

// quarantine asks the port to keep a copy of the rejected snapshot. Without
// that copy every later save is refused.
func (s *AccountStore) quarantine(ctx context.Context) {
	q, ok := s.port.(Quarantiner)
	if !ok {
		logging.Warnf("storage cannot set the rejected snapshot aside; saving is disabled until a restore")
		s.held = true
		return
	}
	if err := q.Quarantine(ctx); err != nil {
		logging.Errorf("could not set the rejected snapshot aside, saving is disabled until a restore: %v", err)
		s.held = true
	}
}

func (s *AccountStore) save(ctx context.Context, accounts []model.Account) error {
	if s.held {
		return fmt.Errorf("save snapshot: %w", ErrSnapshotHeld)
	}
	return s.write(ctx, accounts)
}

func (s *AccountStore) write(ctx context.Context, accounts []model.Account) error {
	if err := s.port.Save(ctx, accounts); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// nextID returns a millisecond timestamp, bumped past the last issued or
// loaded id so ids stay unique and increasing even when the clock stalls
// or goes backwards.
func (s *AccountStore) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	return id
}

func maxID(accounts []model.Account) int64 {
	var m int64
	for _, a := range accounts {
		if a.ID > m {
			m = a.ID
		}
	}
	return m
}

// checkCollection verifies that every record satisfies the account
// invariants and that ids are unique.
func checkCollection(accounts []model.Account) error {
	seen := make(map[int64]struct{}, len(accounts))
	for i, a := range accounts {
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d at position %d", ErrPersistenceCorrupt, a.ID, i)
		}
		seen[a.ID] = struct{}{}
		if err := validateRecord(a); err != nil {
			return fmt.Errorf("%w: record %d: %w", ErrPersistenceCorrupt, i, err)
		}
	}
	return nil
}
