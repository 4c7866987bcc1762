// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/Harisproject21/Pendataan-Akun/internal/model"
)

// AccountModel is the bun model for the accounts table. Position keeps the
// insertion order of the collection.
type AccountModel struct {
	bun.BaseModel `bun:"table:accounts"`
	ID            int64  `bun:"id,pk"`
	Position      int    `bun:"position,notnull"`
	Name          string `bun:"name,notnull"`
	Email         string `bun:"email,notnull"`
	UsedDate      string `bun:"used_date,notnull"`
	ReadyDate     string `bun:"ready_date,notnull"`
}

func accountToModel(a model.Account, pos int) AccountModel {
	return AccountModel{
		ID:        a.ID,
		Position:  pos,
		Name:      a.Name,
		Email:     a.Email,
		UsedDate:  a.UsedDate,
		ReadyDate: a.ReadyDate,
	}
}

func accountFromModel(m AccountModel) model.Account {
	return model.Account{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		UsedDate:  m.UsedDate,
		ReadyDate: m.ReadyDate,
	}
}

// BunStore is the SQL-backed port.
type BunStore struct {
	bun    *bun.DB
	dbType string
}

// BunDB exposes the underlying bun handle.
func (s *BunStore) BunDB() *bun.DB { return s.bun }

// Type returns the storage type the store was opened with.
func (s *BunStore) Type() string { return s.dbType }

func (s *BunStore) ensureSchema(ctx context.Context) error {
	_, err := s.bun.NewCreateTable().Model((*AccountModel)(nil)).IfNotExists().Exec(ctx)
	return err
}

// Load returns all rows ordered by position.
func (s *BunStore) Load(ctx context.Context) ([]model.Account, error) {
	var rows []AccountModel
	if err := s.bun.NewSelect().Model(&rows).OrderExpr("? ASC", bun.Ident("position")).Scan(ctx); err != nil {
		return nil, fmt.Errorf("select accounts: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	out := make([]model.Account, 0, len(rows))
	for _, r := range rows {
		out = append(out, accountFromModel(r))
	}
	dbLogf("selected %d accounts", len(out))
	return out, nil
}

// Save replaces every row with accounts inside one transaction, so readers
// never observe a partial collection.
func (s *BunStore) Save(ctx context.Context, accounts []model.Account) error {
	tx, err := s.bun.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if _, err := tx.NewDelete().Model((*AccountModel)(nil)).Where("1 = 1").Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear accounts: %w", err)
	}
	if len(accounts) > 0 {
		rows := make([]AccountModel, 0, len(accounts))
		for i, a := range accounts {
			rows = append(rows, accountToModel(a, i))
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert accounts: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit accounts: %w", err)
	}
	dbLogf("stored %d accounts", len(accounts))
	return nil
}

// Quarantine copies the accounts table to accounts_corrupt_<unix millis>
// so a rejected collection survives the next Save.
func (s *BunStore) Quarantine(ctx context.Context) error {
	name := fmt.Sprintf("accounts_corrupt_%d", time.Now().UnixMilli())
	if _, err := s.bun.ExecContext(ctx, "CREATE TABLE ? AS SELECT * FROM ?", bun.Ident(name), bun.Ident("accounts")); err != nil {
		return fmt.Errorf("copy accounts to %s: %w", name, err)
	}
	dbLogf("rejected accounts copied to table %s", name)
	return nil
}

// Close releases the database handle.
func (s *BunStore) Close() error {
	return s.bun.Close()
}
