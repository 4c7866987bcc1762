// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Harisproject21/Pendataan-Akun/internal/core"
	"github.com/Harisproject21/Pendataan-Akun/internal/model"
)

// CorruptSuffix is appended to the snapshot path when a rejected snapshot
// is set aside.
const CorruptSuffix = ".corrupt"

// JSONFile stores the collection as a JSON array in a single file.
type JSONFile struct {
	path string
}

// NewJSONFile returns a port for the snapshot at path. The file is created
// on the first Save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the snapshot file location.
func (f *JSONFile) Path() string { return f.path }

// Load reads the snapshot. A missing or empty file is an empty collection.
// Undecodable content is reported as core.ErrPersistenceCorrupt.
func (f *JSONFile) Load(ctx context.Context) ([]model.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		dbLogf("no snapshot at %s yet", f.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrPersistenceCorrupt, f.path, err)
	}
	dbLogf("read %d accounts from %s", len(accounts), f.path)
	return accounts, nil
}

// Save replaces the snapshot with accounts. The data is written to a
// temporary file in the same directory and renamed over the old snapshot.
func (f *JSONFile) Save(ctx context.Context, accounts []model.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if accounts == nil {
		accounts = []model.Account{}
	}
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	dbLogf("wrote %d accounts to %s", len(accounts), f.path)
	return nil
}

// Quarantine copies the current snapshot file to <path>.corrupt. When that
// name already holds different content, a millisecond timestamp is
// appended so earlier copies survive.
func (f *JSONFile) Quarantine(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", f.path, err)
	}

	dest := f.path + CorruptSuffix
	if prev, err := os.ReadFile(dest); err == nil {
		if bytes.Equal(prev, data) {
			return nil
		}
		dest = fmt.Sprintf("%s.%d", dest, time.Now().UnixMilli())
	}
	if err := os.WriteFile(dest, data, 0o600); err != nil {
		return fmt.Errorf("set aside %s: %w", f.path, err)
	}
	dbLogf("rejected snapshot copied to %s", dest)
	return nil
}

// Close is a no-op; the file is not held open between calls.
func (f *JSONFile) Close() error { return nil }
