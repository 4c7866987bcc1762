// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package backup reads and writes Zstandard-compressed JSON backups of
// the account collection.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/Harisproject21/Pendataan-Akun/internal/model"
)

// Ext is the extension every backup file carries.
const Ext = ".zst"

// ErrUnsupportedVersion is returned for backups written by a newer schema.
var ErrUnsupportedVersion = errors.New("unsupported backup schema version")

// New wraps accounts in a BackupData stamped with the current schema
// version and the given time.
func New(accounts []model.Account, now time.Time) *model.BackupData {
	if accounts == nil {
		accounts = []model.Account{}
	}
	return &model.BackupData{
		SchemaVersion: model.BackupSchemaVersion,
		CreatedAt:     now.UTC(),
		Accounts:      accounts,
	}
}

// DefaultFilename returns the file name used when none is given,
// e.g. pendataan-akun-backup-2024-02-04.json.zst.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("pendataan-akun-backup-%s.json%s", now.Format(model.DateLayout), Ext)
}

// WithExt appends Ext to name unless it is already present.
func WithExt(name string) string {
	if strings.HasSuffix(name, Ext) {
		return name
	}
	return name + Ext
}

// Write encodes data as indented JSON through a zstd encoder into w.
func Write(w io.Writer, data *model.BackupData) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("could not flush zstd writer: %w", err)
	}
	return nil
}

// Read decodes a backup from r.
func Read(r io.Reader) (*model.BackupData, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	var data model.BackupData
	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	if data.SchemaVersion > model.BackupSchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data.SchemaVersion)
	}
	return &data, nil
}

// WriteFile writes data to filename, replacing any existing file.
func WriteFile(filename string, data *model.BackupData) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	if err := Write(file, data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// ReadFile reads the backup stored in filename.
func ReadFile(filename string) (*model.BackupData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Read(file)
}
