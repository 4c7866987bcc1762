// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package export delivers the CSV payload produced by the core to a
// destination: a file in a directory or any writer.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Harisproject21/Pendataan-Akun/internal/core"
	"github.com/Harisproject21/Pendataan-Akun/internal/logging"
)

// ToDir writes payload to dir/akun_gmail.csv, replacing an existing file,
// and returns the written path.
func ToDir(dir, payload string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, core.ExportFilename)

	tmp, err := os.CreateTemp(dir, core.ExportFilename+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp export: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := io.WriteString(tmp, payload); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("replace %s: %w", path, err)
	}
	logging.Debugf("exported %d bytes to %s", len(payload), path)
	return path, nil
}

// ToWriter writes payload to w unchanged.
func ToWriter(w io.Writer, payload string) error {
	_, err := io.WriteString(w, payload)
	return err
}
