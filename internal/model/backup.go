// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "time"

// BackupSchemaVersion is bumped whenever BackupData changes shape.
const BackupSchemaVersion = 1

// BackupData is the container written by the backup command. It wraps the
// full account snapshot with enough metadata to validate a restore.
type BackupData struct {
	// SchemaVersion helps in handling migrations during restore.
	SchemaVersion int       `json:"schema_version"`
	CreatedAt     time.Time `json:"created_at"`
	Accounts      []Account `json:"accounts"`
}
