// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"fmt"
	"strings"

	"github.com/Harisproject21/Pendataan-Akun/internal/core"
)

// Storage types accepted by NewPort.
const (
	StorageJSON     = "json"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMySQL    = "mysql"
	StorageMemory   = "memory"
)

// DefaultJSONPath is used when the json storage is selected without a path.
const DefaultJSONPath = "./accounts.json"

// Store is a persistence port that holds resources until closed.
type Store interface {
	core.Port
	Close() error
}

// IsSQL reports whether storageType is backed by a SQL database.
func IsSQL(storageType string) bool {
	switch strings.ToLower(storageType) {
	case StorageSQLite, StoragePostgres, StorageMySQL:
		return true
	}
	return false
}

// NewPort opens the port selected by storageType. For json the dsn is the
// snapshot file path; for SQL types it is the driver DSN.
func NewPort(storageType, dsn string) (Store, error) {
	t := strings.ToLower(strings.TrimSpace(storageType))
	switch t {
	case StorageJSON, "":
		if dsn == "" {
			dsn = DefaultJSONPath
		}
		dbLogf("using json snapshot %s", dsn)
		return NewJSONFile(dsn), nil
	case StorageMemory:
		return NewMemoryStore(), nil
	case StorageSQLite, StoragePostgres, StorageMySQL:
		return NewStoreFromDSN(t, dsn)
	default:
		return nil, fmt.Errorf("%w: %q (want json, sqlite, postgres, mysql or memory)", ErrUnsupportedStorage, storageType)
	}
}
