// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// driverName maps a storage type to the registered database/sql driver.
func driverName(dbType string) string {
	// The pgx stdlib registers driver name "pgx".
	if dbType == StoragePostgres {
		return "pgx"
	}
	return dbType
}

// envInt reads a non-negative integer override from the environment.
func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

// NewStoreFromDSN opens dbType at dsn, creates the accounts table when it
// is missing and returns a BunStore over it.
func NewStoreFromDSN(dbType, dsn string) (*BunStore, error) {
	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName(dbType), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxOpen := envInt("PENDATAAN_AKUN_DB_MAX_OPEN_CONNS", 4)
	maxIdle := envInt("PENDATAAN_AKUN_DB_MAX_IDLE_CONNS", 4)
	// Each connection to ":memory:" gets its own database, so pin it to one.
	if dbType == StorageSQLite && dsn == ":memory:" {
		maxOpen, maxIdle = 1, 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	dbLogf("opened %s driver in %s (max open=%d)", driverName(dbType), time.Since(start), maxOpen)

	s := &BunStore{bun: createBunDB(sqlDB, dbType), dbType: dbType}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.ensureSchema(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}
	return s, nil
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case StoragePostgres:
		return bun.NewDB(sqlDB, pgdialect.New())
	case StorageMySQL:
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// RunDBMaintenance performs engine-specific housekeeping for the database
// at dsn. For SQLite this runs PRAGMA optimize, VACUUM, a WAL checkpoint and
// an integrity check. For Postgres it runs VACUUM ANALYZE on the accounts
// table; for MySQL, OPTIMIZE TABLE.
func RunDBMaintenance(ctx context.Context, dbType, dsn string) error {
	sqlDB, err := sqlOpenFunc(driverName(dbType), dsn)
	if err != nil {
		return fmt.Errorf("failed to open database for maintenance: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	switch dbType {
	case StorageSQLite:
		// optimize is advisory; some builds do not support it.
		if _, err := sqlDB.ExecContext(ctx, "PRAGMA optimize;"); err != nil {
			dbLogf("sqlite optimize failed (ignored): %v", err)
		}
		if _, err := sqlDB.ExecContext(ctx, "VACUUM;"); err != nil {
			return fmt.Errorf("sqlite vacuum failed: %w", err)
		}
		_, _ = sqlDB.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE);")
		var res string
		if err := sqlDB.QueryRowContext(ctx, "PRAGMA integrity_check;").Scan(&res); err != nil {
			return fmt.Errorf("sqlite integrity_check failed: %w", err)
		}
		if res != "ok" {
			return fmt.Errorf("sqlite integrity_check failed: %s", res)
		}
	case StoragePostgres:
		if _, err := sqlDB.ExecContext(ctx, "VACUUM ANALYZE accounts;"); err != nil {
			return fmt.Errorf("postgres vacuum failed: %w", err)
		}
	case StorageMySQL:
		if _, err := sqlDB.ExecContext(ctx, "OPTIMIZE TABLE accounts;"); err != nil {
			return fmt.Errorf("mysql optimize failed: %w", err)
		}
	default:
		return fmt.Errorf("%w: no maintenance for %q", ErrUnsupportedStorage, dbType)
	}
	dbLogf("maintenance for %s completed", dbType)
	return nil
}
