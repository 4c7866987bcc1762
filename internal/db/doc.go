// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db contains the persistence ports of the account store.
//
// Every port stores the whole ordered collection at once:
//   - JSONFile writes the snapshot array to a file, atomically.
//   - BunStore keeps the same records in an `accounts` table on SQLite,
//     PostgreSQL or MySQL through uptrace/bun. Save replaces the table
//     inside one transaction.
//   - MemoryStore keeps the snapshot in memory, for tests and throwaway
//     sessions.
//
// NewPort selects a port from the configured storage type.
//
// Testing notes
//   - Prefer NewStoreFromDSN("sqlite", ":memory:") in tests that need real
//     SQL semantics.
//   - sqlOpenFunc can be swapped for a go-sqlmock connection to exercise
//     driver failure paths.
package db
