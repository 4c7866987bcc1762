// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Harisproject21/Pendataan-Akun/internal/backup"
	"github.com/Harisproject21/Pendataan-Akun/internal/core"
	"github.com/Harisproject21/Pendataan-Akun/internal/model"
)

func seedTwo(t *testing.T, env *testEnv) {
	t.Helper()
	env.mustRun("add", "Alice", "alice@gmail.com", "2024-01-20")
	env.mustRun("add", "Budi, Jr.", "budi@gmail.com", "2024-02-01")
}

func TestExport_WritesFullCollection(t *testing.T) {
	env := newTestEnv(t)
	seedTwo(t, env)

	out := env.mustRun("export")
	path := filepath.Join(env.exportDir, core.ExportFilename)
	if !strings.Contains(out, "Exported 2 accounts to "+path) {
		t.Fatalf("unexpected export output: %q", out)
	}
	want := "Name,Email,UsedDate,ReadyDate\n" +
		"Alice,alice@gmail.com,2024-01-20,2024-02-04\n" +
		"Budi, Jr.,budi@gmail.com,2024-02-01,2024-02-16"
	if got := env.readFile(path); got != want {
		t.Fatalf("export mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestExport_Stdout(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun("export", "--stdout")
	if out != "Name,Email,UsedDate,ReadyDate\n" {
		t.Fatalf("unexpected stdout export: %q", out)
	}
	if _, err := os.Stat(filepath.Join(env.exportDir, core.ExportFilename)); !os.IsNotExist(err) {
		t.Fatalf("--stdout should not write a file, stat err=%v", err)
	}
}

func TestBackupAndRestore(t *testing.T) {
	env := newTestEnv(t)
	seedTwo(t, env)

	file := filepath.Join(env.dir, "snap")
	out := env.mustRun("backup", file)
	if !strings.Contains(out, "Backup of 2 accounts") {
		t.Fatalf("unexpected backup output: %q", out)
	}
	data, err := backup.ReadFile(file + backup.Ext)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if len(data.Accounts) != 2 || data.Accounts[1].Name != "Budi, Jr." {
		t.Fatalf("unexpected backup contents: %+v", data.Accounts)
	}

	if err := os.Remove(env.dataFile); err != nil {
		t.Fatal(err)
	}
	out = env.mustRun("restore", file+backup.Ext)
	if !strings.Contains(out, "Restored 2 accounts") {
		t.Fatalf("unexpected restore output: %q", out)
	}
	out = env.mustRun("list")
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "Budi, Jr.") {
		t.Fatalf("list after restore:\n%s", out)
	}

	// Ids survive the round trip, so a fresh add still gets a new one.
	env.mustRun("add", "Citra", "citra@gmail.com", "2024-02-09")
	out = env.mustRun("list")
	if !strings.Contains(out, "3 of 3 accounts") {
		t.Fatalf("expected three accounts:\n%s", out)
	}
}

func TestBackup_DefaultFilename(t *testing.T) {
	env := newTestEnv(t)
	seedTwo(t, env)
	env.mustRun("backup")
	if _, err := os.Stat(filepath.Join(env.dir, backup.DefaultFilename(testNow))); err != nil {
		t.Fatalf("expected default backup file: %v", err)
	}
}

func TestRestore_RejectsInvalidRecords(t *testing.T) {
	env := newTestEnv(t)
	seedTwo(t, env)
	before := env.readFile(env.dataFile)

	bad := backup.New(nil, testNow)
	bad.Accounts = append(bad.Accounts,
		model.Account{ID: 1, Name: "Eve", Email: "eve@example.com", UsedDate: "2024-01-01", ReadyDate: "2024-01-16"})
	file := filepath.Join(env.dir, "bad"+backup.Ext)
	if err := backup.WriteFile(file, bad); err != nil {
		t.Fatal(err)
	}

	_, err := env.run("restore", file)
	if !errors.Is(err, core.ErrPersistenceCorrupt) {
		t.Fatalf("expected ErrPersistenceCorrupt, got %v", err)
	}
	if after := env.readFile(env.dataFile); after != before {
		t.Fatalf("snapshot changed after rejected restore")
	}
}

func TestRestore_MissingFile(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.run("restore", filepath.Join(env.dir, "absent.zst")); err == nil {
		t.Fatalf("expected error for missing backup")
	}
}

func TestMigrate_ToJSONAndSQLite(t *testing.T) {
	env := newTestEnv(t)
	seedTwo(t, env)

	target := filepath.Join(env.dir, "copy.json")
	out := env.mustRun("migrate", "--to.type", "json", "--to.dsn", target)
	if !strings.Contains(out, "Copied 2 accounts to json storage.") {
		t.Fatalf("unexpected migrate output: %q", out)
	}
	if env.readFile(target) != env.readFile(env.dataFile) {
		t.Fatalf("migrated snapshot differs from source")
	}

	dbFile := filepath.Join(env.dir, "accounts.db")
	env.mustRun("migrate", "--to.type", "sqlite", "--to.dsn", dbFile)
	out, err := env.runRaw("--storage.type", "sqlite", "--storage.dsn", dbFile, "--language", "en", "list")
	if err != nil {
		t.Fatalf("list from sqlite: %v", err)
	}
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "2 of 2 accounts") {
		t.Fatalf("unexpected sqlite list:\n%s", out)
	}
}

func TestMigrate_RequiresTarget(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.run("migrate", "--to.type", "json"); err == nil {
		t.Fatalf("expected error without --to.dsn")
	}
}

func TestDBMaintain(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("db-maintain")
	if !strings.Contains(out, "needs no maintenance") {
		t.Fatalf("expected skip for json, got %q", out)
	}

	dbFile := filepath.Join(env.dir, "accounts.db")
	sqliteArgs := []string{"--storage.type", "sqlite", "--storage.dsn", dbFile, "--language", "en"}
	if _, err := env.runRaw(append(sqliteArgs, "add", "Alice", "alice@gmail.com", "2024-01-20")...); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := env.runRaw(append(sqliteArgs, "db-maintain")...)
	if err != nil {
		t.Fatalf("db-maintain: %v", err)
	}
	if !strings.Contains(out, "Database maintenance finished for sqlite.") {
		t.Fatalf("unexpected output: %q", out)
	}
}
