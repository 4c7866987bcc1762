// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	cfg "github.com/Harisproject21/Pendataan-Akun/internal/config"
)

// isolate points the user config dir and working directory at fresh temp
// dirs so no real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	work := t.TempDir()
	if err := os.Chdir(work); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tmp
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Storage.Type != "json" || got.Storage.Dsn != "./accounts.json" {
		t.Fatalf("unexpected storage defaults: %+v", got.Storage)
	}
	if got.Export.Dir != "." || got.Language != "en" {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "storage:\n  type: sqlite\n  dsn: ./akun.db\nlanguage: id\n"
	if err := os.WriteFile(file, []byte(data), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Storage.Type != "sqlite" || got.Storage.Dsn != "./akun.db" {
		t.Fatalf("unexpected storage: %+v", got.Storage)
	}
	if got.Language != "id" {
		t.Fatalf("expected id, got %q", got.Language)
	}
	if got.Export.Dir != "." {
		t.Fatalf("default export dir lost: %q", got.Export.Dir)
	}
}

func TestLoadConfig_MissingExplicitFileFails(t *testing.T) {
	isolate(t)
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &missing); err == nil {
		t.Fatalf("expected error for a missing explicit config file")
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	isolate(t)
	t.Setenv("PENDATAAN_AKUN_STORAGE_DSN", "/tmp/other.json")

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Storage.Dsn != "/tmp/other.json" {
		t.Fatalf("env override not applied: %q", got.Storage.Dsn)
	}
}

func TestLoadConfig_FlagOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PENDATAAN_AKUN_LANGUAGE", "en")

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "en", "")
	if err := cmd.Flags().Set("language", "id"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Language != "id" {
		t.Fatalf("flag override not applied: %q", got.Language)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	isolate(t)

	c := cfg.Config{Language: "en"}
	c.Storage.Type = "json"
	c.Storage.Dsn = "./accounts.json"

	if cfg.Exists(false) {
		t.Fatalf("config should not exist yet")
	}
	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile: %v", err)
	}
	if !cfg.Exists(false) {
		t.Fatalf("config should exist after write")
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "dsn: ./accounts.json") {
		t.Fatalf("unexpected file content:\n%s", data)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, nil, nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Storage.Type != "json" {
		t.Fatalf("round trip through file failed: %+v", got)
	}
}
