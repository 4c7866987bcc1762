// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testNow = time.Date(2024, 2, 10, 9, 30, 0, 0, time.Local)

// testEnv isolates one CLI test: its own config dir, working dir, JSON
// snapshot and export dir, and a pinned clock.
type testEnv struct {
	t         *testing.T
	dir       string
	dataFile  string
	exportDir string
	stderr    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	origNow, origTerm := now, isTerminal
	now = func() time.Time { return testNow }
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { now, isTerminal = origNow, origTerm })

	return &testEnv{
		t:         t,
		dir:       dir,
		dataFile:  filepath.Join(dir, "accounts.json"),
		exportDir: filepath.Join(dir, "out"),
	}
}

// run executes the root command with the env's storage flags prepended and
// returns what the command wrote to stdout.
func (e *testEnv) run(args ...string) (string, error) {
	e.t.Helper()
	full := append([]string{
		"--storage.type", "json",
		"--storage.dsn", e.dataFile,
		"--export.dir", e.exportDir,
		"--language", "en",
	}, args...)
	return e.runRaw(full...)
}

func (e *testEnv) runRaw(args ...string) (string, error) {
	e.t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(bytes.NewReader(nil))
	root.SetArgs(args)
	err := root.Execute()
	e.stderr = errOut.String()
	return out.String(), err
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	if err != nil {
		e.t.Fatalf("run %v: %v\nstderr: %s", args, err, e.stderr)
	}
	return out
}

func (e *testEnv) readFile(path string) string {
	e.t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		e.t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}
