// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNewPort_SelectsImplementation(t *testing.T) {
	dir := t.TempDir()

	p, err := NewPort("json", filepath.Join(dir, "a.json"))
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if _, ok := p.(*JSONFile); !ok {
		t.Fatalf("json: got %T", p)
	}

	p, err = NewPort("", "")
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if jf, ok := p.(*JSONFile); !ok || jf.Path() != DefaultJSONPath {
		t.Fatalf("default: got %T", p)
	}

	p, err = NewPort("MEMORY", "")
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	if _, ok := p.(*MemoryStore); !ok {
		t.Fatalf("memory: got %T", p)
	}

	p, err = NewPort("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	defer func() { _ = p.Close() }()
	if bs, ok := p.(*BunStore); !ok || bs.Type() != StorageSQLite {
		t.Fatalf("sqlite: got %T", p)
	}
}

func TestNewPort_Unsupported(t *testing.T) {
	if _, err := NewPort("mongo", "x"); !errors.Is(err, ErrUnsupportedStorage) {
		t.Fatalf("expected ErrUnsupportedStorage, got %v", err)
	}
}

func TestIsSQL(t *testing.T) {
	for in, want := range map[string]bool{"sqlite": true, "postgres": true, "MySQL": true, "json": false, "memory": false} {
		if IsSQL(in) != want {
			t.Fatalf("IsSQL(%q) != %v", in, want)
		}
	}
}

func TestMemoryStore_FailureInjection(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(fixtureAccounts()...)

	got, err := m.Load(ctx)
	if err != nil || !reflect.DeepEqual(got, fixtureAccounts()) {
		t.Fatalf("Load = %v, %v", got, err)
	}

	m.SaveErr = errors.New("boom")
	if err := m.Save(ctx, nil); err == nil {
		t.Fatalf("expected injected save error")
	}
	if m.Saves() != 0 || len(m.Snapshot()) != 3 {
		t.Fatalf("failed save must not change the snapshot")
	}
}

func TestMemoryStore_Quarantine(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(fixtureAccounts()...)

	if err := m.Quarantine(ctx); err != nil {
		t.Fatalf("Quarantine: %v", err)
	}
	if err := m.Save(ctx, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	kept := m.Quarantined()
	if len(kept) != 1 || !reflect.DeepEqual(kept[0], fixtureAccounts()) {
		t.Fatalf("Quarantined = %+v", kept)
	}

	m.QuarantineErr = errors.New("disk full")
	if err := m.Quarantine(ctx); err == nil {
		t.Fatalf("expected injected quarantine error")
	}
}
