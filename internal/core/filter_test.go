// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Harisproject21/Pendataan-Akun/internal/model"
)

func sampleAccounts() []model.Account {
	return []model.Account{
		{ID: 1, Name: "Alice", Email: "alice@gmail.com", UsedDate: "2024-01-01", ReadyDate: "2024-01-16"},
		{ID: 2, Name: "Budi", Email: "budi.kalimantan@gmail.com", UsedDate: "2024-02-10", ReadyDate: "2024-02-25"},
		{ID: 3, Name: "Citra", Email: "citra@gmail.com", UsedDate: "2024-01-05", ReadyDate: "2024-01-20"},
		{ID: 4, Name: "dewi", Email: "MALIK@gmail.com", UsedDate: "2024-02-20", ReadyDate: "2024-03-06"},
	}
}

func ids(accounts []model.Account) []int64 {
	out := make([]int64, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.ID)
	}
	return out
}

func TestFilter_SearchIsCaseInsensitiveOnNameOrEmail(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	got := ids(Filter(sampleAccounts(), "ALI", FilterAll, now))
	// Alice by name, Budi by "kALImantan" in email, dewi by "mALIk" in email.
	want := []int64{1, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter(ALI) = %v; want %v", got, want)
	}
}

func TestFilter_EmptySearchMatchesAll(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	if got := Filter(sampleAccounts(), "", FilterAll, now); len(got) != 4 {
		t.Fatalf("expected all 4 accounts, got %d", len(got))
	}
}

func TestFilter_ReadyAndNotReadyAreComplements(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	all := sampleAccounts()

	ready := ids(Filter(all, "", FilterReady, now))
	notReady := ids(Filter(all, "", FilterNotReady, now))

	if want := []int64{1, 3}; !reflect.DeepEqual(ready, want) {
		t.Fatalf("ready = %v; want %v", ready, want)
	}
	if want := []int64{2, 4}; !reflect.DeepEqual(notReady, want) {
		t.Fatalf("notready = %v; want %v", notReady, want)
	}
	for _, a := range all {
		if IsReady(a.ReadyDate, now) == contains(notReady, a.ID) {
			t.Fatalf("account %d is in the wrong partition", a.ID)
		}
	}
}

func TestFilter_CombinesSearchAndMode(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	got := ids(Filter(sampleAccounts(), "ali", FilterNotReady, now))
	if want := []int64{2, 4}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v; want %v", got, want)
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	in := sampleAccounts()
	before := sampleAccounts()
	_ = Filter(in, "citra", FilterReady, time.Now())
	if !reflect.DeepEqual(in, before) {
		t.Fatalf("input slice was modified")
	}
}

func TestParseFilterMode(t *testing.T) {
	for in, want := range map[string]FilterMode{"": FilterAll, "all": FilterAll, "ready": FilterReady, "notready": FilterNotReady} {
		got, err := ParseFilterMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseFilterMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFilterMode("READY"); !errors.Is(err, ErrInvalidFilterMode) {
		t.Fatalf("expected ErrInvalidFilterMode, got %v", err)
	}
}

func TestFilterMode_NextWraps(t *testing.T) {
	if FilterAll.Next() != FilterReady || FilterReady.Next() != FilterNotReady || FilterNotReady.Next() != FilterAll {
		t.Fatalf("unexpected cycle order")
	}
}

func contains(list []int64, id int64) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
