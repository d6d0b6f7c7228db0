package storage

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	store, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return store
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, t.TempDir())
	defer store.Close()

	data := []byte(`{"expenses":[{"id":"e1"}]}`)
	if err := store.Save(ctx, "expenses.v1", data); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx, "expenses.v1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Load() = %s, want %s", got, data)
	}
}

func TestStore_LoadMissingKey(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, t.TempDir())
	defer store.Close()

	got, err := store.Load(ctx, "never-saved")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing key", err)
	}
	if got != nil {
		t.Errorf("Load() = %s, want nil", got)
	}
}

func TestStore_SaveOverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, t.TempDir())
	defer store.Close()

	if err := store.Save(ctx, "budgets.v1", []byte(`{"budgets":[1]}`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	latest := []byte(`{"budgets":[1,2]}`)
	if err := store.Save(ctx, "budgets.v1", latest); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx, "budgets.v1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(got, latest) {
		t.Errorf("Load() = %s, want the latest snapshot %s", got, latest)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store := openTestStore(t, dir)
	data := []byte(`{"expenses":[]}`)
	if err := store.Save(ctx, "expenses.v1", data); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened := openTestStore(t, dir)
	defer reopened.Close()

	got, err := reopened.Load(ctx, "expenses.v1")
	if err != nil {
		t.Fatalf("Load() after reopen error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Load() after reopen = %s, want %s", got, data)
	}
}

func TestStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, t.TempDir())
	defer store.Close()

	if err := store.Save(ctx, "expenses.v1", []byte("a")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(ctx, "budgets.v1", []byte("b")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	exp, _ := store.Load(ctx, "expenses.v1")
	bud, _ := store.Load(ctx, "budgets.v1")
	if string(exp) != "a" || string(bud) != "b" {
		t.Errorf("records bleed across keys: %s / %s", exp, bud)
	}
}
