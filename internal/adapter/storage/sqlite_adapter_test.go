package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestSQLite(t *testing.T, path string) *SQLiteAdapter {
	t.Helper()
	store, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return store
}

func TestSQLiteAdapter(t *testing.T) {
	store := openTestSQLite(t, filepath.Join(t.TempDir(), "store.db"))
	defer store.Close()

	runKVStoreTests(t, store, "sqlite-test")
}

func TestSQLiteAdapter_Durable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	store := openTestSQLite(t, path)
	if err := store.Set(ctx, "cart", []byte("[]")); err != nil {
		t.Fatalf("set: %v", err)
	}
	store.Close()

	reopened := openTestSQLite(t, path)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "cart")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("unexpected value %s", got)
	}
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite(context.Background(), "  "); err == nil {
		t.Error("expected error for empty path")
	}
}
