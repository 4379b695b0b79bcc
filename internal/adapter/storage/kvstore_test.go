package storage

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/cplinktech/storefront/internal/port"
)

// runKVStoreTests exercises the behavior every KVStore adapter must share.
func runKVStoreTests(t *testing.T, kv port.KVStore, key string) {
	t.Helper()
	ctx := context.Background()

	if err := kv.Delete(ctx, key); err != nil {
		t.Fatalf("setup delete: %v", err)
	}

	if _, err := kv.Get(ctx, key); !errors.Is(err, port.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}

	if err := kv.Set(ctx, key, []byte(`[{"id":"a","qty":1}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, key, []byte(`[{"id":"a","qty":2}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := kv.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, []byte(`[{"id":"a","qty":2}]`)) {
		t.Errorf("unexpected value %s", got)
	}

	if err := kv.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := kv.Delete(ctx, key); err != nil {
		t.Errorf("deleting a missing key should succeed, got %v", err)
	}
	if _, err := kv.Get(ctx, key); !errors.Is(err, port.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}
}
