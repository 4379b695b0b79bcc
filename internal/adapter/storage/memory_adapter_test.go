package storage

import (
	"context"
	"testing"
)

func TestMemoryAdapter(t *testing.T) {
	runKVStoreTests(t, NewMemoryAdapter(), "memory-test")
}

func TestMemoryAdapter_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryAdapter()

	value := []byte("abc")
	kv.Set(ctx, "k", value)
	value[0] = 'z'

	got, _ := kv.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("stored value aliased caller slice: %s", got)
	}
}
