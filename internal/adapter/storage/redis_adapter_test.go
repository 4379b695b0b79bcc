package storage

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisAdapter(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	runKVStoreTests(t, NewRedisAdapter(client), "redis-test")
}

func TestRedisAdapter_Namespaced(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	if err := adapter.Set(ctx, "ns-test", []byte("v")); err != nil {
		t.Fatalf("set: %v", err)
	}
	defer adapter.Delete(ctx, "ns-test")

	raw, err := client.Get(ctx, "storefront:ns-test").Result()
	if err != nil {
		t.Fatalf("raw get: %v", err)
	}
	if raw != "v" {
		t.Errorf("expected v, got %s", raw)
	}
}
