package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cplinktech/storefront/internal/adapter/storage"
	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/core/service"
	"github.com/cplinktech/storefront/internal/port"
)

const (
	cartKey       = "stress-cart"
	productCount  = 5
	totalRequests = 200
)

func main() {
	driver := flag.String("driver", "memory", "store driver: memory, sqlite or redis")
	redisAddr := flag.String("redis", "localhost:6379", "redis address")
	flag.Parse()

	ctx := context.Background()

	kv, cleanup, err := openStore(ctx, *driver, *redisAddr)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer cleanup()

	// Clear previous test data
	if err := kv.Delete(ctx, cartKey); err != nil {
		log.Fatalf("failed to reset cart: %v", err)
	}

	store := service.NewCartStore(kv, cartKey, zap.NewNop())

	var writes atomic.Int32
	store.OnChange(func(domain.Cart) { writes.Add(1) })

	// Every product gets totalRequests/productCount adds and, for odd
	// requests, one decrement, spread over concurrent goroutines.
	var successCount, failCount atomic.Int32
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			p := domain.Product{
				ID:         fmt.Sprintf("item-%d", n%productCount),
				Name:       fmt.Sprintf("Item %d", n%productCount),
				PriceCents: 1000,
			}
			_, err := store.Dispatch(ctx, domain.CartCommand{Action: domain.ActionAdd, Product: p})
			if err == nil && n%2 == 1 {
				_, err = store.Dispatch(ctx, domain.CartCommand{Action: domain.ActionDecrement, Product: p})
			}
			if err == nil {
				successCount.Add(1)
			} else {
				failCount.Add(1)
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	cart := store.Read(ctx)
	expectedQty := totalRequests / 2

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Driver:           %s\n", *driver)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", successCount.Load())
	fmt.Printf("Failed:           %d\n", failCount.Load())
	fmt.Printf("Writes Notified:  %d\n", writes.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	if cart.Count() == expectedQty && failCount.Load() == 0 {
		fmt.Printf("PASS: cart holds %d items, no lost updates\n", expectedQty)
	} else {
		fmt.Printf("FAIL: expected %d items, got %d\n", expectedQty, cart.Count())
	}

	if len(cart) <= productCount {
		fmt.Printf("PASS: %d distinct lines\n", len(cart))
	} else {
		fmt.Printf("FAIL: expected at most %d lines, got %d\n", productCount, len(cart))
	}
}

func openStore(ctx context.Context, driver, redisAddr string) (port.KVStore, func(), error) {
	switch driver {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return storage.NewRedisAdapter(rdb), func() { rdb.Close() }, nil
	case "sqlite":
		s, err := storage.OpenSQLite(ctx, "stress.db")
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		return storage.NewMemoryAdapter(), func() {}, nil
	}
}
