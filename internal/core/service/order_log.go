package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/port"
)

const DefaultOrdersKey = "cplink_orders_v1"

// KVOrderLog keeps every simulated order as one JSON array under a fixed key.
type KVOrderLog struct {
	kv     port.KVStore
	key    string
	logger *zap.Logger
	mu     sync.Mutex
}

func NewKVOrderLog(kv port.KVStore, key string, logger *zap.Logger) *KVOrderLog {
	if key == "" {
		key = DefaultOrdersKey
	}
	return &KVOrderLog{kv: kv, key: key, logger: logger}
}

func (l *KVOrderLog) Append(ctx context.Context, order domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders, err := l.load(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)

	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := l.kv.Set(ctx, l.key, raw); err != nil {
		return fmt.Errorf("set orders: %w", err)
	}
	return nil
}

func (l *KVOrderLog) List(ctx context.Context) ([]domain.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx)
}

func (l *KVOrderLog) load(ctx context.Context) ([]domain.Order, error) {
	raw, err := l.kv.Get(ctx, l.key)
	if errors.Is(err, port.ErrKeyNotFound) {
		return []domain.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		l.logger.Debug("discarding corrupt order log", zap.String("key", l.key), zap.Error(err))
		return []domain.Order{}, nil
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

var _ port.OrderLog = (*KVOrderLog)(nil)
