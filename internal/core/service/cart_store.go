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

const DefaultCartKey = "cplink_cart_v1"

// CartStore is the only owner of the persisted cart. Every mutation is a
// read-modify-write of the whole cart under one key, serialized in-process.
// Separate processes sharing a store are not coordinated: last writer wins.
type CartStore struct {
	kv     port.KVStore
	key    string
	logger *zap.Logger

	mu sync.Mutex

	listenersMu sync.RWMutex
	listeners   []func(domain.Cart)
}

func NewCartStore(kv port.KVStore, key string, logger *zap.Logger) *CartStore {
	if key == "" {
		key = DefaultCartKey
	}
	return &CartStore{kv: kv, key: key, logger: logger}
}

// OnChange registers fn to be called with the new cart after every successful write.
func (s *CartStore) OnChange(fn func(domain.Cart)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Read never fails: missing, corrupt or unreachable storage reads as an empty cart.
func (s *CartStore) Read(ctx context.Context) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx)
	if err != nil {
		s.logger.Warn("cart storage unavailable, reading empty cart", zap.Error(err))
		return domain.Cart{}
	}
	return cart
}

func (s *CartStore) Write(ctx context.Context, cart domain.Cart) error {
	s.mu.Lock()
	err := s.store(ctx, cart)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify(cart)
	return nil
}

func (s *CartStore) Add(ctx context.Context, p domain.Product) (domain.Cart, error) {
	if p.ID == "" {
		p.ID = domain.Slug(p.Name)
	}
	return s.mutate(ctx, func(c domain.Cart) (domain.Cart, bool) {
		return c.WithProduct(p), true
	})
}

// SetQty applies delta to the line for id. A missing id is a no-op and does
// not write.
func (s *CartStore) SetQty(ctx context.Context, id string, delta int) (domain.Cart, error) {
	return s.mutate(ctx, func(c domain.Cart) (domain.Cart, bool) {
		return c.WithDelta(id, delta)
	})
}

func (s *CartStore) Remove(ctx context.Context, id string) (domain.Cart, error) {
	return s.mutate(ctx, func(c domain.Cart) (domain.Cart, bool) {
		line, ok := c.Find(id)
		if !ok {
			return c, false
		}
		return c.WithDelta(id, -line.Qty)
	})
}

func (s *CartStore) Clear(ctx context.Context) error {
	return s.Write(ctx, domain.Cart{})
}

func (s *CartStore) Dispatch(ctx context.Context, cmd domain.CartCommand) (domain.Cart, error) {
	switch cmd.Action {
	case domain.ActionAdd:
		return s.Add(ctx, cmd.Product)
	case domain.ActionIncrement:
		return s.SetQty(ctx, cmd.Product.ID, 1)
	case domain.ActionDecrement:
		return s.SetQty(ctx, cmd.Product.ID, -1)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAction, cmd.Action)
	}
}

func (s *CartStore) mutate(ctx context.Context, fn func(domain.Cart) (domain.Cart, bool)) (domain.Cart, error) {
	s.mu.Lock()
	cart, err := s.load(ctx)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	next, changed := fn(cart)
	if !changed {
		s.mu.Unlock()
		return cart, nil
	}
	if err := s.store(ctx, next); err != nil {
		s.mu.Unlock()
		return cart, err
	}
	s.mu.Unlock()

	s.notify(next)
	return next, nil
}

// load distinguishes a broken backend (returned) from broken data (reset to
// empty) so a transient outage never overwrites a good cart.
func (s *CartStore) load(ctx context.Context) (domain.Cart, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, port.ErrKeyNotFound) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	cart, err := decodeCart(raw)
	if err != nil {
		s.logger.Debug("discarding corrupt cart", zap.String("key", s.key), zap.Error(err))
		return domain.Cart{}, nil
	}
	return cart, nil
}

func (s *CartStore) store(ctx context.Context, cart domain.Cart) error {
	if cart == nil {
		cart = domain.Cart{}
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("set cart: %w", err)
	}
	return nil
}

func (s *CartStore) notify(cart domain.Cart) {
	s.listenersMu.RLock()
	defer s.listenersMu.RUnlock()
	for _, fn := range s.listeners {
		fn(cart)
	}
}

// decodeCart parses a persisted cart and restores its invariants: lines
// without an id or with qty < 1 are dropped, repeated ids are merged into the
// first line.
func decodeCart(raw []byte) (domain.Cart, error) {
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageCorrupt, err)
	}

	cart := make(domain.Cart, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, line := range lines {
		if line.ID == "" || line.Qty < 1 {
			continue
		}
		if i, ok := index[line.ID]; ok {
			cart[i].Qty += line.Qty
			continue
		}
		index[line.ID] = len(cart)
		cart = append(cart, line)
	}
	return cart, nil
}
