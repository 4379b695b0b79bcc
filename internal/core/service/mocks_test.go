package service

import (
	"context"
	"errors"
	"sync"

	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/port"
)

var errBackendDown = errors.New("backend down")

// Mock KVStore
type mockKV struct {
	mu      sync.Mutex
	data    map[string][]byte
	sets    int
	failGet bool
	failSet bool
}

func newMockKV() *mockKV {
	return &mockKV{data: make(map[string][]byte)}
}

func (m *mockKV) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failGet {
		return nil, errBackendDown
	}
	v, ok := m.data[key]
	if !ok {
		return nil, port.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *mockKV) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failSet {
		return errBackendDown
	}
	m.sets++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *mockKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *mockKV) setCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}

// Mock SessionClient
type mockSessionClient struct {
	mu    sync.Mutex
	calls int
	last  domain.SessionRequest
	url   string
	err   error
}

func (m *mockSessionClient) CreateSession(ctx context.Context, req domain.SessionRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.last = req
	return m.url, m.err
}

// Mock OrderLog
type mockOrderLog struct {
	mu     sync.Mutex
	orders []domain.Order
	err    error
}

func (m *mockOrderLog) Append(ctx context.Context, order domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderLog) List(ctx context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Order(nil), m.orders...), m.err
}

// Mock ProductSource
type mockProductSource struct {
	products []domain.Product
	err      error
}

func (m *mockProductSource) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	return m.products, m.err
}

// Mock PaymentGateway
type mockGateway struct {
	mu      sync.Mutex
	session domain.CheckoutSession
	url     string
	err     error
}

func (m *mockGateway) CreateCheckoutSession(ctx context.Context, session domain.CheckoutSession) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = session
	return m.url, m.err
}
