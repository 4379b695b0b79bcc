package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/money"
)

func TestLoadCatalog_TrimsNames(t *testing.T) {
	source := &mockProductSource{products: []domain.Product{
		{ID: "lap", Name: "  Laptop ", PriceCents: 9000000},
		{Name: "Smart Watch", PriceCents: 450000},
	}}

	catalog, err := LoadCatalog(context.Background(), source, zap.NewNop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	p, ok := catalog.Lookup("Laptop  ")
	if !ok || p.ID != "lap" || p.Name != "Laptop" {
		t.Errorf("unexpected lookup result %+v ok=%v", p, ok)
	}
	if _, ok := catalog.Lookup("laptop"); ok {
		t.Error("lookup must be case-sensitive")
	}
	if p, _ := catalog.Lookup("Smart Watch"); p.ID != "smart-watch" {
		t.Errorf("expected derived id, got %q", p.ID)
	}
}

func TestLoadCatalog_NetworkFailure(t *testing.T) {
	source := &mockProductSource{err: errors.New("connection refused")}

	catalog, err := LoadCatalog(context.Background(), source, zap.NewNop())
	if !errors.Is(err, domain.ErrNetworkUnavailable) {
		t.Fatalf("expected ErrNetworkUnavailable, got %v", err)
	}
	if catalog == nil || catalog.Len() != 0 {
		t.Fatalf("expected usable empty catalog, got %+v", catalog)
	}

	p := catalog.ProductFor("Gaming Console")
	if p.PriceCents != domain.PlaceholderPriceCents {
		t.Errorf("expected placeholder price, got %d", p.PriceCents)
	}
	if p.ID != "gaming-console" {
		t.Errorf("expected slug id, got %q", p.ID)
	}

	f := money.Default()
	if f.Format(p.PriceCents) != f.Format(1500000) {
		t.Errorf("displayed price %q does not match default", f.Format(p.PriceCents))
	}
}

func TestLoadCatalog_NilSource(t *testing.T) {
	catalog, err := LoadCatalog(context.Background(), nil, zap.NewNop())
	if !errors.Is(err, domain.ErrNetworkUnavailable) {
		t.Errorf("expected ErrNetworkUnavailable, got %v", err)
	}
	if catalog.Len() != 0 {
		t.Error("expected empty catalog")
	}
}

func TestCatalog_NameCollisionLastWriteWins(t *testing.T) {
	catalog := NewCatalog([]domain.Product{
		{ID: "w1", Name: "Widget", PriceCents: 500},
		{ID: "w2", Name: " Widget", PriceCents: 800},
	})

	p, _ := catalog.Lookup("Widget")
	if p.ID != "w2" || p.PriceCents != 800 {
		t.Errorf("expected second entry to win, got %+v", p)
	}
	if catalog.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", catalog.Len())
	}

	collisions := catalog.Collisions()
	if len(collisions) != 1 {
		t.Fatalf("expected 1 collision, got %d", len(collisions))
	}
	if collisions[0].Replaced.ID != "w1" || collisions[0].Winner.ID != "w2" {
		t.Errorf("unexpected collision %+v", collisions[0])
	}
}

func TestCatalog_ProductsKeepFirstSeenOrder(t *testing.T) {
	catalog := NewCatalog([]domain.Product{
		{ID: "b", Name: "B"},
		{ID: "a", Name: "A"},
		{ID: "b2", Name: "B"},
		{ID: "x", Name: "   "},
	})

	products := catalog.Products()
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ID != "b2" || products[1].ID != "a" {
		t.Errorf("unexpected order %+v", products)
	}
}
