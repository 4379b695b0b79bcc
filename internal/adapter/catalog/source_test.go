package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cplinktech/storefront/internal/core/domain"
)

func TestHTTPSource_FetchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"cam-1","name":"Camera","price_cents":250000},{"name":"Tripod","price":4500}]`))
	}))
	defer srv.Close()

	products, err := NewHTTPSource(srv.URL, srv.Client()).FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].PriceCents != 250000 || products[1].PriceCents != 4500 {
		t.Errorf("unexpected prices %+v", products)
	}
}

func TestHTTPSource_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, srv.Client()).FetchProducts(context.Background())
	if !errors.Is(err, domain.ErrNetworkUnavailable) {
		t.Errorf("expected ErrNetworkUnavailable, got %v", err)
	}
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url, nil).FetchProducts(context.Background())
	if !errors.Is(err, domain.ErrNetworkUnavailable) {
		t.Errorf("expected ErrNetworkUnavailable, got %v", err)
	}
}

func TestHTTPSource_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	if _, err := NewHTTPSource(srv.URL, srv.Client()).FetchProducts(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}

func TestFileSource_FetchProducts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(`[{"name":"Lens","price_cents":99000}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	products, err := NewFileSource(path).FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Lens" {
		t.Errorf("unexpected products %+v", products)
	}
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json")).FetchProducts(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"", "nil"},
		{"https://shop.example/products.json", "http"},
		{"HTTP://shop.example/products.json", "http"},
		{"./products.json", "file"},
	}

	for _, tt := range tests {
		got := "nil"
		switch NewSource(tt.location, nil).(type) {
		case *HTTPSource:
			got = "http"
		case *FileSource:
			got = "file"
		}
		if got != tt.want {
			t.Errorf("NewSource(%q) = %s, want %s", tt.location, got, tt.want)
		}
	}
}
