package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/port"
)

// maxCatalogBytes caps how much of a catalog response is read.
const maxCatalogBytes = 4 << 20

type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch catalog: %w", domain.ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: catalog responded %s", domain.ErrNetworkUnavailable, resp.Status)
	}

	return decodeProducts(io.LimitReader(resp.Body, maxCatalogBytes))
}

// NewSource picks an HTTP source for http(s) locations and a file source
// otherwise.
func NewSource(location string, client *http.Client) port.ProductSource {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil
	}
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPSource(location, client)
	}
	return NewFileSource(location)
}

func decodeProducts(r io.Reader) ([]domain.Product, error) {
	var products []domain.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}

var _ port.ProductSource = (*HTTPSource)(nil)
