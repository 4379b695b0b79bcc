package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/port"
)

const createSessionPath = "/create-checkout-session"

// SessionClient posts cart snapshots to the checkout session proxy. Every
// failure it reports wraps domain.ErrNetworkUnavailable so the caller can
// fall back.
type SessionClient struct {
	baseURL string
	client  *http.Client
}

func NewSessionClient(baseURL string, client *http.Client) *SessionClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &SessionClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type sessionResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

func (c *SessionClient) CreateSession(ctx context.Context, req domain.SessionRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode session request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createSessionPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build session request: %w", domain.ErrNetworkUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	var out sessionResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if out.Error != "" {
			return "", fmt.Errorf("%w: session proxy responded %d: %s", domain.ErrNetworkUnavailable, resp.StatusCode, out.Error)
		}
		return "", fmt.Errorf("%w: session proxy responded %d", domain.ErrNetworkUnavailable, resp.StatusCode)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("%w: decode session response: %w", domain.ErrNetworkUnavailable, decodeErr)
	}
	if out.URL == "" {
		return "", fmt.Errorf("%w: session response has no url", domain.ErrNetworkUnavailable)
	}
	return out.URL, nil
}

var _ port.SessionClient = (*SessionClient)(nil)
