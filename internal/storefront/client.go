package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Product is a catalog entry joined with its inventory level.
type Product struct {
	ProductID   string `json:"ProductId"`
	ProductName string `json:"ProductName"`
	Quantity    int    `json:"Quantity"`
}

var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamBadStatus   = errors.New("upstream bad status")
	ErrMalformedResponse   = errors.New("malformed upstream response")
)

// BackendClient talks to the catalog and inventory services. Each method
// is one GET; there is no retry and no timeout beyond the http.Client's.
type BackendClient struct {
	ProductsURL  string
	InventoryURL string
	Client       *http.Client
}

func NewBackendClient(productsURL, inventoryURL string, c *http.Client) *BackendClient {
	if c == nil {
		c = http.DefaultClient
	}
	return &BackendClient{
		ProductsURL:  trimBase(productsURL),
		InventoryURL: trimBase(inventoryURL),
		Client:       c,
	}
}

func trimBase(base string) string {
	if u, err := url.Parse(base); err == nil && u.Scheme != "" && u.Host != "" {
		return strings.TrimRight(base, "/")
	}
	return base
}

func (c *BackendClient) GetProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.getJSON(ctx, c.ProductsURL+"/products", &out); err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return out, nil
}

func (c *BackendClient) GetInventory(ctx context.Context, productID string) (int, error) {
	var n int
	if err := c.getJSON(ctx, c.InventoryURL+"/inventory/"+url.PathEscape(productID), &n); err != nil {
		return 0, fmt.Errorf("get inventory %s: %w", productID, err)
	}
	return n, nil
}

func (c *BackendClient) getJSON(ctx context.Context, target string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if rid := chimw.GetReqID(ctx); rid != "" {
		req.Header.Set(chimw.RequestIDHeader, rid)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status=%d", ErrUpstreamBadStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
