package storefront_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"Storefront/internal/catalog"
	"Storefront/internal/inventory"
	"Storefront/internal/storefront"
	"Storefront/pkg/kit"
)

func newCatalogTS(t *testing.T) *httptest.Server {
	t.Helper()

	h := catalog.NewHandler(&catalog.Server{Store: catalog.NewStore()}, kit.HTTPDeps{
		Log:     zap.NewNop(),
		Service: "catalog",
	})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func newInventoryTS(t *testing.T) *httptest.Server {
	t.Helper()

	s := &inventory.Server{
		Inventory: inventory.NewService(inventory.NewMemCache(), inventory.NewRandomGenerator(3)),
	}
	h := inventory.NewHandler(s, kit.HTTPDeps{
		Log:     zap.NewNop(),
		Service: "inventory",
	})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func newStorefrontTS(t *testing.T, catalogURL, inventoryURL string, limiter *kit.IPRateLimiter) *httptest.Server {
	t.Helper()

	s := &storefront.Server{
		Aggregator: &storefront.Aggregator{
			Backend: storefront.NewBackendClient(catalogURL, inventoryURL, nil),
		},
		Ready: storefront.NewReadyChecker(nil,
			storefront.Upstream{Name: "catalog", BaseURL: catalogURL},
			storefront.Upstream{Name: "inventory", BaseURL: inventoryURL},
		),
		Limiter: limiter,
	}
	h := storefront.NewHandler(s, kit.HTTPDeps{
		Log:     zap.NewNop(),
		Service: "storefront",
	})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(raw)
}

func deadURL(t *testing.T) string {
	t.Helper()
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()
	return ts.URL
}

func TestStorefront_HappyPath(t *testing.T) {
	catalogTS := newCatalogTS(t)
	inventoryTS := newInventoryTS(t)
	sfTS := newStorefrontTS(t, catalogTS.URL, inventoryTS.URL, nil)

	resp, body := get(t, sfTS.URL+"/api/products")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", resp.StatusCode, body)
	}

	var products []storefront.Product
	if err := json.Unmarshal([]byte(body), &products); err != nil {
		t.Fatalf("decode: %v body=%s", err, body)
	}
	if len(products) != catalog.DefaultSize {
		t.Fatalf("len=%d", len(products))
	}
	for _, p := range products {
		if p.ProductID == "" || p.ProductName == "" {
			t.Fatalf("incomplete product %+v", p)
		}
		if p.Quantity < 1 || p.Quantity > 99 {
			t.Fatalf("quantity %d out of range for %s", p.Quantity, p.ProductID)
		}
	}

	// Quantities are cached by the inventory service, so a second
	// render shows the same numbers.
	_, again := get(t, sfTS.URL+"/api/products")
	var second []storefront.Product
	if err := json.Unmarshal([]byte(again), &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i := range products {
		if second[i] != products[i] {
			t.Fatalf("product %d changed: %+v -> %+v", i, products[i], second[i])
		}
	}

	resp, page := get(t, sfTS.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("page status=%d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content-type=%q", ct)
	}
	for _, p := range products {
		if !strings.Contains(page, p.ProductID) {
			t.Fatalf("page missing product %s", p.ProductID)
		}
		if !strings.Contains(page, ">"+strconv.Itoa(p.Quantity)+"<") {
			t.Fatalf("page missing quantity %d", p.Quantity)
		}
	}
}

func TestStorefront_UpstreamDownShowsErrorPage(t *testing.T) {
	catalogTS := newCatalogTS(t)
	sfTS := newStorefrontTS(t, catalogTS.URL, deadURL(t), nil)

	resp, page := get(t, sfTS.URL+"/")
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if !strings.Contains(page, "Something went wrong") {
		t.Fatalf("expected error page, got:\n%s", page)
	}
	if strings.Contains(page, "<table>") {
		t.Fatalf("error page must not contain partial results")
	}

	resp, _ = get(t, sfTS.URL+"/api/products")
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("api status=%d", resp.StatusCode)
	}
}

func TestStorefront_Readyz(t *testing.T) {
	catalogTS := newCatalogTS(t)
	inventoryTS := newInventoryTS(t)

	up := newStorefrontTS(t, catalogTS.URL, inventoryTS.URL, nil)
	if resp, body := get(t, up.URL+"/readyz"); resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", resp.StatusCode, body)
	}

	down := newStorefrontTS(t, catalogTS.URL, deadURL(t), nil)
	resp, body := get(t, down.URL+"/readyz")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if !strings.Contains(body, "inventory not ready") {
		t.Fatalf("body=%s", body)
	}
}

func TestStorefront_RateLimit(t *testing.T) {
	catalogTS := newCatalogTS(t)
	inventoryTS := newInventoryTS(t)
	sfTS := newStorefrontTS(t, catalogTS.URL, inventoryTS.URL, kit.NewIPRateLimiter(1, time.Minute))

	if resp, _ := get(t, sfTS.URL+"/api/products"); resp.StatusCode != http.StatusOK {
		t.Fatalf("first status=%d", resp.StatusCode)
	}
	resp, _ := get(t, sfTS.URL+"/api/products")
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("second status=%d", resp.StatusCode)
	}
	if resp, _ := get(t, sfTS.URL+"/healthz"); resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz must not be limited, status=%d", resp.StatusCode)
	}
}

func TestBackendClient_InventoryIDsRoundTrip(t *testing.T) {
	var n atomic.Int64
	counting := func() int { return int(n.Add(1)) }

	s := &inventory.Server{Inventory: inventory.NewService(inventory.NewMemCache(), counting)}
	ts := httptest.NewServer(inventory.NewHandler(s, kit.HTTPDeps{Log: zap.NewNop(), Service: "inventory"}))
	t.Cleanup(ts.Close)

	c := storefront.NewBackendClient(ts.URL, ts.URL, nil)
	ctx := context.Background()

	ids := []string{"aA", "a%41", "100%", "a/b", "a%2Fb", "sku 1"}
	seen := map[int]string{}
	for _, id := range ids {
		qty, err := c.GetInventory(ctx, id)
		if err != nil {
			t.Fatalf("id=%q: %v", id, err)
		}
		if other, dup := seen[qty]; dup {
			t.Fatalf("id=%q shares quantity %d with %q", id, qty, other)
		}
		seen[qty] = id

		again, err := c.GetInventory(ctx, id)
		if err != nil {
			t.Fatalf("id=%q second lookup: %v", id, err)
		}
		if again != qty {
			t.Fatalf("id=%q second lookup=%d want=%d", id, again, qty)
		}
	}

	if got := n.Load(); got != int64(len(ids)) {
		t.Fatalf("generated %d quantities, want %d", got, len(ids))
	}
}
