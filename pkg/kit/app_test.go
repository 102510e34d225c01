package kit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func TestNewRouter_MetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRouter(HTTPDeps{
		Log:            zap.NewNop(),
		Service:        "test",
		Registry:       reg,
		MetricsEnabled: true,
		MetricsToken:   "s3cret",
	})
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}

	for _, tc := range []struct {
		authz string
		want  int
	}{
		{"", http.StatusForbidden},
		{"Bearer wrong", http.StatusForbidden},
		{"s3cret", http.StatusForbidden},
		{"Bearer s3cret", http.StatusOK},
	} {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		if tc.authz != "" {
			req.Header.Set("Authorization", tc.authz)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("authz=%q status=%d want=%d", tc.authz, rec.Code, tc.want)
		}
		if tc.want == http.StatusOK && !strings.Contains(rec.Body.String(), `path="/items/{id}"`) {
			t.Fatalf("route pattern label missing:\n%s", rec.Body.String())
		}
	}
}

func TestNewRouter_NoRegistry(t *testing.T) {
	r := NewRouter(HTTPDeps{Service: "test", MetricsEnabled: true})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestNewRouter_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	deps := HTTPDeps{Log: zap.NewNop(), Service: "test", Registry: reg}

	_ = NewRouter(deps)
	_ = NewRouter(deps)
}
