package inventory

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Storefront/pkg/kit"
)

type Server struct {
	Inventory *Service
	Log       *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", kit.Healthz)
	r.Get("/readyz", kit.Healthz)

	r.Get("/inventory/{productId}", s.get)

	return r
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil || id == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	qty, err := s.Inventory.Quantity(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("inventory lookup failed", zap.Error(err), zap.String("product_id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, qty)
}

// productID returns the decoded {productId} segment. chi routes on RawPath
// when the request carries one (e.g. an escaped "/"), so the param is only
// still escaped in that case; otherwise it was decoded once already.
func productID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "productId")
	if r.URL.RawPath == "" {
		return id, nil
	}
	return url.PathUnescape(id)
}
