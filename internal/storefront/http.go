package storefront

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"Storefront/pkg/kit"
)

const pageTitle = "Store"

type Server struct {
	Aggregator *Aggregator
	Ready      *ReadyChecker
	Limiter    *kit.IPRateLimiter
	Log        *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", kit.Healthz)
	r.Get("/readyz", s.readyz)

	r.Group(func(pr chi.Router) {
		pr.Use(s.Limiter.Middleware)
		pr.Get("/", s.index)
		pr.Get("/api/products", s.listJSON)
	})

	return r
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:     pageTitle,
		RequestID: chimw.GetReqID(r.Context()),
	}

	products, err := s.Aggregator.Products(r.Context())
	if err != nil {
		s.logUpstream(err)
		if err := renderPage(w, http.StatusBadGateway, errorPage, data); err != nil {
			s.logRender(err)
			kit.WriteError(w, r, http.StatusBadGateway, "upstream error", nil)
		}
		return
	}

	data.Products = products
	if err := renderPage(w, http.StatusOK, productsPage, data); err != nil {
		s.logRender(err)
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}

func (s *Server) listJSON(w http.ResponseWriter, r *http.Request) {
	products, err := s.Aggregator.Products(r.Context())
	if err != nil {
		s.logUpstream(err)
		kit.WriteError(w, r, http.StatusBadGateway, "upstream error", nil)
		return
	}
	if products == nil {
		products = []Product{}
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if s.Ready == nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	if name, err := s.Ready.Check(r.Context()); err != nil {
		if s.Log != nil {
			s.Log.Warn("readyz failed", zap.String("upstream", name), zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, name+" not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) logUpstream(err error) {
	if s.Log != nil {
		s.Log.Error("compose products failed", zap.Error(err))
	}
}

func (s *Server) logRender(err error) {
	if s.Log != nil {
		s.Log.Error("render page failed", zap.Error(err))
	}
}
