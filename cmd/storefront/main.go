package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Storefront/internal/storefront"
	"Storefront/pkg/kit"
)

type config struct {
	kit.ServiceConfig

	Port         string `env:"PORT" envDefault:"8080"`
	ProductsAPI  string `env:"PRODUCTS_API" envDefault:"http://localhost:8082"`
	InventoryAPI string `env:"INVENTORY_API" envDefault:"http://localhost:8084"`

	InventoryConcurrency int `env:"INVENTORY_CONCURRENCY" envDefault:"4"`
	// 0 disables the limit.
	RateLimitPerMin int `env:"RATE_LIMIT_PER_MIN" envDefault:"0"`
}

func main() {
	service := "storefront"

	var cfg config
	if err := kit.LoadConfig(&cfg); err != nil {
		kit.NewLogger(service, "").Fatal("load config failed", zap.Error(err))
	}

	log := kit.NewLogger(service, cfg.Node(service))
	defer func() { _ = log.Sync() }()

	shutdownTracing, err := kit.SetupTelemetry(context.Background(), cfg.Telemetry(service))
	if err != nil {
		log.Warn("telemetry disabled", zap.Error(err))
	}

	client := kit.TracedClient()

	s := &storefront.Server{
		Aggregator: &storefront.Aggregator{
			Backend:     storefront.NewBackendClient(cfg.ProductsAPI, cfg.InventoryAPI, client),
			Concurrency: cfg.InventoryConcurrency,
		},
		Ready: storefront.NewReadyChecker(client,
			storefront.Upstream{Name: "catalog", BaseURL: cfg.ProductsAPI},
			storefront.Upstream{Name: "inventory", BaseURL: cfg.InventoryAPI},
		),
		Limiter: kit.NewIPRateLimiter(cfg.RateLimitPerMin, time.Minute),
		Log:     log,
	}

	h := storefront.NewHandler(s, kit.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	log.Info("upstreams",
		zap.String("products_api", cfg.ProductsAPI),
		zap.String("inventory_api", cfg.InventoryAPI),
	)

	if err := kit.RunHTTPServer(":"+cfg.Port, kit.TraceHandler(h, service), log, shutdownTracing); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
