package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Storefront/internal/catalog"
	"Storefront/pkg/kit"
)

type config struct {
	kit.ServiceConfig

	Port string `env:"PORT" envDefault:"8082"`
	Size int    `env:"CATALOG_SIZE" envDefault:"10"`
	// Seed 0 draws a random catalog on every start.
	Seed uint64 `env:"CATALOG_SEED" envDefault:"20240601"`
}

func main() {
	service := "catalog"

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

	products := catalog.Generate(cfg.Seed, cfg.Size)
	log.Info("catalog generated", zap.Int("size", len(products)), zap.Uint64("seed", cfg.Seed))

	s := &catalog.Server{Store: catalog.NewMemStore(products), Log: log}
	h := catalog.NewHandler(s, kit.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(":"+cfg.Port, kit.TraceHandler(h, service), log, shutdownTracing); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
