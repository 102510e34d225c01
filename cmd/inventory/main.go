package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Storefront/internal/inventory"
	"Storefront/pkg/kit"
)

type config struct {
	kit.ServiceConfig

	Port string `env:"PORT" envDefault:"8084"`
	// Seed for generated quantities; 0 picks a random one.
	Seed uint64 `env:"INVENTORY_SEED" envDefault:"0"`
}

func main() {
	service := "inventory"

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

	reg := prometheus.NewRegistry()

	svc := inventory.NewService(inventory.NewMemCache(), inventory.NewRandomGenerator(cfg.Seed))
	svc.Metrics = inventory.NewLookupMetrics(reg)

	s := &inventory.Server{Inventory: svc, Log: log}
	h := inventory.NewHandler(s, kit.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(":"+cfg.Port, kit.TraceHandler(h, service), log, shutdownTracing); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
