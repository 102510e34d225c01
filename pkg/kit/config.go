package kit

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ServiceConfig holds the settings every service reads.
type ServiceConfig struct {
	// NodeName tags logs and traces; empty means the service name.
	NodeName string `env:"APPLICATION_MAP_NODE_NAME"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	MetricsToken   string `env:"METRICS_TOKEN"`

	OTelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
}

// Node returns the configured node name or service when unset.
func (c ServiceConfig) Node(service string) string {
	if c.NodeName != "" {
		return c.NodeName
	}
	return service
}

// Telemetry converts the shared settings into a TelemetryConfig.
func (c ServiceConfig) Telemetry(service string) TelemetryConfig {
	return TelemetryConfig{
		NodeName: c.Node(service),
		Endpoint: c.OTelEndpoint,
		Enabled:  c.OTelEnabled,
	}
}

// LoadConfig loads an optional .env file and parses the environment into target.
// Variables already set in the environment win over the file.
func LoadConfig(target any, files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load dotenv: %w", err)
	}
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
