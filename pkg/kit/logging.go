package kit

import "go.uber.org/zap"

// NewLogger builds the production JSON logger. Every entry carries the
// service and the node name it reports telemetry under.
func NewLogger(service, node string) *zap.Logger {
	if node == "" {
		node = service
	}

	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]any{
		"service": service,
		"node":    node,
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
