package inventory

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultHit  = "hit"
	resultMiss = "miss"
)

type LookupMetrics struct {
	Lookups *prometheus.CounterVec
}

// NewLookupMetrics registers the lookup counter on reg. Calling it again
// with the same registry returns the counter already registered there.
func NewLookupMetrics(reg prometheus.Registerer) *LookupMetrics {
	lookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_cache_lookups_total",
			Help: "Inventory lookups by cache result",
		},
		[]string{"result"},
	)

	if err := reg.Register(lookups); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(err)
		}
		lookups = are.ExistingCollector.(*prometheus.CounterVec)
	}
	return &LookupMetrics{Lookups: lookups}
}

func (m *LookupMetrics) observe(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.Lookups.WithLabelValues(resultHit).Inc()
		return
	}
	m.Lookups.WithLabelValues(resultMiss).Inc()
}
