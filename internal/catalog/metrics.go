package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes, also the outcome label of herodex_catalog_queries_total.
const (
	OutcomeOK            = "ok"
	OutcomeNotFound      = "not_found"
	OutcomeInvalidFormat = "invalid_format"
	OutcomeEmptyQuery    = "empty_query"
	OutcomeNoMatch       = "no_match"
	OutcomeError         = "error"
)

// Metrics holds the Prometheus collectors for catalog queries. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	queries    *prometheus.CounterVec
	resultSize *prometheus.HistogramVec
	heroes     prometheus.Gauge
	pages      prometheus.Gauge
}

// NewMetrics creates the catalog collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "herodex",
			Subsystem: "catalog",
			Name:      "queries_total",
			Help:      "Catalog queries by operation and outcome.",
		}, []string{"operation", "outcome"}),
		resultSize: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "herodex",
			Subsystem: "catalog",
			Name:      "result_heroes",
			Help:      "Number of heroes returned per successful query.",
			Buckets:   []float64{0, 1, 2, 3, 5, 10, 20, 50},
		}, []string{"operation"}),
		heroes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "herodex",
			Subsystem: "catalog",
			Name:      "heroes",
			Help:      "Number of heroes loaded in the catalog.",
		}),
		pages: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "herodex",
			Subsystem: "catalog",
			Name:      "pages",
			Help:      "Number of pages in the catalog.",
		}),
	}
}

// SetCatalogSize publishes the size of the loaded store.
func (m *Metrics) SetCatalogSize(s *Store) {
	if m == nil {
		return
	}
	m.heroes.Set(float64(s.Len()))
	m.pages.Set(float64(s.PageCount()))
}

// observe records one query. size is ignored for failed queries.
func (m *Metrics) observe(operation, outcome string, size int) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(operation, outcome).Inc()
	if outcome == OutcomeOK || outcome == OutcomeNoMatch || outcome == OutcomeEmptyQuery {
		m.resultSize.WithLabelValues(operation).Observe(float64(size))
	}
}
