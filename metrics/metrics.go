// Package metrics exposes search activity as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/pdrpinto/routesearch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Collector groups the search metrics. Every metric is labeled by algorithm.
type Collector struct {
	SearchesTotal  *prometheus.CounterVec
	SettledTotal   *prometheus.CounterVec
	RelaxedTotal   *prometheus.CounterVec
	SearchDuration *prometheus.HistogramVec
	PathLength     *prometheus.HistogramVec
}

// New creates the collector and registers it with reg.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routesearch_searches_total",
				Help: "Total number of searches run, by outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		SettledTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routesearch_settled_nodes_total",
				Help: "Total number of nodes settled across searches",
			},
			[]string{"algorithm"},
		),
		RelaxedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routesearch_relaxations_total",
				Help: "Total number of frontier pushes caused by improved costs",
			},
			[]string{"algorithm"},
		),
		SearchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "routesearch_search_duration_seconds",
				Help: "Wall-clock duration of a search",
				// Small graphs finish in microseconds.
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"algorithm"},
		),
		PathLength: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "routesearch_path_edges",
				Help:    "Number of edges in found paths",
				Buckets: prometheus.LinearBuckets(0, 2, 10),
			},
			[]string{"algorithm"},
		),
	}
}

// ObserveResult records the outcome of a finished search.
func ObserveResult[N comparable](c *Collector, res routesearch.Result[N]) {
	outcome := OutcomeNotFound
	if res.Found {
		outcome = OutcomeFound
		c.PathLength.WithLabelValues(res.Algorithm).Observe(float64(len(res.Path) - 1))
	}
	c.SearchesTotal.WithLabelValues(res.Algorithm, outcome).Inc()
	c.SearchDuration.WithLabelValues(res.Algorithm).Observe(res.Elapsed.Seconds())
}

// ObserveError records a search that was aborted by an error.
func (c *Collector) ObserveError(algorithm string, elapsed time.Duration) {
	c.SearchesTotal.WithLabelValues(algorithm, OutcomeError).Inc()
	c.SearchDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// Observer counts settlements and relaxations while a search runs.
type Observer[N comparable] struct {
	settled prometheus.Counter
	relaxed prometheus.Counter
}

// NewObserver returns a search observer feeding c under the given algorithm label.
func NewObserver[N comparable](c *Collector, algorithm string) *Observer[N] {
	return &Observer[N]{
		settled: c.SettledTotal.WithLabelValues(algorithm),
		relaxed: c.RelaxedTotal.WithLabelValues(algorithm),
	}
}

func (o *Observer[N]) NodeSettled(routesearch.SettleEvent[N])     { o.settled.Inc() }
func (o *Observer[N]) NeighborRelaxed(routesearch.RelaxEvent[N]) { o.relaxed.Inc() }
