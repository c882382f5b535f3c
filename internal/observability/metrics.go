package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for one fixer run.
type Metrics struct {
	NodesScanned prometheus.Counter
	NodesFixed   prometheus.Counter
	NodesSkipped *prometheus.CounterVec // labels: reason

	// DTM lookup metrics.
	LookupRequests     *prometheus.CounterVec   // labels: tier, outcome={success,error}
	LookupDuration     *prometheus.HistogramVec // labels: tier
	CoordinatesMissing prometheus.Counter
	CacheLookups       *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all fixer metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.NodesScanned,
		m.NodesFixed,
		m.NodesSkipped,
		m.LookupRequests,
		m.LookupDuration,
		m.CoordinatesMissing,
		m.CacheLookups,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		NodesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fixpeaks",
			Name:      "nodes_scanned_total",
			Help:      "Total nodes read from the input document.",
		}),
		NodesFixed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fixpeaks",
			Name:      "nodes_fixed_total",
			Help:      "Total nodes whose name was rewritten.",
		}),
		NodesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fixpeaks",
			Name:      "nodes_skipped_total",
			Help:      "Candidate nodes left untouched, by rejection reason.",
		}, []string{"reason"}),
		LookupRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fixpeaks",
			Name:      "lookup_requests_total",
			Help:      "Høydedata API requests by endpoint tier and outcome.",
		}, []string{"tier", "outcome"}),
		LookupDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fixpeaks",
			Name:      "lookup_duration_seconds",
			Help:      "Høydedata API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"tier"}),
		CoordinatesMissing: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fixpeaks",
			Name:      "coordinates_missing_total",
			Help:      "Coordinates with no DTM coverage after all tiers.",
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fixpeaks",
			Name:      "cache_lookups_total",
			Help:      "Elevation cache lookups by result.",
		}, []string{"result"}),
	}
}
