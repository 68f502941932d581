package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Query outcomes recorded on metro_queries_total.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeNoRoute  = "no_route"
	OutcomeError    = "error"
)

type metricSet struct {
	registry *prometheus.Registry
	queries  *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	stations prometheus.Gauge
	edges    prometheus.Gauge
}

// metrics is nil while metrics are disabled. Guarded by mu.
var metrics *metricSet

func newMetrics() {
	m := &metricSet{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metro",
			Name:      "queries_total",
			Help:      "Route queries by kind and outcome.",
		}, []string{"kind", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "metro",
			Name:      "query_duration_seconds",
			Help:      "Time spent answering a route query.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"kind"}),
		stations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "metro",
			Name:      "network_stations",
			Help:      "Stations in the loaded network.",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "metro",
			Name:      "network_edges",
			Help:      "Undirected edges in the loaded network.",
		}),
	}
	m.registry.MustRegister(m.queries, m.latency, m.stations, m.edges)
	metrics = m
}

func resetMetrics() {
	metrics = nil
}

// Registry returns the active registry, or nil when metrics are disabled.
func Registry() *prometheus.Registry {
	mu.Lock()
	defer mu.Unlock()
	if metrics == nil {
		return nil
	}
	return metrics.registry
}

// SetNetworkSize records the size of the loaded network.
func SetNetworkSize(stations, edges int) {
	mu.Lock()
	defer mu.Unlock()
	if metrics == nil {
		return
	}
	metrics.stations.Set(float64(stations))
	metrics.edges.Set(float64(edges))
}

// Flush writes the registry to the configured metrics file.
// It does nothing when metrics are disabled or no file is configured.
func Flush() error {
	mu.Lock()
	defer mu.Unlock()
	if metrics == nil || metricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(metricsFile, metrics.registry); err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}
	return nil
}

// Recorder records metrics for one kind of query ("distance", "time", ...).
// All methods are no-ops while metrics are disabled.
type Recorder struct {
	kind string
}

// NewRecorder creates a recorder for the given query kind.
func NewRecorder(kind string) *Recorder {
	return &Recorder{kind: kind}
}

// Query records one answered query.
func (r *Recorder) Query(d time.Duration, outcome string) {
	mu.Lock()
	defer mu.Unlock()
	if metrics == nil {
		return
	}
	metrics.queries.WithLabelValues(r.kind, outcome).Inc()
	metrics.latency.WithLabelValues(r.kind).Observe(d.Seconds())
}
